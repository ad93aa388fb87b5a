package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Fields     []string    `json:"fields,omitempty"` // offending fields for validation errors
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Message returns a success response carrying only a human-readable message
func Message(statusCode int, message string) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Message:    message,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// ValidationError returns an error response listing the missing or invalid fields
func ValidationError(statusCode int, err string, fields []string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
		Fields:     fields,
	}
}
