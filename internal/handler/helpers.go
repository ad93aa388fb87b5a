package handler

import (
	"backend/pkg/apperror"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the standard envelope using the
// status code carried by the apperror taxonomy.
func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if len(appErr.Fields) > 0 {
		c.JSON(appErr.Code, response.ValidationError(appErr.Code, appErr.Message, appErr.Fields))
		return
	}
	c.JSON(appErr.Code, response.Error(appErr.Code, appErr.Message))
}
