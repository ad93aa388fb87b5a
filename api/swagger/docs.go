// Package swagger registers the OpenAPI description served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/auth/verify": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Verify token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/receipts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["receipts"],
                "summary": "List receipts",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["receipts"],
                "summary": "Create receipt",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/receipts/next-slip-number": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["receipts"],
                "summary": "Next slip number",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/receipts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["receipts"],
                "summary": "Get receipt",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["receipts"],
                "summary": "Update receipt",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["receipts"],
                "summary": "Delete receipt",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/download/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["download"],
                "summary": "Download loading slip PDF",
                "produces": ["application/pdf"],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TransportKART Loading Slip API",
	Description:      "API for managing loading slip freight receipts and their PDF documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
