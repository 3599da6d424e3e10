// Package docs registers the API's swagger document with swag.
// Regenerate from the handler annotations with go generate.
package docs

//go:generate swag init -g api.go -d .. -o . --parseInternal

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/todos": {
            "get": {"tags": ["Todos"], "summary": "List todos", "security": [{"Bearer": []}], "responses": {"200": {"description": "ok"}}},
            "post": {"tags": ["Todos"], "summary": "Create a todo", "security": [{"Bearer": []}],
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/todos.CreateInput"}}],
                "responses": {"201": {"description": "created"}}}
        },
        "/todos/{id}": {
            "get": {"tags": ["Todos"], "summary": "Get a todo", "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "format": "uuid", "required": true}],
                "responses": {"200": {"description": "ok"}, "404": {"description": "not found"}}},
            "patch": {"tags": ["Todos"], "summary": "Edit text or done", "security": [{"Bearer": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "format": "uuid", "required": true},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/todos.UpdateInput"}}
                ],
                "responses": {"200": {"description": "ok"}, "404": {"description": "not found"}}},
            "delete": {"tags": ["Todos"], "summary": "Delete a todo with its times and mutations", "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "format": "uuid", "required": true}],
                "responses": {"204": {"description": "deleted"}, "404": {"description": "not found"}}}
        },
        "/todos/{id}/toggle": {
            "post": {"tags": ["Todos"], "summary": "Flip done", "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "format": "uuid", "required": true}],
                "responses": {"200": {"description": "ok"}}}
        },
        "/times": {
            "get": {"tags": ["Times"], "summary": "List time intervals", "security": [{"Bearer": []}], "responses": {"200": {"description": "ok"}}}
        },
        "/times/{todo}/start": {
            "post": {"tags": ["Times"], "summary": "Start a timer", "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "todo", "type": "string", "format": "uuid", "required": true}],
                "responses": {"201": {"description": "created"}, "409": {"description": "already running"}}}
        },
        "/times/{todo}/stop": {
            "post": {"tags": ["Times"], "summary": "Stop the running timer", "security": [{"Bearer": []}],
                "parameters": [{"in": "path", "name": "todo", "type": "string", "format": "uuid", "required": true}],
                "responses": {"200": {"description": "ok"}, "404": {"description": "no running timer"}}}
        },
        "/history": {
            "get": {"tags": ["History"], "summary": "Merged history grouped by day", "security": [{"Bearer": []}],
                "parameters": [
                    {"in": "query", "name": "tz", "type": "string"},
                    {"in": "header", "name": "Accept-Language", "type": "string"}
                ],
                "responses": {"200": {"description": "ok"}, "422": {"description": "unknown time zone"}}}
        },
        "/history/cached": {
            "get": {"tags": ["History"], "summary": "Last loaded history", "security": [{"Bearer": []}], "responses": {"200": {"description": "ok"}}}
        },
        "/stats/daily": {
            "get": {"tags": ["Stats"], "summary": "Daily activity", "security": [{"Bearer": []}],
                "parameters": [{"in": "query", "name": "days", "type": "integer", "default": 14, "minimum": 1, "maximum": 90}],
                "responses": {"200": {"description": "ok"}, "503": {"description": "analytics disabled"}}}
        },
        "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}},
        "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "responses": {"200": {"description": "ok"}}}},
        "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}},
        "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}}
    },
    "definitions": {
        "todos.CreateInput": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string", "maxLength": 500, "example": "buy milk"}}
        },
        "todos.UpdateInput": {
            "type": "object",
            "properties": {
                "text": {"type": "string", "maxLength": 500, "example": "buy bread"},
                "done": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "todotrack API",
	Description:      "Todos, time tracking and a merged per-day history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
