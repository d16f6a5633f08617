// Package docs registers the OpenAPI document served under /swagger.
//
// The template is kept in step with the @Router annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "Create an account with username and password. No token is returned; log in afterwards.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Usuário criado com sucesso", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Missing credentials or username taken", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Check credentials and return a bearer token carrying the user id and username",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TokenResponse"}},
                    "400": {"description": "Unknown user or wrong password", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/materias": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List the caller's subjects with their review dates, ordered by id",
                "produces": ["application/json"],
                "tags": ["materias"],
                "summary": "List subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Subject"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["materias"],
                "summary": "Create a subject",
                "parameters": [
                    {"description": "Subject name and weight", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SubjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Subject"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/materias/{id}": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Change name and/or weight. Absent fields keep their value. Answers null when the subject does not exist.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["materias"],
                "summary": "Update a subject",
                "parameters": [
                    {"type": "integer", "description": "Subject ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SubjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Subject"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Delete the subject, its review dates and every history entry recorded under its name",
                "produces": ["application/json"],
                "tags": ["materias"],
                "summary": "Delete a subject",
                "parameters": [
                    {"type": "integer", "description": "Subject ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/materias/{id}/revisoes": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["revisoes"],
                "summary": "List review dates",
                "parameters": [
                    {"type": "integer", "description": "Subject ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Append dates to the subject's review schedule. Dates are ISO 8601 strings or epoch milliseconds.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["revisoes"],
                "summary": "Add review dates",
                "parameters": [
                    {"type": "integer", "description": "Subject ID", "name": "id", "in": "path", "required": true},
                    {"description": "Dates to add", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Subject"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/historico": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List the caller's study sessions, newest first",
                "produces": ["application/json"],
                "tags": ["historico"],
                "summary": "List study history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.HistoryEntry"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["historico"],
                "summary": "Log a study session",
                "parameters": [
                    {"description": "Study session", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.HistoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HistoryEntry"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.CredentialsRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "models.Subject": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "ciclos": {"type": "integer"},
                "nome": {"type": "string"},
                "peso": {"type": "number"},
                "revisoes": {"type": "array", "items": {"type": "string"}},
                "userId": {"type": "integer"}
            }
        },
        "models.SubjectRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "peso": {"type": "number"}
            }
        },
        "models.HistoryEntry": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "acertos": {"type": "number"},
                "data": {"type": "string"},
                "dificuldade": {"type": "number"},
                "materia": {"type": "string"},
                "mensagem": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "models.HistoryRequest": {
            "type": "object",
            "properties": {
                "acertos": {"type": "number"},
                "dificuldade": {"type": "number"},
                "materia": {"type": "string"},
                "mensagem": {"type": "string"}
            }
        },
        "models.ReviewRequest": {
            "type": "object",
            "properties": {
                "datas": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Studyloop API",
	Description:      "API for tracking study subjects, review dates and study history",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
