// Package docs holds the OpenAPI description served under /swagger.
package docs

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
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}
                }
            }
        },
        "/boards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Saved boards",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Save a board",
                "parameters": [
                    {"description": "Board code", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SaveBoardRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/boards/{boardId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Account"],
                "summary": "Forget a saved board",
                "parameters": [
                    {"type": "string", "description": "Board code", "name": "boardId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/board": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Moderated boards",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Create a board",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/board/{boardId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Get a board",
                "parameters": [
                    {"type": "string", "description": "Board code", "name": "boardId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Delete a board",
                "parameters": [
                    {"type": "string", "description": "Board code", "name": "boardId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/board/{boardId}/ideas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Board ideas",
                "parameters": [
                    {"type": "string", "description": "Board code", "name": "boardId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Add an idea",
                "parameters": [
                    {"type": "string", "description": "Board code", "name": "boardId", "in": "path", "required": true},
                    {"description": "Idea", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateIdeaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/board/{boardId}/ideas/{ideaId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Remove an idea",
                "parameters": [
                    {"type": "string", "description": "Board code", "name": "boardId", "in": "path", "required": true},
                    {"type": "string", "description": "Idea id", "name": "ideaId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/ideas/{ideaId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Get an idea",
                "parameters": [
                    {"type": "string", "description": "Idea id", "name": "ideaId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/ideas/{ideaId}/upvote": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Upvote an idea",
                "parameters": [
                    {"type": "string", "description": "Idea id", "name": "ideaId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Remove an upvote",
                "parameters": [
                    {"type": "string", "description": "Idea id", "name": "ideaId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        },
        "/ideas/{ideaId}/flag": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Ideas"],
                "summary": "Flag an idea",
                "parameters": [
                    {"type": "string", "description": "Idea id", "name": "ideaId", "in": "path", "required": true},
                    {"description": "Flag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FlagRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Response"}}
                }
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string", "maxLength": 32, "minLength": 1}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.SaveBoardRequest": {
            "type": "object",
            "required": ["boardId"],
            "properties": {
                "boardId": {"type": "string"}
            }
        },
        "dto.CreateIdeaRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string"}
            }
        },
        "dto.FlagRequest": {
            "type": "object",
            "required": ["flag"],
            "properties": {
                "flag": {"type": "boolean"}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "loggedIn": {"type": "boolean"},
                "user": {"$ref": "#/definitions/model.SessionUser"}
            }
        },
        "model.SessionUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "utils.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token from /login.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Idea Board API",
	Description:      "Boards where participants collect, upvote and flag short ideas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
