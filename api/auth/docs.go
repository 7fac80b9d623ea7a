// Package auth holds the generated Swagger document for the doorman API.
// Regenerate with: swag init -g internal/auth/http/router.go -o api/auth --outputTypes go
package auth

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/doorman"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/livez": {
            "get": {
                "description": "Liveness probe endpoint returning basic service health status, uptime, and version information\nThis endpoint always returns 200 OK if the service is running",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe endpoint returning service health status and checks for critical dependencies\nIncludes uptime, version, and status of the database and token signer",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}
                    }
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "description": "Verifies the password of a registered email and returns a signed access token valid for one hour.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/authsdk.LoginRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Access token", "schema": {"$ref": "#/definitions/authsdk.TokenResponse"}},
                    "400": {"description": "Body is not valid JSON", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "401": {"description": "Password is not correct", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "404": {"description": "Email is not registered", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "500": {"description": "HashingError, SigningError or Error", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}}
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "description": "Creates a user with the default role and returns a signed access token valid for one hour.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register",
                "parameters": [
                    {
                        "description": "New account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/authsdk.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Access token", "schema": {"$ref": "#/definitions/authsdk.TokenResponse"}},
                    "400": {"description": "Body is not valid JSON", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "422": {"description": "Email already taken", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "500": {"description": "HashingError, SigningError or Error", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}}
                }
            }
        },
        "/v1/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the profile of the user the bearer token was issued to.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "id, name, email, role", "schema": {"$ref": "#/definitions/authsdk.MeResponse"}},
                    "401": {"description": "Invalid or missing access token", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/httpx.ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "authsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "signer": {"type": "string"}
            }
        },
        "authsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/authsdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "authsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "authsdk.MeResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "authsdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "authsdk.TokenResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"}
            }
        },
        "httpx.ErrorBody": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "httpx.ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/httpx.ErrorBody"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Doorman Authentication Service API",
	Description:      "Email and password registration and login issuing HS256 JWT access tokens valid for one hour.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
