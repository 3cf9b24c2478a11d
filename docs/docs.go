// Package docs holds the OpenAPI document served under /swagger. It
// follows the layout swag emits so `swag init -g cmd/api/main.go` can
// replace it in place.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/v1/session/role": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Select a role and open a demo Session",
                "parameters": [
                    {"type": "string", "description": "App instance id", "name": "X-Instance-ID", "in": "header"},
                    {"description": "Role to select", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.selectRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionGrantResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current Session of the instance",
                "parameters": [
                    {"type": "string", "description": "App instance id", "name": "X-Instance-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionStateResponse"}}
                }
            }
        },
        "/v1/session/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Clear the instance's Session",
                "parameters": [
                    {"type": "string", "description": "App instance id", "name": "X-Instance-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.routeResponse"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "App instance id", "name": "X-Instance-ID", "in": "header", "required": true},
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionGrantResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/auth/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new account",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Enumerated list filters",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List projects",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query"},
                    {"type": "string", "description": "City filter", "name": "city", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/projects/{id}/plots": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List the plots of a project",
                "parameters": [
                    {"type": "string", "description": "Project id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/plots": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List the caller's plots",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query"},
                    {"type": "string", "description": "Plot type filter", "name": "filter", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/plots/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a plot",
                "parameters": [
                    {"type": "string", "description": "Plot id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/site-visits": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["site-visits"],
                "summary": "List site visits",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["site-visits"],
                "summary": "Book a site visit",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/site-visits/{id}/approve": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["site-visits"],
                "summary": "Approve a site visit",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/site-visits/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["site-visits"],
                "summary": "Complete or cancel a site visit",
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/site-visits/{id}/feedback": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["site-visits"],
                "summary": "Submit feedback for a completed visit",
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/sell-requests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["sell-requests"],
                "summary": "List the caller's sell requests",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sell-requests"],
                "summary": "Submit a sell request",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/v1/attendance": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["attendance"],
                "summary": "Mark attendance at a project site",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/collections/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Load a collection",
                "parameters": [
                    {"type": "string", "description": "App instance id", "name": "X-Instance-ID", "in": "header", "required": true},
                    {"enum": ["wishlist", "savedLocations"], "type": "string", "description": "Collection", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Search term (name, address)", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Add a record to a collection",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/v1/collections/{name}/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Remove a record from a collection",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.selectRoleRequest": {
            "type": "object",
            "properties": {"role": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 6}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "name", "password", "role"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "phone": {"type": "string"},
                "role": {"type": "string", "enum": ["client", "manager"]}
            }
        },
        "handler.routeResponse": {
            "type": "object",
            "properties": {"route": {"type": "string"}}
        },
        "handler.sessionGrantResponse": {
            "type": "object",
            "properties": {
                "instance_id": {"type": "string"},
                "route": {"type": "string"},
                "session": {"$ref": "#/definitions/domain.Session"},
                "token": {"type": "string"}
            }
        },
        "handler.sessionStateResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "route": {"type": "string"},
                "session": {"$ref": "#/definitions/domain.Session"}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "actor_id": {"type": "string"},
                "contact": {"type": "string"},
                "display_name": {"type": "string"},
                "id": {"type": "string"},
                "instance_id": {"type": "string"},
                "issued_at": {"type": "string"},
                "role": {"type": "string", "enum": ["guest", "client", "manager"]}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Realto Plots API",
	Description:      "Sessions, catalog, site visits, sell requests, attendance and device-local collections for the plots app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
