// Package docs registers the OpenAPI description served under /swagger.
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
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.Credentials"}}],
                "responses": {"200": {"description": "id"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.Credentials"}}],
                "responses": {"200": {"description": "token"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/tariffs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Tariff table",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TariffTable"}}}
            }
        },
        "/api/v1/parking/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Current parking view",
                "parameters": [{"$ref": "#/parameters/platform"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/parking/zone": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Select zone",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ZoneRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}, "400": {"description": "Unknown zone"}}
            }
        },
        "/api/v1/parking/duration": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Select duration",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.DurationRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}, "400": {"description": "Unknown duration"}}
            }
        },
        "/api/v1/parking/plate": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Type plate",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PlateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}}
            }
        },
        "/api/v1/parking/plates": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Remember current plate",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}}
            }
        },
        "/api/v1/parking/plates/pick": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Pick plate from history",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PlateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}}
            }
        },
        "/api/v1/parking/plates/{plate}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Forget plate",
                "parameters": [{"in": "path", "name": "plate", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.View"}}}
            }
        },
        "/api/v1/parking/send": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parking"],
                "summary": "Confirm send",
                "description": "Records the session and returns the sms: link to open. No SMS is sent by the server.",
                "parameters": [{"$ref": "#/parameters/platform"}],
                "responses": {"200": {"description": "status, sms_uri, view"}, "400": {"description": "Plate too short"}}
            }
        },
        "/api/v1/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List activity log",
                "parameters": [
                    {"in": "query", "name": "from", "type": "string"},
                    {"in": "query", "name": "to", "type": "string"},
                    {"in": "query", "name": "type", "type": "string", "enum": ["ZONE_CHANGE", "DURATION_CHANGE", "PLATE_SAVED", "PLATE_PICKED", "PLATE_DELETED", "SEND", "SESSION_EXPIRED"]}
                ],
                "responses": {"200": {"description": "count, events"}, "400": {"description": "Bad range"}}
            }
        },
        "/api/v1/ws": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["parking"],
                "summary": "Parking view stream",
                "parameters": [
                    {"in": "query", "name": "access_token", "type": "string"},
                    {"in": "query", "name": "interval", "type": "string"},
                    {"in": "query", "name": "interval_ms", "type": "integer"},
                    {"$ref": "#/parameters/platform"}
                ],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        }
    },
    "parameters": {
        "platform": {"in": "query", "name": "platform", "type": "string", "enum": ["ios", "android"]}
    },
    "definitions": {
        "handlers.Credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.ZoneRequest": {
            "type": "object",
            "required": ["zone"],
            "properties": {"zone": {"type": "string", "example": "II"}}
        },
        "handlers.DurationRequest": {
            "type": "object",
            "required": ["duration_value"],
            "properties": {"duration_value": {"type": "string", "example": "1h"}}
        },
        "handlers.PlateRequest": {
            "type": "object",
            "properties": {"plate": {"type": "string", "example": "cj 12 abc"}}
        },
        "models.TariffOption": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"},
                "price": {"type": "integer"},
                "code": {"type": "integer"},
                "minutes": {"type": "integer"}
            }
        },
        "models.TariffZone": {
            "type": "object",
            "properties": {
                "zone": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/models.TariffOption"}}
            }
        },
        "models.TariffTable": {
            "type": "object",
            "properties": {"zones": {"type": "array", "items": {"$ref": "#/definitions/models.TariffZone"}}}
        },
        "models.SessionView": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["none", "active", "expired"]},
                "plate": {"type": "string"},
                "started_at": {"type": "string", "format": "date-time"},
                "expires_at": {"type": "string", "format": "date-time"},
                "minutes_remaining": {"type": "integer"}
            }
        },
        "models.View": {
            "type": "object",
            "properties": {
                "zone": {"type": "string"},
                "duration_value": {"type": "string"},
                "plate": {"type": "string"},
                "zone_buttons": {"type": "array", "items": {"type": "object"}},
                "duration_buttons": {"type": "array", "items": {"type": "object"}},
                "price": {"type": "integer"},
                "code": {"type": "integer"},
                "message_preview": {"type": "string"},
                "send_enabled": {"type": "boolean"},
                "sms_uri": {"type": "string"},
                "saved_plates": {"type": "array", "items": {"type": "string"}},
                "session": {"$ref": "#/definitions/models.SessionView"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Parking SMS API",
	Description:      "Compose the Cluj parking SMS, remember plates and track the last session.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
