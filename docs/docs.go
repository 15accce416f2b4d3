// Package docs registers the OpenAPI document served at /swagger/*any.
// Regenerate with `swag init -g cmd/main.go`.
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
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/api/led-control": {
            "get": {
                "produces": ["application/json"],
                "tags": ["signal"],
                "summary": "Current signal",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            },
            "post": {
                "description": "Classifies the temperature against the category and replaces the stored signal.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["signal"],
                "summary": "Select food category and temperature",
                "parameters": [{"description": "Selection", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SelectSignalRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "description": "Flat 0/1 payload. Always 200; on internal fault all LEDs are off and status is ERROR.",
                "produces": ["application/json"],
                "tags": ["signal"],
                "summary": "Current signal for devices",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeviceSignal"}}}
            }
        },
        "/api/led-control/device": {
            "get": {
                "description": "Flat 0/1 payload. Always 200; on internal fault all LEDs are off and status is ERROR.",
                "produces": ["application/json"],
                "tags": ["signal"],
                "summary": "Current signal for devices",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeviceSignal"}}}
            }
        },
        "/api/sensor-data": {
            "get": {
                "description": "Newest first.",
                "produces": ["application/json"],
                "tags": ["sensors"],
                "summary": "Recent sensor readings",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SensorReading"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sensors"],
                "summary": "Ingest a sensor reading",
                "parameters": [{"description": "Reading", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "produces": ["application/json"],
                "tags": ["sensors"],
                "summary": "Sensor buffer statistics",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sensors"],
                "summary": "Analyze sensor readings",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/foods": {
            "get": {
                "produces": ["application/json"],
                "tags": ["foods"],
                "summary": "Food profiles",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FoodProfile"}}}}
            }
        },
        "/api/food-monitor": {
            "post": {
                "description": "Temperature and humidity assessment with an LLM opinion. Does not change the signal.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["foods"],
                "summary": "Food condition report",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.SelectSignalRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "carnes"},
                "foodType": {"type": "string", "example": "carnes"},
                "temperature": {"type": "number", "example": 3.5}
            }
        },
        "models.DeviceSignal": {
            "type": "object",
            "properties": {
                "green": {"type": "integer"},
                "yellow": {"type": "integer"},
                "red": {"type": "integer"},
                "status": {"type": "string"},
                "lastUpdate": {"type": "string"},
                "category": {"type": "string"},
                "temperature": {"type": "number"}
            }
        },
        "models.SensorReading": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "deviceId": {"type": "string"},
                "source": {"type": "string"},
                "temperature": {"type": "number"},
                "humidity": {"type": "number"},
                "lightLevel": {"type": "integer"},
                "voltage": {"type": "number"},
                "timestamp": {"type": "string"}
            }
        },
        "models.FoodProfile": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "shelfLife": {"type": "string"},
                "tempMin": {"type": "number"},
                "tempMax": {"type": "number"},
                "criticalTemp": {"type": "number"},
                "humidityMin": {"type": "number"},
                "humidityMax": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Food Monitor API",
	Description:      "Traffic-light signal for refrigerated food storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
