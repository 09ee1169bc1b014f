// Package docs holds the swagger document served at /swagger. Regenerate with
// `swag init -g cmd/settle_backend/main.go -o cmd/docs`.
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
        "/calculations/master-data": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Get calculation master data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MasterDataResponse"}}
                }
            }
        },
        "/events/{eventID}/calculations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "List calculations of an event",
                "parameters": [{"type": "string", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListCalculationsResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Run a settlement calculation",
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"name": "calculation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCalculationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CalculationResponse"}}
                }
            }
        },
        "/events/{eventID}/calculations/{calculationID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Get a calculation",
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"type": "string", "name": "calculationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CalculationResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["calculations"],
                "summary": "Deactivate a calculation",
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"type": "string", "name": "calculationID", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/events/{eventID}/calculations/{calculationID}/share": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Extend the share link of a calculation",
                "parameters": [
                    {"type": "string", "name": "eventID", "in": "path", "required": true},
                    {"type": "string", "name": "calculationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ShareResponse"}}
                }
            }
        },
        "/exchange-rates": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Create a new exchange rate",
                "parameters": [{"name": "rate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateExchangeRateRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ExchangeRateResponse"}}
                }
            }
        },
        "/exchange-rates/{base}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get the rate table of a base currency",
                "parameters": [{"type": "string", "name": "base", "in": "path", "required": true, "maxLength": 3, "minLength": 3}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateTableResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CalculationResponse": {"type": "object"},
        "dto.CreateCalculationRequest": {"type": "object"},
        "dto.CreateExchangeRateRequest": {"type": "object"},
        "dto.ExchangeRateResponse": {"type": "object"},
        "dto.ListCalculationsResponse": {"type": "object"},
        "dto.MasterDataResponse": {"type": "object"},
        "dto.RateTableResponse": {"type": "object"},
        "dto.ShareResponse": {"type": "object"}
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Expense Settlement API",
	Description:      "Settles shared event expenses into direct and simplified debt ledgers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
