// Package docs registra en swag la spec OpenAPI servida en /swagger/doc.json.
//
// Se mantiene a mano: al cambiar las anotaciones @Router/@Param de un handler
// hay que actualizar docTemplate también.
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
        "/auth/login": {
            "post": {
                "description": "Valida credenciales y devuelve un JWT HS256 (expira según JWT_TTL, por defecto 1h).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.credentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.tokenResponse"}},
                    "400": {"description": "email o password faltante", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Crea una cuenta con email y password (mínimo 8 caracteres). El email se guarda en minúsculas.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registrar usuario",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.credentialsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "email inválido / password corto", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/hello": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Saludo autenticado",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.helloResponse"}},
                    "401": {"description": "Invalid or missing token", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/medications": {
            "get": {
                "description": "Devuelve todos los medicamentos del usuario autenticado, más recientes primero.",
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Listar medicamentos",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.listMedicationsResponse"}},
                    "401": {"description": "Invalid or missing token", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Crea un medicamento con su esquema: daily_frequency tomas cada day_interval días desde start_date.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Crear medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Medicamento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.medicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "validación", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "401": {"description": "Invalid or missing token", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/medications/{medicationID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Obtener medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "Invalid medication id", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Medication not found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            },
            "put": {
                "description": "PUT completo: todos los campos son obligatorios.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Reemplazar medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Medicamento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.medicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "validación / Invalid medication id", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Medication not found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Borra el medicamento y sus tomas registradas.",
                "tags": ["medications"],
                "summary": "Borrar medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Invalid medication id", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Medication not found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/medications/{medicationID}/consumptions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["consumptions"],
                "summary": "Listar tomas de un medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"type": "string", "description": "desde (YYYY-MM-DD, inclusive)", "name": "from", "in": "query"},
                    {"type": "string", "description": "hasta (YYYY-MM-DD, inclusive)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/consumptions.listConsumptionsResponse"}},
                    "400": {"description": "Invalid from / Invalid to", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Medication not found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Registra que el usuario tomó el medicamento en date/time.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["consumptions"],
                "summary": "Registrar toma",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Toma", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/consumptions.logConsumptionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/consumptions.consumptionResponse"}},
                    "400": {"description": "validación / Invalid medication id", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "404": {"description": "Medication not found", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/consumption-report": {
            "get": {
                "description": "7 días consecutivos desde start_date: tomas esperadas según el esquema de cada medicamento y tomas registradas.",
                "produces": ["application/json"],
                "tags": ["report"],
                "summary": "Reporte semanal de tomas",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "primer día (YYYY-MM-DD)", "name": "start_date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/report.DayResult"}}},
                    "400": {"description": "start_date is required / Invalid start_date (use YYYY-MM-DD)", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "401": {"description": "Invalid or missing token", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "consumptions.consumptionResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "integer"},
                "medication_id": {"type": "integer"},
                "time": {"type": "string"}
            }
        },
        "consumptions.listConsumptionsResponse": {
            "type": "object",
            "properties": {
                "consumptions": {"type": "array", "items": {"$ref": "#/definitions/consumptions.consumptionResponse"}}
            }
        },
        "consumptions.logConsumptionRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2025-02-16"},
                "time": {"type": "string", "example": "09:30"}
            }
        },
        "medications.listMedicationsResponse": {
            "type": "object",
            "properties": {
                "medications": {"type": "array", "items": {"$ref": "#/definitions/medications.medicationResponse"}}
            }
        },
        "medications.medicationRequest": {
            "type": "object",
            "properties": {
                "daily_frequency": {"type": "integer", "example": 2},
                "day_interval": {"type": "integer", "example": 1},
                "dose": {"type": "string", "example": "400mg"},
                "name": {"type": "string", "example": "Ibuprofeno"},
                "start_date": {"description": "YYYY-MM-DD", "type": "string", "example": "2025-02-15"}
            }
        },
        "medications.medicationResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "daily_frequency": {"type": "integer"},
                "day_interval": {"type": "integer"},
                "dose": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "start_date": {"type": "string"}
            }
        },
        "report.ActualConsumption": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "integer"},
                "medication_id": {"type": "integer"},
                "medication_name": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "report.DayResult": {
            "type": "object",
            "properties": {
                "actual": {"type": "array", "items": {"$ref": "#/definitions/report.ActualConsumption"}},
                "date": {"type": "string"},
                "expected": {"type": "array", "items": {"$ref": "#/definitions/schedule.ExpectedConsumption"}}
            }
        },
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "schedule.ExpectedConsumption": {
            "type": "object",
            "properties": {
                "dose_index": {"description": "1..DailyFrequency", "type": "integer"},
                "medication_id": {"type": "integer"},
                "medication_name": {"type": "string"}
            }
        },
        "users.credentialsRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.helloResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "users.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"}
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
	Title:            "SmartPill API",
	Description:      "Seguimiento de medicación: medicamentos, tomas registradas y reporte semanal esperado vs real.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
