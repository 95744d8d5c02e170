// Package respond agrupa los helpers de respuesta HTTP.
//
// Antes writeJSON estaba duplicado en cada handler; con cuatro módulos
// usándolo ya conviene tenerlo en un solo lugar.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse es el cuerpo de todos los errores de la API.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error responde {"error": msg}, el formato que espera el cliente web.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
