package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Code clasifica errores de validación visibles para el cliente.
type Code string

const (
	CodeMissingParameter  Code = "MissingParameter"
	CodeInvalidDateFormat Code = "InvalidDateFormat"
	CodeInvalidField      Code = "InvalidField"
)

// ValidationError es el resultado "nombrado" de una validación de entrada.
// Message es lo que se devuelve al cliente tal cual.
type ValidationError struct {
	Code    Code
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func Missing(field, msg string) *ValidationError {
	return &ValidationError{Code: CodeMissingParameter, Field: field, Message: msg}
}

func InvalidDate(field, msg string) *ValidationError {
	return &ValidationError{Code: CodeInvalidDateFormat, Field: field, Message: msg}
}

func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Code: CodeInvalidField, Field: field, Message: msg}
}

// AsValidation extrae el ValidationError si lo hay.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
