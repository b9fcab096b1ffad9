package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("access denied")
	ErrConflict      = errors.New("conflict with current state")

	// Errores fatales de carga masiva: abortan el lote completo antes de procesar filas.
	ErrEmptyFile       = errors.New("excel file is empty")
	ErrMissingColumns  = errors.New("missing required columns")
	ErrUnsupportedFile = errors.New("only Excel (.xlsx) or CSV files are allowed")
)

// MissingColumnsError enumera los campos lógicos sin columna en la hoja.
type MissingColumnsError struct {
	Fields []string
}

func (e *MissingColumnsError) Error() string {
	return "Missing required columns: " + strings.Join(e.Fields, ", ")
}

// Unwrap permite errors.Is(err, ErrMissingColumns).
func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// ValidationError describe una entrada inválida con un mensaje legible; envuelve ErrInvalidInput.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}
