// Package errors defines the application error taxonomy. Every route maps
// collaborator failures to one of these kinds at the boundary.
package errors

import (
	"net/http"

	"tienda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Client-facing messages are Spanish, matching the
// storefront frontend this API serves.
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos.",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Email y contraseña son requeridos.",
		"",
	)

	// Account-related errors
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"El email ya está en uso.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Credenciales inválidas.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"No se pudo registrar el usuario.",
		"",
	)

	// Authentication gate errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Se requiere autenticación.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"Token inválido o expirado.",
		"",
	)

	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"El usuario aún no tiene una tienda.",
		"",
	)

	ErrStoreAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_EXISTS",
		"Este usuario ya tiene una tienda.",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"No se pudo crear la tienda.",
		"",
	)

	ErrStoreUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UPDATE_FAILED",
		"No se pudo actualizar la tienda.",
		"",
	)

	ErrPublicStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"PUBLIC_STORE_NOT_FOUND",
		"Tienda no encontrada o no publicada.",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado.",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permiso.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del servidor.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error interno del servidor."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
