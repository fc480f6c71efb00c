package errors

import (
	"net/http"
	"strings"

	"directorio/internal/errors"
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

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Predefined error types
var (
	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Se necesita un token de autorización",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido o expirado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email o contraseña incorrectos",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Error al generar el token",
		"",
	)

	// Authorization-related errors
	ErrNotAdmin = NewBaseError(
		http.StatusForbidden,
		"NOT_ADMIN",
		"No tienes permisos para realizar esta acción",
		"",
	)

	ErrWrongPrincipalKind = NewBaseError(
		http.StatusForbidden,
		"WRONG_PRINCIPAL_KIND",
		"El token no corresponde al tipo de cuenta requerido",
		"",
	)

	// Usuario-related errors
	ErrUsuarioNotFound = NewBaseError(
		http.StatusNotFound,
		"USUARIO_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrUsuarioAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USUARIO_ALREADY_EXISTS",
		"Ya existe un usuario con ese email",
		"",
	)

	// Comercio-related errors
	ErrComercioNotFound = NewBaseError(
		http.StatusNotFound,
		"COMERCIO_NOT_FOUND",
		"Comercio no encontrado",
		"",
	)

	ErrComercioAlreadyExists = NewBaseError(
		http.StatusConflict,
		"COMERCIO_ALREADY_EXISTS",
		"Ya existe un comercio con ese CIF o email",
		"",
	)

	ErrComercioHasPagina = NewBaseError(
		http.StatusForbidden,
		"COMERCIO_HAS_PAGINA",
		"El comercio ya tiene una página",
		"",
	)

	ErrComercioSinPagina = NewBaseError(
		http.StatusForbidden,
		"COMERCIO_SIN_PAGINA",
		"El comercio no tiene una página",
		"",
	)

	// Web-related errors
	ErrWebNotFound = NewBaseError(
		http.StatusNotFound,
		"WEB_NOT_FOUND",
		"Web no encontrada",
		"",
	)

	ErrResenaDuplicada = NewBaseError(
		http.StatusConflict,
		"RESENA_DUPLICADA",
		"Ya has dejado una reseña en esta web",
		"",
	)

	ErrFotoUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"FOTO_UPLOAD_FAILED",
		"Error al guardar la foto",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	ErrInvalidSortField = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SORT_FIELD",
		"Campo de ordenación no permitido",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Error en la transacción de base de datos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto con el estado actual del recurso",
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
	return "Error al ejecutar la operación en base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ValidationError carries one message per rejected field.
type ValidationError struct {
	messages []string
}

// NewValidationError creates a 400 error from field messages.
func NewValidationError(messages ...string) AppError {
	return &ValidationError{messages: messages}
}

func (e *ValidationError) Error() string {
	if len(e.messages) == 0 {
		return ErrValidationFailed.Message()
	}

	return strings.Join(e.messages, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return e.Error()
}

func (e *ValidationError) Details() string {
	return ""
}

// Messages returns the individual field messages.
func (e *ValidationError) Messages() []string {
	if len(e.messages) == 0 {
		return []string{ErrValidationFailed.Message()}
	}

	return e.messages
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
