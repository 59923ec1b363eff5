package errors

import "net/http"

// AppError is a custom error type that includes an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, "Invalid request parameters")
	ErrUnauthorized   = NewAppError(http.StatusUnauthorized, "Unauthorized access")
	ErrForbidden      = NewAppError(http.StatusForbidden, "Access denied")
	ErrNotFound       = NewAppError(http.StatusNotFound, "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, "Internal server error")
	ErrRateLimit      = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")
)

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}

// Gamification error taxonomy. Domain failures from the duel, quest and
// cosmetic engines mapped onto HTTP codes.

// InvalidInput rejects malformed or negative numeric input (lifts, bodyweight, duel type)
func InvalidInput(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

// InvalidTransition rejects an illegal duel state machine edge (e.g. accepting a non-pending duel)
func InvalidTransition(msg string) *AppError {
	return NewAppError(http.StatusConflict, msg)
}

// InvalidProof rejects a proof submission with a missing or negative reported value
func InvalidProof(msg string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, msg)
}

// InsufficientResource rejects an unlock when the XP or rank gate is not met
func InsufficientResource(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}
