// File: internal/apperr/apperr.go
package apperr

import (
	"errors"
	"net/http"
)

// Sentinel errors for the fixed API messages. The strings are part of the
// public contract and must not change, including the localized conflict
// message for a duplicate email.
var (
	// ErrUnauthorized is returned when the principal may not perform the
	// requested operation.
	ErrUnauthorized = errors.New("The user is not authorized to access this resource")
	// ErrUserNotFound is returned when the target user id does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrEmailTaken is returned when the email is already in use.
	ErrEmailTaken = errors.New("El email ya está en uso")
	// ErrInvalidEmail is returned when the email is not syntactically valid.
	ErrInvalidEmail = errors.New("Must be a valid email")
	// ErrPasswordTooShort is returned when the password has fewer than 8 characters.
	ErrPasswordTooShort = errors.New("The password needs to be at least 8 characters long")
	// ErrPasswordsDoNotMatch is returned when password_confirmation is absent or differs.
	ErrPasswordsDoNotMatch = errors.New("Passwords do not match")
)

// ValidationError marks malformed or conflicting input. First failing rule
// only; violations are never aggregated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation wraps a fixed message as a ValidationError.
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// ValidationOf promotes a sentinel to a ValidationError, keeping its message.
func ValidationOf(err error) error {
	return &ValidationError{Message: err.Error()}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MapToHTTP translates a domain error to its status code and response body.
// Anything outside the taxonomy is an internal error.
func MapToHTTP(err error) (int, ErrorResponse) {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: ErrUnauthorized.Error()}
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrUserNotFound.Error()}
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Message}
	case errors.Is(err, ErrEmailTaken):
		// A unique-index violation surfaced at write time maps to the same
		// conflict message the validation read produces.
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrEmailTaken.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}
