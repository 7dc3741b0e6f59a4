package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	err := Validation("bad input")
	require.EqualError(t, err, "bad input")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	promoted := ValidationOf(ErrEmailTaken)
	require.EqualError(t, promoted, "El email ya está en uso")
	require.True(t, errors.As(promoted, &ve))
}

func TestMapToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "The user is not authorized to access this resource"},
		{"wrapped unauthorized", fmt.Errorf("gate: %w", ErrUnauthorized), http.StatusUnauthorized, "The user is not authorized to access this resource"},
		{"not found", ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"validation", Validation("Passwords do not match"), http.StatusUnprocessableEntity, "Passwords do not match"},
		{"email conflict from store", ErrEmailTaken, http.StatusUnprocessableEntity, "El email ya está en uso"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := MapToHTTP(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.body, body.Error)
		})
	}
}
