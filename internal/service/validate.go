// File: internal/service/validate.go
package service

import (
	"context"
	"net/mail"

	"agenda-api/internal/api"
	"agenda-api/internal/apperr"
	"agenda-api/internal/database"
	"agenda-api/internal/store"
)

// emailInUse is swappable for tests.
var emailInUse = store.EmailInUse

const maxFieldLen = 255

// Rules run in a fixed order and report only the first violation: name,
// email syntax, email length, email uniqueness, password length, password
// confirmation. The error messages are part of the API contract.

func validName(name string) error {
	if len(name) > maxFieldLen {
		return apperr.Validation("The name must not be greater than 255 characters")
	}
	return nil
}

func validEmail(ctx context.Context, db database.DB, email string, excludeID int) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.ValidationOf(apperr.ErrInvalidEmail)
	}
	if len(email) > maxFieldLen {
		return apperr.Validation("The email must not be greater than 255 characters")
	}
	inUse, err := emailInUse(ctx, db, email, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		return apperr.ValidationOf(apperr.ErrEmailTaken)
	}
	return nil
}

// validPassword checks length first, then the confirmation match.
func validPassword(password string, confirmation *string) error {
	if len(password) < 8 {
		return apperr.ValidationOf(apperr.ErrPasswordTooShort)
	}
	if confirmation == nil || *confirmation != password {
		return apperr.ValidationOf(apperr.ErrPasswordsDoNotMatch)
	}
	return nil
}

// ValidateNewUser checks a creation payload. name, email, and password are
// required; email uniqueness is checked against the whole user set.
func ValidateNewUser(ctx context.Context, db database.DB, req api.CreateUserRequest) error {
	if req.Name == "" {
		return apperr.Validation("The name field is required")
	}
	if err := validName(req.Name); err != nil {
		return err
	}
	if req.Email == "" {
		return apperr.Validation("The email field is required")
	}
	if err := validEmail(ctx, db, req.Email, 0); err != nil {
		return err
	}
	if req.Password == "" {
		return apperr.Validation("The password field is required")
	}
	return validPassword(req.Password, req.PasswordConfirmation)
}

// ValidateUserPatch checks a partial update payload. Only present fields are
// validated; the uniqueness check ignores the target user's own row.
func ValidateUserPatch(ctx context.Context, db database.DB, req api.UpdateUserRequest, targetID int) error {
	if req.Name != nil {
		if err := validName(*req.Name); err != nil {
			return err
		}
	}
	if req.Email != nil {
		if err := validEmail(ctx, db, *req.Email, targetID); err != nil {
			return err
		}
	}
	if req.Password != nil {
		if err := validPassword(*req.Password, req.PasswordConfirmation); err != nil {
			return err
		}
	}
	return nil
}
