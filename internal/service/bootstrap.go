// File: internal/service/bootstrap.go
package service

import (
	"context"
	"strings"

	"agenda-api/internal/database"
	"agenda-api/internal/model"
	"agenda-api/internal/store"
)

var (
	countUsers      = store.CountUsers
	createUserStore = store.CreateUser
)

// EnsureAdmin seeds an active admin account when the users table is empty,
// so the admin-only surface is reachable on a fresh deploy. A no-op when
// credentials are not configured or any user already exists.
func EnsureAdmin(ctx context.Context, db database.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := countUsers(ctx, db)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = createUserStore(ctx, db, &model.User{
		Name:         "Admin",
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		IsAdmin:      true,
		IsActive:     true,
	})
	return err
}
