// File: internal/service/authz.go
package service

import "agenda-api/internal/apperr"

// Operation names a user-administration action for authorization purposes.
type Operation string

const (
	OpListUsers   Operation = "user.list"
	OpGetUser     Operation = "user.get"
	OpCreateUser  Operation = "user.create"
	OpUpdateUser  Operation = "user.update"
	OpDeleteUser  Operation = "user.delete"
	OpFetchAvatar Operation = "user.random_avatar"
)

// Authorize decides whether the principal may perform op on the target user.
// The principal is passed in explicitly; nothing is read from ambient state.
// Admins may do everything; a regular user may only update their own record.
// Reads stay admin-only, even for the caller's own id.
func Authorize(principal *Claims, op Operation, targetID int) error {
	if principal == nil {
		return apperr.ErrUnauthorized
	}
	if principal.IsAdmin {
		return nil
	}
	if op == OpUpdateUser && principal.UserID == targetID {
		return nil
	}
	return apperr.ErrUnauthorized
}
