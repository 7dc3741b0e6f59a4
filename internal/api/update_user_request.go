// File: internal/api/update_user_request.go
package api

// UpdateUserRequest is a partial update: nil fields are left untouched.
// Avatar is only applied when UpdateAvatar is set, regardless of its value.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name                 *string `json:"name" example:"Alice"`
	Email                *string `json:"email" example:"alice@example.com"`
	Avatar               Avatar  `json:"avatar"`
	UpdateAvatar         bool    `json:"update_avatar" example:"false"`
	IsActive             *bool   `json:"is_active" example:"true"`
	Password             *string `json:"password" example:"Secret123!"`
	PasswordConfirmation *string `json:"password_confirmation" example:"Secret123!"`
}
