package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name                 string  `json:"name" example:"Alice"`
	Email                string  `json:"email" example:"alice@example.com"`
	Avatar               *string `json:"avatar,omitempty" example:"https://doodleipsum.com/300/avatar-2?shape=circle"`
	Password             string  `json:"password" example:"Secret123!"`
	PasswordConfirmation *string `json:"password_confirmation" example:"Secret123!"`
}
