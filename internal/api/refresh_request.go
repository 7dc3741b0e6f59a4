package api

// swagger:model api.RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"0b9cc3f2-6f5f-4a22-9b7a-6f1d0a2f3c44"`
}
