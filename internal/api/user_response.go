// File: internal/api/user_response.go
package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Avatar    Avatar    `json:"avatar" swaggertype:"string" example:"https://doodleipsum.com/300/avatar-2?shape=circle"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
