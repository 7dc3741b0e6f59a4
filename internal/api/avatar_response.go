package api

// swagger:model api.AvatarResponse
type AvatarResponse struct {
	Avatar string `json:"avatar" example:"https://doodleipsum.com/300/avatar-2?shape=circle&n=42"`
}
