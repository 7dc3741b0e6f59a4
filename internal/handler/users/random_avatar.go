// File: internal/handler/users/random_avatar.go
package users

import (
	"net/http"

	"agenda-api/internal/api"
	"agenda-api/internal/apperr"
	"agenda-api/internal/avatar"
	"agenda-api/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Fetch a random avatar URL
// @Description Proxies the external image-placeholder service
// @Tags        users
// @Produce     json
// @Success     200 {object} api.AvatarResponse
// @Failure     401 {object} apperr.ErrorResponse
// @Failure     502 {object} apperr.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/random-avatar [get]
func RandomAvatarHandler(f *avatar.Fetcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authorize(principal(c), service.OpFetchAvatar, 0); err != nil {
			return fail(c, err)
		}
		url, err := f.Random(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, apperr.ErrorResponse{Error: "failed to fetch avatar"})
		}
		return c.JSON(http.StatusOK, api.AvatarResponse{Avatar: url})
	}
}
