// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"agenda-api/internal/api"
	"agenda-api/internal/apperr"
	"agenda-api/internal/cache"
	"agenda-api/internal/database"
	"agenda-api/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Exchange a refresh token for a new access token
// @Description Refresh tokens are single use; a replacement is returned alongside the access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RefreshRequest true "Refresh token"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} apperr.ErrorResponse
// @Failure     401  {object} apperr.ErrorResponse
// @Failure     500  {object} apperr.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: err.Error()})
		}

		userID, err := redeemRefresh(c.Request().Context(), cch, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "invalid refresh token"})
		}

		// Re-read the user so revoked accounts and role changes take effect
		// at refresh time.
		user, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil || !user.IsActive {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "invalid refresh token"})
		}

		access, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, apperr.ErrorResponse{Error: "failed to issue token"})
		}
		refresh, err := issueRefreshToken(c.Request().Context(), cch, *user, service.RefreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, apperr.ErrorResponse{Error: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "Bearer",
			ExpiresIn:    int(service.AccessTokenTTL.Seconds()),
		})
	}
}
