// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"agenda-api/internal/api"
	"agenda-api/internal/apperr"
	"agenda-api/internal/cache"
	"agenda-api/internal/database"
	"agenda-api/internal/service"
	"agenda-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail    = store.GetUserByEmail
	getUserByID       = store.GetUserByID
	comparePassword   = service.ComparePassword
	issueAccessToken  = service.IssueAccessToken
	issueRefreshToken = service.IssueRefreshToken
	redeemRefresh     = service.RedeemRefreshToken
)

// @Summary     Log in with email and password
// @Description Verifies credentials and returns an access token plus a single-use refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "Credentials"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} apperr.ErrorResponse
// @Failure     401  {object} apperr.ErrorResponse
// @Failure     500  {object} apperr.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, apperr.ErrorResponse{Error: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "invalid credentials"})
		}
		if !user.IsActive {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "invalid credentials"})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: "invalid credentials"})
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
