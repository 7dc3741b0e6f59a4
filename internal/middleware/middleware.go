package middleware

import (
	"net/http"
	"strings"

	"agenda-api/internal/apperr"
	"agenda-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperr.ErrUnauthorized
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, apperr.ErrUnauthorized
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, apperr.ErrUnauthorized
	}
	return claims, nil
}

// RequireAuth resolves the bearer token into the principal's claims and puts
// them on the context. A missing or invalid token gets the uniform 401 body;
// per-operation authorization stays in the handlers via service.Authorize.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{Error: apperr.ErrUnauthorized.Error()})
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}
