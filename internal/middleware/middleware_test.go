package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-api/internal/model"
	"agenda-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	e := echo.New()
	next := func(c echo.Context) error {
		claims, ok := c.Get(ContextUserKey).(*service.Claims)
		require.True(t, ok)
		return c.String(http.StatusOK, "id="+claims.Subject)
	}
	h := RequireAuth(next)

	do := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec
	}

	unauthorizedBody := `{"error":"The user is not authorized to access this resource"}`

	t.Run("valid token", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.User{ID: 9, IsAdmin: true}, time.Minute)
		require.NoError(t, err)
		rec := do("Bearer " + token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "id=9", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		rec := do("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, unauthorizedBody, rec.Body.String())
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		rec := do("Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, unauthorizedBody, rec.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := do("Bearer")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, unauthorizedBody, rec.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := do("Bearer not.a.token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, unauthorizedBody, rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.IssueAccessToken(model.User{ID: 9}, -time.Minute)
		require.NoError(t, err)
		rec := do("Bearer " + token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, unauthorizedBody, rec.Body.String())
	})
}
