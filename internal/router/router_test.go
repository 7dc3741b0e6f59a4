// File: internal/router/router_test.go
package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-api/internal/avatar"
	"agenda-api/internal/cache"
	"agenda-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, avatar.NewFetcher("http://example.com"))

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /ping",
		"POST /auth/login",
		"POST /auth/refresh",
		"GET /user/index",
		"GET /user/random-avatar",
		"POST /user",
		"GET /user/:id",
		"PATCH /user/:id",
		"DELETE /user/:id",
	}
	for _, route := range expected {
		require.True(t, registered[route], "missing route %s", route)
	}
	require.Len(t, expected, len(registered))
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, avatar.NewFetcher("http://example.com"))

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/ping"},
		{http.MethodGet, "/user/index"},
		{http.MethodGet, "/user/random-avatar"},
		{http.MethodPost, "/user"},
		{http.MethodGet, "/user/1"},
		{http.MethodPatch, "/user/1"},
		{http.MethodDelete, "/user/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		require.JSONEq(t, `{"error":"The user is not authorized to access this resource"}`, rec.Body.String())
	}
}
