// File: internal/handler/users/random_avatar_test.go
package users

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-api/internal/avatar"

	"github.com/stretchr/testify/require"
)

func TestRandomAvatarHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("png-bytes"))
		}))
		defer srv.Close()
		h := RandomAvatarHandler(avatar.NewFetcher(srv.URL))

		c, rec := newContext(t, http.MethodGet, "/user/random-avatar", "", adminClaims)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"avatar":"`+srv.URL)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()
		h := RandomAvatarHandler(avatar.NewFetcher(srv.URL))

		c, rec := newContext(t, http.MethodGet, "/user/random-avatar", "", adminClaims)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.JSONEq(t, `{"error":"failed to fetch avatar"}`, rec.Body.String())
	})

	t.Run("non-admin gets 401", func(t *testing.T) {
		h := RandomAvatarHandler(avatar.NewFetcher("http://127.0.0.1:0"))
		c, rec := newContext(t, http.MethodGet, "/user/random-avatar", "", regularClaims)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, unauthorizedBody, rec.Body.String())
	})
}
