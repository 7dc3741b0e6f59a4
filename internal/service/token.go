// File: internal/service/token.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"agenda-api/internal/cache"
	"agenda-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Claims is the JWT payload identifying the principal.
type Claims struct {
	UserID  int  `json:"id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// IssueAccessToken signs an HS256 JWT for the user with the given TTL.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates a JWT, returning its claims.
func VerifyAccessToken(tokenString string) (*Claims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// refreshData is what a refresh token resolves to.
type refreshData struct {
	UserID int `json:"user_id"`
}

func refreshKey(token string) string { return "refresh:" + token }

// newRefreshToken generates the opaque token value; tests override it.
var newRefreshToken = uuid.NewString

// IssueRefreshToken stores an opaque refresh token for the user in the cache
// under the given TTL and returns it.
func IssueRefreshToken(ctx context.Context, cch cache.Cache, user model.User, ttl time.Duration) (string, error) {
	token := newRefreshToken()
	payload, err := json.Marshal(refreshData{UserID: user.ID})
	if err != nil {
		return "", err
	}
	if err := cch.Set(ctx, refreshKey(token), payload, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// RedeemRefreshToken resolves a refresh token to its user id and revokes it.
// Tokens are single use; the caller issues a replacement.
func RedeemRefreshToken(ctx context.Context, cch cache.Cache, token string) (int, error) {
	raw, err := cch.Get(ctx, refreshKey(token)).Result()
	if err != nil {
		return 0, fmt.Errorf("unknown refresh token")
	}
	var data refreshData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return 0, fmt.Errorf("corrupt refresh token payload: %w", err)
	}
	if err := cch.Del(ctx, refreshKey(token)).Err(); err != nil {
		return 0, err
	}
	return data.UserID, nil
}
