package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BrewLog/configs"
)

const ClaimsKey = "auth.claims"

var (
	ErrMissingToken = errors.New("authorization header not found")
	ErrTokenFormat  = errors.New("authorization format must be Bearer {token}")
	ErrInvalidToken = errors.New("invalid token")
)

type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// Enabled reports whether a signing secret is configured.
func (a *Manager) Enabled() bool {
	return a.conf.SecretKey != ""
}

// WriteGuard rejects mutating requests that lack a valid bearer token.
// Reads are never checked and the guard is a no-op without a secret.
func (a *Manager) WriteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() || !mutating(c.Request.Method) {
			c.Next()

			return
		}

		claims, err := a.Verify(c.GetHeader("Authorization"))
		if err != nil {
			a.logger.Warn("rejected request", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})

			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// Verify parses an Authorization header value and returns the token claims.
func (a *Manager) Verify(authorization string) (jwt.MapClaims, error) {
	accessToken, err := extractToken(authorization)
	if err != nil {
		return nil, err
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, ErrInvalidToken
	}

	if a.conf.Audience != "" && !claims.VerifyAudience(a.conf.Audience, true) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	return claims, nil
}

func extractToken(authorization string) (string, error) {
	if len(authorization) == 0 {
		return "", ErrMissingToken
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found || token == "" {
		return "", ErrTokenFormat
	}

	return token, nil
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
