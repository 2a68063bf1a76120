// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"suscripciones-service/internal/pkg/jwt"
	"suscripciones-service/internal/pkg/response"
	"suscripciones-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "auth_claims"

type AuthMiddleware struct {
	verifier *jwt.Verifier
	limiter  *session.RateLimiter
}

func NewAuthMiddleware(verifier *jwt.Verifier, limiter *session.RateLimiter) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		limiter:  limiter,
	}
}

// Auth validates the bearer token and rejects revoked tokens
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims, err := m.verifier.VerifyAccessToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		if m.limiter != nil {
			revoked, err := m.limiter.IsTokenBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Error(c, http.StatusUnauthorized, "token has been revoked", nil)
				return
			}
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// extractToken extracts Bearer token from Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return ""
}

// GetClaims returns the verified claims set by Auth()
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

// MustGetClaims returns the verified claims or panics; only valid behind Auth()
func MustGetClaims(c *gin.Context) *jwt.Claims {
	claims, ok := GetClaims(c)
	if !ok {
		panic("auth claims not found in context")
	}
	return claims
}
