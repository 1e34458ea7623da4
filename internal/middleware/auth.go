package middleware

import (
	"net/http"
	"strings"

	"github.com/centsible/centsible/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

type AuthMiddleware struct {
	authService *services.AuthService
}

func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth resolves the acting user from either a bearer token or the
// session cookie, in that order. A present bearer token is authoritative: if
// it is malformed, expired or badly signed the request fails with 401 and is
// never retried against the session cookie.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format", "code": "invalid_token"})
				c.Abort()
				return
			}

			claims, err := m.authService.ValidateToken(parts[1])
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token", "code": "invalid_token"})
				c.Abort()
				return
			}

			c.Set(userIDKey, claims.UserID)
			c.Next()
			return
		}

		session := sessions.Default(c)
		if v := session.Get(userIDKey); v != nil {
			if userID, ok := v.(uint); ok {
				c.Set(userIDKey, userID)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "code": "unauthenticated"})
		c.Abort()
	}
}

func CurrentUserID(c *gin.Context) uint {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	return v.(uint)
}
