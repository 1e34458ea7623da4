package middleware

import (
	"net/http"

	"github.com/centsible/centsible/internal/repository"
	"github.com/gin-gonic/gin"
)

type AdminMiddleware struct {
	userRepo    *repository.UserRepository
	adminEmails []string
}

func NewAdminMiddleware(userRepo *repository.UserRepository, adminEmails []string) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo:    userRepo,
		adminEmails: adminEmails,
	}
}

// RequireAdmin runs after RequireAuth and checks the resolved user's email
// against the configured allowlist.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "code": "unauthenticated"})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(userID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "code": "unauthenticated"})
			c.Abort()
			return
		}

		isAdmin := false
		for _, admin := range m.adminEmails {
			if admin == user.Email {
				isAdmin = true
				break
			}
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required", "code": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
