package middleware

import (
	"net/http"
	"strings"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const authUserKey = "authUser"

// AuthUser is the authenticated identity attached to the request context
type AuthUser struct {
	ID   uint
	Role string
}

// CurrentUser returns the authenticated identity set by RequireAuth
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	value, exists := c.Get(authUserKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := value.(AuthUser)
	return user, ok
}

// RequireAuth validates the bearer token from the Authorization header and
// attaches the decoded identity to the request context
func RequireAuth(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(authUserKey, AuthUser{ID: claims.UserID, Role: claims.Role})

		c.Next()
	}
}

// RequireAdmin checks that the authenticated user has the admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := CurrentUser(c)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
