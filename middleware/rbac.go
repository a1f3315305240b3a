package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/types"
)

// AdminRequired resolves the caller's application role and rejects anyone who
// is not an ADMIN. It must run after AuthMiddleware.
func AdminRequired(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		userID := c.GetString(ContextKeyUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Authentication required",
			})
			return
		}

		profile, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Warnw("RBAC check failed to load profile", "userID", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "User profile not found",
			})
			return
		}

		if profile.Role != types.UserRoleAdmin {
			log.Warnw("Admin access denied",
				"userID", userID,
				"role", profile.Role,
				"path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "Administrator access required",
			})
			return
		}

		c.Set(ContextKeyUserRole, profile.Role)
		c.Next()
	}
}

// GetUserRole retrieves the resolved role from the request context.
func GetUserRole(c *gin.Context) (types.UserRole, bool) {
	role, exists := c.Get(ContextKeyUserRole)
	if !exists {
		return "", false
	}
	userRole, ok := role.(types.UserRole)
	return userRole, ok
}
