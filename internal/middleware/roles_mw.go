package middleware

import (
	"net/http"

	"nishlen_auth/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles. It
// must run after JWTAuthMiddleware so that the role is already in the context.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token, ensure JWT middleware runs first"})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid role type in token"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}

		c.Next()
	}
}

// MasterMiddleware restricts a route to service masters
func MasterMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleMaster)
}

// SalonAdminMiddleware restricts a route to salon administrators
func SalonAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleSalonAdmin)
}

// ClientMiddleware restricts a route to clients
func ClientMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleClient)
}

// StaffMiddleware allows masters and salon administrators
func StaffMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleMaster, model.RoleSalonAdmin)
}
