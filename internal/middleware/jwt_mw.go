package middleware

import (
	"net/http"
	"strings"

	"nishlen_auth/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. A missing or
// malformed Authorization header is a 401; a token that fails verification
// (bad signature, expired, structurally broken) is a 403. The check is pure
// in-process work, no database access on the hot path.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		tokenString := parts[1]
		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token."})
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
