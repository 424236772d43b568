package middleware

import (
	"net/http"
	"strings"

	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
)

// ValidateToken checks the bearer token, rejects revoked sessions, and puts
// username/role/claims into the request context for the handlers.
func ValidateToken(store *auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		revoked, err := store.IsRevoked(c.Request.Context(), claims.JTI)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session check failed"})
			c.Abort()
			return
		}
		if revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", string(claims.Role))
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := models.Role(c.GetString("role"))
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		c.Abort()
	}
}
