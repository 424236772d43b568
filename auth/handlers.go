package auth

import (
	"errors"
	"net/http"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /sessions
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "username = ?", input.Username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if !VerifyPassword(input.Password, user.Password, user.Salt) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
			return
		}

		token, err := IssueToken(user.Username, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// DELETE /sessions/current
func LogoutHandler(store *TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsVal, exists := c.Get("claims")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims := claimsVal.(Claims)
		if err := store.Revoke(c.Request.Context(), claims); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /sessions/current
func CurrentUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		var user models.User
		if err := db.First(&user, "username = ?", username).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrUserNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
