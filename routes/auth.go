package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	userControllers "github.com/MarcoProfi00/ez-electronics-sub000/controllers/user"
	"github.com/MarcoProfi00/ez-electronics-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public endpoints plus the session ones that
// only need a valid token.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	r.POST("/users", userControllers.CreateUserHandler(db)) // public registration
	r.POST("/sessions", auth.LoginHandler(db))

	sessionGroup := r.Group("/sessions")
	sessionGroup.Use(middleware.ValidateToken(store))
	{
		sessionGroup.GET("/current", auth.CurrentUserHandler(db))
		sessionGroup.DELETE("/current", auth.LogoutHandler(store))
	}
}
