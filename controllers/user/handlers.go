package userControllers

import (
	"net/http"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserInput struct {
	Name      *string `json:"name"`
	Surname   *string `json:"surname"`
	Address   *string `json:"address"`
	Birthdate *string `json:"birthdate"`
}

// requester rebuilds the acting user from the token claims set by the auth
// middleware.
func requester(c *gin.Context) models.User {
	role, _ := models.MapRole(c.GetString("role"))
	return models.User{Username: c.GetString("username"), Role: role}
}

// POST /users (public registration)
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		role, err := models.MapRole(input.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := CreateUser(db, input.Username, input.Name, input.Surname, input.Password, role)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// GET /users (admin), optionally narrowed with ?role=
func GetUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			users []models.User
			err   error
		)
		if raw := c.Query("role"); raw != "" {
			role, mapErr := models.MapRole(raw)
			if mapErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": mapErr.Error()})
				return
			}
			users, err = UsersByRole(db, role)
		} else {
			users, err = Users(db)
		}
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/:username — non-admins may only fetch themselves.
func GetUserByUsernameHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Param("username")
		req := requester(c)
		if !req.IsAdmin() && req.Username != target {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Error()})
			return
		}
		user, err := UserByUsername(db, target)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PATCH /users/:username
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		info := UpdateInfo{Name: input.Name, Surname: input.Surname, Address: input.Address}
		if input.Birthdate != nil {
			birthdate, err := time.Parse(dateLayout, *input.Birthdate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birthdate"})
				return
			}
			info.Birthdate = &birthdate
		}

		user, err := UpdateUserInfo(db, requester(c), c.Param("username"), info)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /users/:username
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteUser(db, requester(c), c.Param("username")); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// DELETE /users (admin)
func DeleteAllUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteAllNonAdmins(db); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All non-admin users deleted"})
	}
}
