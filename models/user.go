package models

import (
	"errors"
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// MapRole converts a request string into a Role.
func MapRole(role string) (Role, error) {
	switch strings.ToLower(role) {
	case strings.ToLower(string(RoleCustomer)):
		return RoleCustomer, nil
	case strings.ToLower(string(RoleManager)):
		return RoleManager, nil
	case strings.ToLower(string(RoleAdmin)):
		return RoleAdmin, nil
	default:
		return "", errors.New("invalid user role")
	}
}

type User struct {
	Username  string     `gorm:"primaryKey" json:"username"`
	Name      string     `gorm:"not null" json:"name"`
	Surname   string     `gorm:"not null" json:"surname"`
	Role      Role       `gorm:"type:VARCHAR(20);not null" json:"role"`
	Password  []byte     `gorm:"not null" json:"-"`
	Salt      []byte     `gorm:"not null" json:"-"`
	Address   string     `json:"address,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
