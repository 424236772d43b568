package userControllers

import (
	"errors"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"gorm.io/gorm"
)

// CreateUser registers a new account with a freshly salted scrypt hash.
func CreateUser(db *gorm.DB, username, name, surname, password string, role models.Role) (models.User, error) {
	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Username: username,
		Name:     name,
		Surname:  surname,
		Role:     role,
		Password: hash,
		Salt:     salt,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.First(&existing, "username = ?", username).Error
		if err == nil {
			return apperrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Users lists every account.
func Users(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UsersByRole lists the accounts holding one role.
func UsersByRole(db *gorm.DB, role models.Role) ([]models.User, error) {
	var users []models.User
	if err := db.Where("role = ?", role).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserByUsername fetches one account.
func UserByUsername(db *gorm.DB, username string) (models.User, error) {
	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateInfo holds the editable profile fields; nil means leave unchanged.
type UpdateInfo struct {
	Name      *string
	Surname   *string
	Address   *string
	Birthdate *time.Time
}

// canTouch enforces the account-protection rules shared by update and
// delete: everyone may act on themselves, admins may act on non-admins, and
// no admin may act on a different admin.
func canTouch(requester models.User, target models.User) error {
	if requester.Username == target.Username {
		return nil
	}
	if !requester.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if target.IsAdmin() {
		return apperrors.ErrAdminProtected
	}
	return nil
}

// UpdateUserInfo edits a profile subject to the protection rules. The
// birthdate may not be in the future.
func UpdateUserInfo(db *gorm.DB, requester models.User, username string, info UpdateInfo) (models.User, error) {
	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}
		if err := canTouch(requester, user); err != nil {
			return err
		}

		if info.Name != nil {
			user.Name = *info.Name
		}
		if info.Surname != nil {
			user.Surname = *info.Surname
		}
		if info.Address != nil {
			user.Address = *info.Address
		}
		if info.Birthdate != nil {
			if info.Birthdate.After(time.Now()) {
				return apperrors.ErrInvalidDate
			}
			user.Birthdate = info.Birthdate
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes an account and everything it owns: reviews, carts, and
// cart line items, in one transaction.
func DeleteUser(db *gorm.DB, requester models.User, username string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}
		if err := canTouch(requester, user); err != nil {
			return err
		}
		if err := cascadeDelete(tx, user); err != nil {
			return err
		}
		return nil
	})
}

// DeleteAllNonAdmins bulk-deletes every non-admin account with the same
// cascade as a single delete. Admin accounts survive.
func DeleteAllNonAdmins(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var users []models.User
		if err := tx.Where("role <> ?", models.RoleAdmin).Find(&users).Error; err != nil {
			return err
		}
		for _, user := range users {
			if err := cascadeDelete(tx, user); err != nil {
				return err
			}
		}
		return nil
	})
}

// cascadeDelete removes the user's reviews, cart items, carts, and finally
// the user row.
func cascadeDelete(tx *gorm.DB, user models.User) error {
	if err := tx.Where("username = ?", user.Username).Delete(&models.Review{}).Error; err != nil {
		return err
	}

	var cartIDs []uint
	if err := tx.Model(&models.Cart{}).Where("username = ?", user.Username).
		Pluck("cart_id", &cartIDs).Error; err != nil {
		return err
	}
	if len(cartIDs) > 0 {
		if err := tx.Where("cart_id IN ?", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id IN ?", cartIDs).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
	}

	return tx.Delete(&user).Error
}
