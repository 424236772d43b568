//go:build integration
// +build integration

package userControllers

import (
	"testing"
	"time"

	cartControllers "github.com/MarcoProfi00/ez-electronics-sub000/controllers/cart"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/MarcoProfi00/ez-electronics-sub000/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()
	user, err := CreateUser(db, username, "Test", "User", "password123", role)
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)

	user := seedUser(t, db, "alice", models.RoleCustomer)
	assert.NotEmpty(t, user.Salt)
	assert.True(t, auth.VerifyPassword("password123", user.Password, user.Salt))
	assert.False(t, auth.VerifyPassword("wrong", user.Password, user.Salt))

	_, err := CreateUser(db, "alice", "Other", "Person", "secret99", models.RoleManager)
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestUserLookups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleManager)

	users, err := Users(db)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	managers, err := UsersByRole(db, models.RoleManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "bob", managers[0].Username)

	_, err = UserByUsername(db, "carol")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUserInfoRules(t *testing.T) {
	db := testutil.SetupTestDB(t)
	alice := seedUser(t, db, "alice", models.RoleCustomer)
	bob := seedUser(t, db, "bob", models.RoleCustomer)
	admin := seedUser(t, db, "root", models.RoleAdmin)
	other := seedUser(t, db, "root2", models.RoleAdmin)

	name := "Alicia"
	updated, err := UpdateUserInfo(db, alice, "alice", UpdateInfo{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	// A customer cannot edit someone else.
	_, err = UpdateUserInfo(db, bob, "alice", UpdateInfo{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// An admin can edit a customer but not a different admin.
	_, err = UpdateUserInfo(db, admin, "bob", UpdateInfo{Name: &name})
	require.NoError(t, err)
	_, err = UpdateUserInfo(db, other, "root", UpdateInfo{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrAdminProtected)

	future := time.Now().AddDate(1, 0, 0)
	_, err = UpdateUserInfo(db, alice, "alice", UpdateInfo{Birthdate: &future})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestDeleteUserCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedUser(t, db, "alice", models.RoleCustomer)
	admin := seedUser(t, db, "root", models.RoleAdmin)

	require.NoError(t, db.Create(&models.Product{
		Model:        "ThinkPad",
		Category:     models.CategoryLaptop,
		ArrivalDate:  time.Now().AddDate(0, -1, 0),
		SellingPrice: decimal.NewFromInt(750),
		Quantity:     5,
	}).Error)

	_, err := cartControllers.AddProductToCart(db, "alice", "ThinkPad")
	require.NoError(t, err)
	_, err = cartControllers.Checkout(db, "alice")
	require.NoError(t, err)
	_, err = cartControllers.AddProductToCart(db, "alice", "ThinkPad")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Review{
		Model: "ThinkPad", Username: "alice", Score: 5, Date: time.Now(),
	}).Error)

	require.NoError(t, DeleteUser(db, admin, "alice"))

	_, err = UserByUsername(db, "alice")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	var carts, items, reviews int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&carts).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Zero(t, carts)
	assert.Zero(t, items)
	assert.Zero(t, reviews)
}

func TestDeleteUserProtections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	alice := seedUser(t, db, "alice", models.RoleCustomer)
	bob := seedUser(t, db, "bob", models.RoleCustomer)
	admin := seedUser(t, db, "root", models.RoleAdmin)
	other := seedUser(t, db, "root2", models.RoleAdmin)

	assert.ErrorIs(t, DeleteUser(db, alice, "bob"), apperrors.ErrForbidden)
	assert.ErrorIs(t, DeleteUser(db, other, "root"), apperrors.ErrAdminProtected)
	assert.ErrorIs(t, DeleteUser(db, admin, "ghost"), apperrors.ErrUserNotFound)

	// Self-delete is always allowed.
	require.NoError(t, DeleteUser(db, bob, "bob"))
}

func TestDeleteAllNonAdmins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleManager)
	seedUser(t, db, "root", models.RoleAdmin)

	require.NoError(t, DeleteAllNonAdmins(db))

	users, err := Users(db)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}
