package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCategory(t *testing.T) {
	for input, want := range map[string]Category{
		"Smartphone": CategorySmartphone,
		"laptop":     CategoryLaptop,
		"APPLIANCE":  CategoryAppliance,
	} {
		got, err := MapCategory(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := MapCategory("Drone")
	assert.Error(t, err)
}

func TestMapRole(t *testing.T) {
	for input, want := range map[string]Role{
		"customer": RoleCustomer,
		"Manager":  RoleManager,
		"ADMIN":    RoleAdmin,
	} {
		got, err := MapRole(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := MapRole("superuser")
	assert.Error(t, err)
}

func TestEmptyCart(t *testing.T) {
	cart := EmptyCart("alice")
	assert.Equal(t, "alice", cart.Username)
	assert.False(t, cart.Paid)
	assert.Nil(t, cart.PaymentDate)
	assert.True(t, cart.Total.IsZero())
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}
