// Package apperrors defines the domain error taxonomy shared by every
// controller. Handlers turn these sentinels into HTTP status codes with
// HTTPStatus; storage errors pass through untranslated and fall back to 500.
package apperrors

import (
	"errors"
	"net/http"
)

// Not-found family.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrReviewNotFound  = errors.New("review not found")
)

// Conflict family.
var (
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrUserAlreadyExists    = errors.New("username already taken")
	ErrEmptyStock           = errors.New("product stock is empty")
	ErrLowStock             = errors.New("requested quantity exceeds available stock")
	ErrExistingReview       = errors.New("user already reviewed this product")
)

// Invalid-state family.
var (
	ErrEmptyCart        = errors.New("cart has no items")
	ErrProductNotInCart = errors.New("product is not in the cart")
	ErrDateOrdering     = errors.New("date precedes the product arrival date")
	ErrInvalidDate      = errors.New("date is in the future")
)

// Auth family.
var (
	ErrAdminProtected     = errors.New("admin accounts cannot be modified by other admins")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("operation not allowed for this user")
)

// HTTPStatus maps a domain error to the status code the REST boundary
// answers with. Unknown errors (driver failures included) map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProductAlreadyExists),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrEmptyStock),
		errors.Is(err, ErrLowStock),
		errors.Is(err, ErrExistingReview):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrProductNotInCart),
		errors.Is(err, ErrDateOrdering),
		errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, ErrAdminProtected),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
