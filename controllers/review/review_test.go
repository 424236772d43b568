//go:build integration
// +build integration

package reviewControllers

import (
	"testing"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/MarcoProfi00/ez-electronics-sub000/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, model string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{
		Model:        model,
		Category:     models.CategoryAppliance,
		ArrivalDate:  time.Now().AddDate(0, -1, 0),
		SellingPrice: decimal.NewFromInt(120),
		Quantity:     3,
	}).Error)
}

func TestAddReviewRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedProduct(t, db, "Dishwasher")

	review, err := AddReview(db, "Dishwasher", "alice", 4, "does the job")
	require.NoError(t, err)

	reviews, err := ProductReviews(db, "Dishwasher")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "alice", reviews[0].Username)
	assert.Equal(t, 4, reviews[0].Score)
	assert.Equal(t, "does the job", reviews[0].Comment)
	assert.Equal(t, review.Date.Format("2006-01-02"), reviews[0].Date.Format("2006-01-02"))

	_, err = AddReview(db, "Dishwasher", "alice", 2, "changed my mind")
	assert.ErrorIs(t, err, apperrors.ErrExistingReview)
}

func TestReviewsRequireProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := AddReview(db, "Ghost", "alice", 5, "")
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

	_, err = ProductReviews(db, "Ghost")
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

	assert.ErrorIs(t, DeleteReview(db, "Ghost", "alice"), apperrors.ErrProductNotFound)
	assert.ErrorIs(t, DeleteReviewsOfProduct(db, "Ghost"), apperrors.ErrProductNotFound)
}

func TestDeleteReview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedProduct(t, db, "Dishwasher")

	_, err := AddReview(db, "Dishwasher", "alice", 4, "")
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteReview(db, "Dishwasher", "bob"), apperrors.ErrReviewNotFound)
	require.NoError(t, DeleteReview(db, "Dishwasher", "alice"))

	reviews, err := ProductReviews(db, "Dishwasher")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestBulkDeletes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seedProduct(t, db, "Dishwasher")
	seedProduct(t, db, "Dryer")

	_, err := AddReview(db, "Dishwasher", "alice", 4, "")
	require.NoError(t, err)
	_, err = AddReview(db, "Dishwasher", "bob", 2, "")
	require.NoError(t, err)
	_, err = AddReview(db, "Dryer", "alice", 5, "")
	require.NoError(t, err)

	require.NoError(t, DeleteReviewsOfProduct(db, "Dishwasher"))
	reviews, err := ProductReviews(db, "Dishwasher")
	require.NoError(t, err)
	assert.Empty(t, reviews)
	reviews, err = ProductReviews(db, "Dryer")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, DeleteAllReviews(db))
	reviews, err = ProductReviews(db, "Dryer")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
