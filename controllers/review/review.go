package reviewControllers

import (
	"errors"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"gorm.io/gorm"
)

// productExists translates a missing model into the domain 404.
func productExists(tx *gorm.DB, model string) error {
	var product models.Product
	if err := tx.First(&product, "model = ?", model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return err
	}
	return nil
}

// AddReview stores the user's review of a model, dated today. A user gets at
// most one review per product.
func AddReview(db *gorm.DB, model, username string, score int, comment string) (models.Review, error) {
	review := models.Review{
		Model:    model,
		Username: username,
		Score:    score,
		Date:     time.Now(),
		Comment:  comment,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := productExists(tx, model); err != nil {
			return err
		}
		var existing models.Review
		err := tx.Where("model = ? AND username = ?", model, username).First(&existing).Error
		if err == nil {
			return apperrors.ErrExistingReview
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// ProductReviews lists every review of a model, newest first.
func ProductReviews(db *gorm.DB, model string) ([]models.Review, error) {
	if err := productExists(db, model); err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := db.Where("model = ?", model).Order("date DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteReview removes the review the user left on the model.
func DeleteReview(db *gorm.DB, model, username string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := productExists(tx, model); err != nil {
			return err
		}
		result := tx.Where("model = ? AND username = ?", model, username).
			Delete(&models.Review{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrReviewNotFound
		}
		return nil
	})
}

// DeleteReviewsOfProduct removes every review of one model.
func DeleteReviewsOfProduct(db *gorm.DB, model string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := productExists(tx, model); err != nil {
			return err
		}
		return tx.Where("model = ?", model).Delete(&models.Review{}).Error
	})
}

// DeleteAllReviews wipes the reviews table.
func DeleteAllReviews(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&models.Review{}).Error
}
