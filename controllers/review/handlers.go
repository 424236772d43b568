package reviewControllers

import (
	"net/http"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddReviewInput struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// POST /reviews/:model
func AddReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		model := c.Param("model")

		var input AddReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := AddReview(db, model, username, input.Score, input.Comment)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /reviews/:model
func GetProductReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := ProductReviews(db, c.Param("model"))
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DELETE /reviews/:model
func DeleteReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if err := DeleteReview(db, c.Param("model"), username); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}

// DELETE /reviews/:model/all (manager/admin)
func DeleteReviewsOfProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteReviewsOfProduct(db, c.Param("model")); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reviews deleted"})
	}
}

// DELETE /reviews (manager/admin)
func DeleteAllReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteAllReviews(db); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All reviews deleted"})
	}
}
