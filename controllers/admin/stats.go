package adminControllers

import (
	"net/http"

	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Stats struct {
	Users       int64           `json:"users"`
	Products    int64           `json:"products"`
	UnpaidCarts int64           `json:"unpaid_carts"`
	PaidCarts   int64           `json:"paid_carts"`
	Reviews     int64           `json:"reviews"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CollectStats gathers the dashboard counters with parallel queries.
func CollectStats(db *gorm.DB) (Stats, error) {
	var stats Stats
	var g errgroup.Group

	g.Go(func() error {
		return db.Model(&models.User{}).Count(&stats.Users).Error
	})
	g.Go(func() error {
		return db.Model(&models.Product{}).Count(&stats.Products).Error
	})
	g.Go(func() error {
		return db.Model(&models.Cart{}).Where("paid = ?", false).Count(&stats.UnpaidCarts).Error
	})
	g.Go(func() error {
		return db.Model(&models.Cart{}).Where("paid = ?", true).Count(&stats.PaidCarts).Error
	})
	g.Go(func() error {
		return db.Model(&models.Review{}).Count(&stats.Reviews).Error
	})
	g.Go(func() error {
		var revenue decimal.NullDecimal
		if err := db.Model(&models.Cart{}).Where("paid = ?", true).
			Select("SUM(total)").Scan(&revenue).Error; err != nil {
			return err
		}
		if revenue.Valid {
			stats.Revenue = revenue.Decimal
		} else {
			stats.Revenue = decimal.Zero
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// GET /admin/stats
func GetStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := CollectStats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
