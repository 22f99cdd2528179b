package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"github.com/handsigned/handsigned/backend/internal/models"
)

var (
	ListingsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "handsigned_listings_total",
		Help: "Number of marketplace listings",
	})

	ListingsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "handsigned_listings_by_status",
		Help: "Marketplace listings by status",
	}, []string{"status"})

	ActiveListingValueUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "handsigned_active_listing_value_usd",
		Help: "Summed asking price of active listings",
	})
)

// UpdateMarketplaceMetrics queries the database and updates listing-related
// Prometheus metrics. Call this after catalog changes or periodically.
func UpdateMarketplaceMetrics(db *gorm.DB) {
	if db == nil {
		return
	}

	var total int64
	if err := db.Model(&models.Listing{}).Count(&total).Error; err != nil {
		log.Printf("Metrics: failed to count listings: %v", err)
	} else {
		ListingsTotal.Set(float64(total))
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var statusCounts []statusCount
	if err := db.Model(&models.Listing{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		log.Printf("Metrics: failed to count listings by status: %v", err)
	} else {
		for _, sc := range statusCounts {
			ListingsByStatus.WithLabelValues(sc.Status).Set(float64(sc.N))
		}
	}

	var activeValue float64
	if err := db.Model(&models.Listing{}).
		Where("status = ?", models.ListingActive).
		Select("COALESCE(SUM(price), 0)").
		Scan(&activeValue).Error; err != nil {
		log.Printf("Metrics: failed to sum active listing value: %v", err)
	} else {
		ActiveListingValueUSD.Set(activeValue)
	}
}
