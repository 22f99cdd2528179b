package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/handsigned/handsigned/backend/internal/models"
)

// Demo seed data mirrors the marketplace's original mock database: a few
// sellers, a buyer, and a handful of listings with pre-stamped authenticity
// scores so the UI has something to show before any provider is configured.
var seedUsers = []models.User{
	{ID: "u-1", Username: "elena_painter", Email: "elena@handsigned.art", Password: "demo123", Bio: "Oil painter working with landscapes and light.", ProfilePicURL: "/assets/avatars/elena.svg", IsSeller: true},
	{ID: "u-2", Username: "marco_ink", Email: "marco@handsigned.art", Password: "demo123", Bio: "Ink and watercolor, mostly urban sketching.", ProfilePicURL: "/assets/avatars/marco.svg", IsSeller: true},
	{ID: "u-3", Username: "collector_sam", Email: "sam@handsigned.art", Password: "demo123", Bio: "Here to find real art.", IsSeller: false},
}

var seedListings = []models.Listing{
	{ID: "l-1", Title: "Sunset Over the Harbor", Description: "Oil on canvas, painted plein air over two evenings.", Price: 420, Category: "Landscape", ImageURL: "/assets/images/art_101.svg", ThumbnailURL: "/assets/images/art_101_thumb.svg", SellerID: "u-1", AIAuthenticityScore: 91, ScoreProvider: "demo", Status: models.ListingActive, DatePosted: "2025-11-02"},
	{ID: "l-2", Title: "Morning Market, Lisbon", Description: "Ink and watercolor urban sketch from a travel notebook.", Price: 180, Category: "Urban", ImageURL: "/assets/images/art_102.svg", ThumbnailURL: "/assets/images/art_102_thumb.svg", SellerID: "u-2", AIAuthenticityScore: 84, ScoreProvider: "demo", Status: models.ListingActive, DatePosted: "2025-11-10"},
	{ID: "l-3", Title: "Untitled Study in Blue", Description: "Abstract acrylic study, palette knife.", Price: 95, Category: "Abstract", ImageURL: "/assets/images/art_103.svg", ThumbnailURL: "/assets/images/art_103_thumb.svg", SellerID: "u-1", AIAuthenticityScore: 77, ScoreProvider: "demo", Status: models.ListingActive, DatePosted: "2025-12-01"},
}

var seedReviews = []models.Review{
	{ID: "r-1", ListingID: "l-1", SellerID: "u-1", AuthorID: "u-3", Rating: 5, Comment: "Arrived well packed, brushwork is gorgeous in person."},
	{ID: "r-2", ListingID: "l-2", SellerID: "u-2", AuthorID: "u-3", Rating: 4, Comment: "Lovely sketch, slightly smaller than expected."},
}

// Seed inserts the demo data when the database is empty. Re-running against a
// populated database is a no-op, so startup seeding is idempotent.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	if err := db.Create(&seedUsers).Error; err != nil {
		return err
	}
	if err := db.Create(&seedListings).Error; err != nil {
		return err
	}
	if err := db.Create(&seedReviews).Error; err != nil {
		return err
	}

	log.Printf("Seeded demo data: %d users, %d listings, %d reviews",
		len(seedUsers), len(seedListings), len(seedReviews))
	return nil
}

// Reseed wipes the marketplace tables and reinserts the demo data. Only
// reachable through the admin-authenticated endpoint.
func Reseed(db *gorm.DB) error {
	for _, m := range []interface{}{&models.Purchase{}, &models.Review{}, &models.Listing{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return Seed(db)
}
