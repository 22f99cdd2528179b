package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handsigned/handsigned/backend/internal/database"
	"github.com/handsigned/handsigned/backend/internal/metrics"
	"github.com/handsigned/handsigned/backend/internal/models"
	"github.com/handsigned/handsigned/backend/internal/scoring"
)

// CatalogHandler serves the marketplace CRUD around the scoring gateway:
// listings, sellers, reviews, and purchase records. Checkout and payment do
// not exist; a purchase is just a record plus a status flip on the listing.
type CatalogHandler struct {
	svc          *scoring.Service
	scoreTimeout time.Duration
}

func NewCatalogHandler(svc *scoring.Service, scoreTimeout time.Duration) *CatalogHandler {
	return &CatalogHandler{svc: svc, scoreTimeout: scoreTimeout}
}

// ListListings returns listings, optionally filtered by seller and status.
func (h *CatalogHandler) ListListings(c *gin.Context) {
	db := database.GetDB()

	query := db.Model(&models.Listing{}).Order("date_posted DESC")
	if seller := c.Query("seller"); seller != "" {
		query = query.Where("seller_id = ?", seller)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings, "total_count": len(listings)})
}

func (h *CatalogHandler) GetListing(c *gin.Context) {
	var listing models.Listing
	if err := database.GetDB().First(&listing, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}
	c.JSON(http.StatusOK, listing)
}

type createListingRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	SellerID     string  `json:"seller_id" binding:"required"`
	Score        *int    `json:"ai_authenticity_score"`
}

// CreateListing inserts a listing. When the client did not already obtain a
// score through /score, one is stamped in-process via the same fallback
// chain, so every listing carries an authenticity score.
func (h *CatalogHandler) CreateListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing := models.Listing{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		ThumbnailURL: req.ThumbnailURL,
		SellerID:     req.SellerID,
		Status:       models.ListingActive,
		DatePosted:   time.Now().UTC().Format("2006-01-02"),
	}

	if req.Score != nil {
		listing.AIAuthenticityScore = *req.Score
		listing.ScoreProvider = "client"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.scoreTimeout)
		outcome := h.svc.Score(ctx, scoring.ScoreRequest{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		})
		cancel()
		listing.AIAuthenticityScore = outcome.Score
		listing.ScoreProvider = outcome.Provider
	}

	if err := database.GetDB().Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.UpdateMarketplaceMetrics(database.GetDB())
	c.JSON(http.StatusCreated, listing)
}

type updateListingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
}

func (h *CatalogHandler) UpdateListing(c *gin.Context) {
	db := database.GetDB()

	var listing models.Listing
	if err := db.First(&listing, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		switch models.ListingStatus(*req.Status) {
		case models.ListingActive, models.ListingSold:
			updates["status"] = *req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or sold"})
			return
		}
	}

	if len(updates) > 0 {
		if err := db.Model(&listing).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := db.First(&listing, "id = ?", listing.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	metrics.UpdateMarketplaceMetrics(db)
	c.JSON(http.StatusOK, listing)
}

func (h *CatalogHandler) DeleteListing(c *gin.Context) {
	db := database.GetDB()

	result := db.Delete(&models.Listing{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	metrics.UpdateMarketplaceMetrics(db)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetUser returns a user's public profile. The password column is never
// serialized (json:"-" on the model).
func (h *CatalogHandler) GetUser(c *gin.Context) {
	var user models.User
	if err := database.GetDB().First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *CatalogHandler) ListReviews(c *gin.Context) {
	db := database.GetDB()

	query := db.Model(&models.Review{}).Order("created_at DESC")
	if seller := c.Query("seller"); seller != "" {
		query = query.Where("seller_id = ?", seller)
	}
	if listing := c.Query("listing"); listing != "" {
		query = query.Where("listing_id = ?", listing)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type createReviewRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	AuthorID  string `json:"author_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (h *CatalogHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()

	var listing models.Listing
	if err := db.First(&listing, "id = ?", req.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ListingID: req.ListingID,
		SellerID:  listing.SellerID,
		AuthorID:  req.AuthorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *CatalogHandler) ListPurchases(c *gin.Context) {
	db := database.GetDB()

	query := db.Model(&models.Purchase{}).Order("created_at DESC")
	if buyer := c.Query("buyer"); buyer != "" {
		query = query.Where("buyer_id = ?", buyer)
	}

	var purchases []models.Purchase
	if err := query.Find(&purchases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

type createPurchaseRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	BuyerID   string `json:"buyer_id" binding:"required"`
}

// CreatePurchase records a sale and marks the listing sold. No payment
// processing happens here or anywhere else in this system.
func (h *CatalogHandler) CreatePurchase(c *gin.Context) {
	var req createPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()

	var listing models.Listing
	if err := db.First(&listing, "id = ?", req.ListingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}
	if listing.Status == models.ListingSold {
		c.JSON(http.StatusConflict, gin.H{"error": "listing already sold"})
		return
	}

	purchase := models.Purchase{
		ID:        uuid.NewString(),
		ListingID: listing.ID,
		BuyerID:   req.BuyerID,
		Price:     listing.Price,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}
		return tx.Model(&listing).Update("status", models.ListingSold).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.UpdateMarketplaceMetrics(db)
	c.JSON(http.StatusCreated, purchase)
}

// ReseedDemoData wipes and re-seeds the demo catalog. Admin only.
func (h *CatalogHandler) ReseedDemoData(c *gin.Context) {
	if err := database.Reseed(database.GetDB()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.UpdateMarketplaceMetrics(database.GetDB())
	c.JSON(http.StatusOK, gin.H{"seeded": true})
}
