package models

import (
	"time"
)

type ListingStatus string

const (
	ListingActive ListingStatus = "active"
	ListingSold   ListingStatus = "sold"
)

type User struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ID            string    `json:"id" gorm:"primaryKey"`
	Username      string    `json:"username" gorm:"not null;uniqueIndex"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Bio           string    `json:"bio"`
	ProfilePicURL string    `json:"profile_pic_url"`
	IsSeller      bool      `json:"is_seller"`
}

type Listing struct {
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	ID                  string        `json:"id" gorm:"primaryKey"`
	Title               string        `json:"title" gorm:"not null;index"`
	Description         string        `json:"description"`
	Price               float64       `json:"price"`
	Category            string        `json:"category"`
	ImageURL            string        `json:"image_url"`
	ThumbnailURL        string        `json:"thumbnail_url"`
	SellerID            string        `json:"seller_id" gorm:"index"`
	AIAuthenticityScore int           `json:"ai_authenticity_score"`
	ScoreProvider       string        `json:"score_provider"` // "openai", "gemini", or "demo"
	Status              ListingStatus `json:"status" gorm:"index;default:active"`
	DatePosted          string        `json:"date_posted"` // YYYY-MM-DD
}

type Review struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id" gorm:"primaryKey"`
	ListingID string    `json:"listing_id" gorm:"index"`
	SellerID  string    `json:"seller_id" gorm:"index"`
	AuthorID  string    `json:"author_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
}

type Purchase struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id" gorm:"primaryKey"`
	ListingID string    `json:"listing_id" gorm:"index"`
	BuyerID   string    `json:"buyer_id" gorm:"index"`
	Price     float64   `json:"price"`
}
