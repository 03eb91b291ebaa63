package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

type CreateReviewDTO struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewDTO struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	UserID       string    `json:"user_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductReviewsDTO struct {
	Reviews       []ReviewDTO     `json:"reviews"`
	AverageRating decimal.Decimal `json:"average_rating"`
	Count         int             `json:"count"`
}
