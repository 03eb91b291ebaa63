package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	MetalType     string          `json:"metal_type"`
	WeightGrams   decimal.Decimal `json:"weight_grams"`
	PricePerGram  decimal.Decimal `json:"price_per_gram"`
	Price         decimal.Decimal `json:"price"`
	IsFeatured    bool            `json:"is_featured"`
	ImageURL      string          `json:"image_url"`
	AverageRating decimal.Decimal `json:"average_rating"`
	ReviewCount   int64           `json:"review_count"`
	LikeCount     int64           `json:"like_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProductListDTO struct {
	Items    []ProductDTO `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// ProductFieldsDTO 後台商品表單, 單價由牌價決定
type ProductFieldsDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	MetalType   string          `json:"metal_type"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	IsFeatured  bool            `json:"is_featured"`
	ImageURL    string          `json:"image_url"`
}

type SeedProductsDTO struct {
	Products []ProductFieldsDTO `json:"products"`
}

type SeedProductsResponse struct {
	Created int `json:"created"`
}
