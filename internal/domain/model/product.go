package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryRings     Category = "rings"
	CategoryNecklaces Category = "necklaces"
	CategoryEarrings  Category = "earrings"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRings, CategoryNecklaces, CategoryEarrings:
		return true
	default:
		return false
	}
}

// 與 decimal(10,3) 欄位一致
const WeightScale int32 = 3

var MaxWeightGrams = decimal.RequireFromString("9999999.999")

type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug         string          `gorm:"type:varchar(255);index" json:"slug"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     Category        `gorm:"type:varchar(32);index;not null" json:"category"`
	MetalType    MetalType       `gorm:"type:varchar(16);index;not null" json:"metal_type"`
	WeightGrams  decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"weight_grams"`
	PricePerGram decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_gram"`
	IsFeatured   bool            `gorm:"not null;default:false" json:"is_featured"`
	ImageURL     string          `gorm:"type:text" json:"image_url"`
	BaseModel
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&p.ID)
	return nil
}

// DisplayPrice 售價不落地, 每次讀取時由快照單價計算
func (p *Product) DisplayPrice() decimal.Decimal {
	return p.PricePerGram.Mul(p.WeightGrams)
}

// ProductFilter 商品列表條件
type ProductFilter struct {
	Category     *Category
	MetalType    *MetalType
	FeaturedOnly bool
	Search       string
	Page         int
	PageSize     int
}

// ProductStats 列表顯示用的評價與收藏數
type ProductStats struct {
	AverageRating decimal.Decimal
	ReviewCount   int64
	LikeCount     int64
}

type ProductView struct {
	Product
	Price decimal.Decimal
	ProductStats
}
