package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MetalType string

const (
	MetalGold   MetalType = "gold"
	MetalSilver MetalType = "silver"
)

var AllMetalTypes = []MetalType{MetalGold, MetalSilver}

func (m MetalType) IsValid() bool {
	switch m {
	case MetalGold, MetalSilver:
		return true
	default:
		return false
	}
}

// 與 decimal(12,2) 欄位一致
const RateScale int32 = 2

var MaxRatePerGram = decimal.RequireFromString("9999999999.99")

// NormalizeRate 依欄位精度四捨五入, 驗證一律用處理後的值
func NormalizeRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Round(RateScale)
}

// MetalRate 每種金屬只有一筆, 由管理者覆寫
type MetalRate struct {
	MetalType   MetalType       `gorm:"type:varchar(16);primaryKey" json:"metal_type"`
	RatePerGram decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rate_per_gram"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UpdatedBy   *uuid.UUID      `gorm:"type:uuid" json:"updated_by,omitempty"`
}

// MetalRateHistory append only
type MetalRateHistory struct {
	ID           uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	MetalType    MetalType           `gorm:"type:varchar(16);index;not null" json:"metal_type"`
	RatePerGram  decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"rate_per_gram"`
	PreviousRate decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"previous_rate"`
	ChangedBy    *uuid.UUID          `gorm:"type:uuid" json:"changed_by,omitempty"`
	CreatedAt    time.Time           `gorm:"not null" json:"created_at"`
}
