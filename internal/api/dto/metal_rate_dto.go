package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type MetalRateDTO struct {
	MetalType   string          `json:"metal_type"`
	RatePerGram decimal.Decimal `json:"rate_per_gram"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SetRatesDTO 未帶的金屬不更新
type SetRatesDTO struct {
	Gold   *decimal.Decimal `json:"gold"`
	Silver *decimal.Decimal `json:"silver"`
}

type RateHistoryDTO struct {
	MetalType    string           `json:"metal_type"`
	RatePerGram  decimal.Decimal  `json:"rate_per_gram"`
	PreviousRate *decimal.Decimal `json:"previous_rate"`
	ChangedBy    string           `json:"changed_by"`
	CreatedAt    time.Time        `json:"created_at"`
}
