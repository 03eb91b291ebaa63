package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDesignRequestDTO struct {
	DesignType           string `json:"design_type"`
	MaterialPreference   string `json:"material_preference"`
	BudgetRange          string `json:"budget_range"`
	Description          string `json:"description"`
	SpecialRequirements  string `json:"special_requirements"`
	ContactPhone         string `json:"contact_phone"`
	PreferredContactTime string `json:"preferred_contact_time"`
}

type DesignRequestDTO struct {
	ID                      string           `json:"id"`
	UserID                  string           `json:"user_id"`
	DesignType              string           `json:"design_type"`
	MaterialPreference      string           `json:"material_preference"`
	BudgetRange             string           `json:"budget_range"`
	Description             string           `json:"description"`
	SpecialRequirements     string           `json:"special_requirements"`
	ContactPhone            string           `json:"contact_phone"`
	PreferredContactTime    string           `json:"preferred_contact_time"`
	Status                  string           `json:"status"`
	NextStatuses            []string         `json:"next_statuses"`
	AdminNotes              string           `json:"admin_notes"`
	EstimatedPrice          *decimal.Decimal `json:"estimated_price"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// UpdateDesignStatusDTO 只更新有帶的欄位, status 必填
type UpdateDesignStatusDTO struct {
	Status                  string           `json:"status"`
	AdminNotes              *string          `json:"admin_notes"`
	EstimatedPrice          *decimal.Decimal `json:"estimated_price"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date"`
}
