package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DesignStatus string

const (
	DesignPending    DesignStatus = "pending"
	DesignInReview   DesignStatus = "in_review"
	DesignApproved   DesignStatus = "approved"
	DesignInProgress DesignStatus = "in_progress"
	DesignCompleted  DesignStatus = "completed"
	DesignCancelled  DesignStatus = "cancelled"
)

// designTransitions 正常流程單向前進, 審核中可退回 pending, 非終態皆可取消
var designTransitions = map[DesignStatus][]DesignStatus{
	DesignPending:    {DesignInReview, DesignCancelled},
	DesignInReview:   {DesignApproved, DesignPending, DesignCancelled},
	DesignApproved:   {DesignInProgress, DesignCancelled},
	DesignInProgress: {DesignCompleted, DesignCancelled},
	DesignCompleted:  {},
	DesignCancelled:  {},
}

func (s DesignStatus) IsValid() bool {
	_, ok := designTransitions[s]
	return ok
}

func (s DesignStatus) IsTerminal() bool {
	return s == DesignCompleted || s == DesignCancelled
}

// CanTransitionTo 相同狀態視為允許, 供只更新備註或估價使用
func (s DesignStatus) CanTransitionTo(next DesignStatus) bool {
	if s == next {
		return s.IsValid()
	}
	for _, allowed := range designTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses 後台按鈕可選的下一個狀態
func (s DesignStatus) NextStatuses() []DesignStatus {
	next := designTransitions[s]
	out := make([]DesignStatus, len(next))
	copy(out, next)
	return out
}

type CustomDesignRequest struct {
	ID                      uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                  uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	DesignType              string              `gorm:"type:varchar(64);not null" json:"design_type"`
	MaterialPreference      string              `gorm:"type:varchar(64)" json:"material_preference"`
	BudgetRange             string              `gorm:"type:varchar(64)" json:"budget_range"`
	Description             string              `gorm:"type:text;not null" json:"description"`
	SpecialRequirements     string              `gorm:"type:text" json:"special_requirements"`
	ContactPhone            string              `gorm:"type:varchar(32)" json:"contact_phone"`
	PreferredContactTime    string              `gorm:"type:varchar(64)" json:"preferred_contact_time"`
	Status                  DesignStatus        `gorm:"type:varchar(32);index;not null" json:"status"`
	AdminNotes              string              `gorm:"type:text" json:"admin_notes"`
	EstimatedPrice          decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"estimated_price"`
	EstimatedCompletionDate *time.Time          `json:"estimated_completion_date,omitempty"`
	BaseModel
}

func (c *CustomDesignRequest) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&c.ID)
	return nil
}
