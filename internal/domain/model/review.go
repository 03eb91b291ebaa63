package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5

	AnonymousDisplayName = "Anonymous User"
)

type Like struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"product_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&r.ID)
	return nil
}

func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// Reviewer 評論者資料, 只會是 ProfileFound 或 ProfileMissing
type Reviewer interface {
	DisplayName() string
	reviewer()
}

type ProfileFound struct {
	UserID uuid.UUID
	Name   string
}

func (p ProfileFound) DisplayName() string { return p.Name }
func (ProfileFound) reviewer()             {}

type ProfileMissing struct {
	UserID uuid.UUID
}

func (ProfileMissing) DisplayName() string { return AnonymousDisplayName }
func (ProfileMissing) reviewer()           {}

// ResolveReviewer profile 不存在或沒有名稱都視為 ProfileMissing
func ResolveReviewer(userID uuid.UUID, profile *Profile) Reviewer {
	if profile == nil || profile.DisplayName == "" {
		return ProfileMissing{UserID: userID}
	}
	return ProfileFound{UserID: userID, Name: profile.DisplayName}
}

type ReviewView struct {
	Review
	Reviewer    Reviewer
	ProductName string
}

type RatingSummary struct {
	Average decimal.Decimal
	Count   int
}

// SummarizeRatings 平均取到小數一位, 沒有評論時為 0
func SummarizeRatings(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{Average: decimal.Zero}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
	return RatingSummary{Average: avg, Count: len(reviews)}
}
