package model

import (
	"time"

	"github.com/google/uuid"
)

type BaseModel struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 主鍵由應用端產生, postgres 與 sqlite 行為一致
func newIDIfNil(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
