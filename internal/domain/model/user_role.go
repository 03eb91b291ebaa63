package model

import (
	"time"

	"github.com/google/uuid"
)

type RoleName string

const (
	RoleAdmin RoleName = "admin"
)

// UserRole (user_id, role) 唯一, 重複新增視為成功
type UserRole struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      RoleName   `gorm:"type:varchar(32);primaryKey" json:"role"`
	GrantedBy *uuid.UUID `gorm:"type:uuid" json:"granted_by,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}
