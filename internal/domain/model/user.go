package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	BaseModel
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&u.ID)
	return nil
}

type Profile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	DisplayName string    `gorm:"type:varchar(120)" json:"display_name"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url"`
	BaseModel
}

// UserWithRoles 管理後台使用者清單
type UserWithRoles struct {
	Profile Profile
	Roles   []RoleName
}

func (u UserWithRoles) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
