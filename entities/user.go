package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	FullName     string `gorm:"not null" json:"fullName"`
	Role         string `gorm:"not null" json:"role"`
	Phone        int64  `gorm:"not null" json:"phone"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now().Format(time.RFC3339)
	u.UpdatedAt = u.CreatedAt
	return
}
