package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an API account. The password hash is never serialized.
type User struct {
	ID           string    `gorm:"type:text;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
