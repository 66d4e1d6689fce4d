package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Author        string    `gorm:"not null" json:"author"`
	Category      string    `gorm:"not null" json:"category"`
	Price         float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Rating        float64   `gorm:"type:numeric(3,1);not null" json:"rating"`
	PublishedDate time.Time `gorm:"type:date;not null" json:"published_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
