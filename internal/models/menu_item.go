package models

import (
	"time"

	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category    string    `gorm:"size:50;index" json:"category"`
	Name        string    `gorm:"size:255" json:"name"`
	Price       float64   `json:"price"`
	Description string    `gorm:"type:text" json:"recipe"`
	ImageURL    string    `gorm:"type:text" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
