package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one selected menu item pending payment, scoped to one owner
// email. Entries are deleted individually or in bulk when a payment that
// references them is recorded.
type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"not null;size:255;index" json:"email"`
	MenuItemID string    `gorm:"size:36" json:"menuId"`
	Name       string    `gorm:"size:255" json:"name"`
	Price      float64   `json:"price"`
	ImageURL   string    `gorm:"type:text" json:"image"`
	CreatedAt  time.Time `json:"created_at"`
}
