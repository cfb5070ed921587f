package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payment is immutable once written. CartIDs holds the cart entry ids the
// payment covered; those rows are purged in the same transaction that
// inserts the payment.
type Payment struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string         `gorm:"not null;size:255;index" json:"email"`
	Amount        float64        `json:"price"`
	TransactionID string         `gorm:"size:255" json:"transactionId"`
	Status        string         `gorm:"size:50" json:"status"`
	CartIDs       datatypes.JSON `gorm:"type:jsonb" json:"cartId"`
	MenuItemIDs   datatypes.JSON `gorm:"type:jsonb" json:"menuId"`
	CreatedAt     time.Time      `json:"created_at"`
}
