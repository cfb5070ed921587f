package services

import (
	"encoding/json"
	"fmt"

	"github.com/AsrafulMasum/bistro-boos-server/internal/database"
	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentService struct {
	db       *gorm.DB
	provider PaymentProvider
}

func NewPaymentService(db *gorm.DB, provider PaymentProvider) *PaymentService {
	return &PaymentService{db: db, provider: provider}
}

// CreateIntent converts the price to minor currency units (truncating) and
// stages a charge with the payment provider.
func (s *PaymentService) CreateIntent(price float64) (string, error) {
	amount := int64(price * 100)
	return s.provider.CreateIntent(amount)
}

// Record inserts the payment and purges the cart entries it paid for in a
// single transaction: either the payment is recorded and the cart cleared,
// or neither happens.
func (s *PaymentService) Record(email string, price float64, transactionID, status string, cartIDs, menuItemIDs []string) (*models.Payment, int64, error) {
	cartJSON, err := json.Marshal(cartIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode cart ids: %w", err)
	}
	menuJSON, err := json.Marshal(menuItemIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode menu ids: %w", err)
	}

	payment := models.Payment{
		ID:            uuid.New(),
		Email:         email,
		Amount:        price,
		TransactionID: transactionID,
		Status:        status,
		CartIDs:       datatypes.JSON(cartJSON),
		MenuItemIDs:   datatypes.JSON(menuJSON),
	}

	var deleted int64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		if len(cartIDs) > 0 {
			result := tx.Where("id IN ?", cartIDs).Delete(&models.CartItem{})
			if result.Error != nil {
				return fmt.Errorf("failed to purge cart entries: %w", result.Error)
			}
			deleted = result.RowsAffected
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &payment, deleted, nil
}

func (s *PaymentService) HistoryByOwner(email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Scopes(database.ForOwner(email)).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}
