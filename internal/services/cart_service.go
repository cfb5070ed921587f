package services

import (
	"fmt"

	"github.com/AsrafulMasum/bistro-boos-server/internal/database"
	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) Add(email, menuItemID, name string, price float64, imageURL string) (*models.CartItem, error) {
	entry := models.CartItem{
		ID:         uuid.New(),
		Email:      email,
		MenuItemID: menuItemID,
		Name:       name,
		Price:      price,
		ImageURL:   imageURL,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart entry: %w", err)
	}

	return &entry, nil
}

func (s *CartService) ListByOwner(email string) ([]models.CartItem, error) {
	var entries []models.CartItem
	if err := s.db.Scopes(database.ForOwner(email)).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart entries: %w", err)
	}

	return entries, nil
}

// DeleteByID removes a single cart entry. An id that matches nothing
// reports zero rows deleted rather than an error.
func (s *CartService) DeleteByID(id uuid.UUID) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete cart entry: %w", result.Error)
	}

	return result.RowsAffected, nil
}
