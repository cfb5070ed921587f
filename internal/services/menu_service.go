package services

import (
	"fmt"

	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) Create(category, name string, price float64, description, imageURL string) (*models.MenuItem, error) {
	item := models.MenuItem{
		ID:          uuid.New(),
		Category:    category,
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return &item, nil
}

// List returns every menu item, or only those matching category exactly
// when category is non-empty.
func (s *MenuService) List(category string) ([]models.MenuItem, error) {
	query := s.db.Model(&models.MenuItem{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return items, nil
}
