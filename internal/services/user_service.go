package services

import (
	"errors"
	"fmt"

	"github.com/AsrafulMasum/bistro-boos-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserExists = errors.New("user already exists")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Upsert stores a user keyed by email. An existing row is reported as
// ErrUserExists and left untouched; this is create-if-absent, not a
// field-level upsert.
func (s *UserService) Upsert(email, name, photoURL, role string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		Role:     role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
