package handlers

import (
	"time"

	"github.com/AsrafulMasum/bistro-boos-server/internal/database"
	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live handles GET / - plain-text liveness probe.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.SendString("server is running data will be appear soon...")
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
