package handlers

import (
	"log/slog"

	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/middleware"
	"github.com/AsrafulMasum/bistro-boos-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// ListByOwner handles GET /cart/:email. The path email is served as-is;
// the verified identity is logged but not compared against it.
func (h *CartHandler) ListByOwner(c *fiber.Ctx) error {
	if email, err := middleware.TokenEmail(c); err == nil {
		slog.Info("cart accessed", "email", email, "path_email", c.Params("email"))
	}

	entries, err := h.cartService.ListByOwner(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(entries)
}

// Add handles POST /cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.cartService.Add(req.Email, req.MenuItemID, req.Name, req.Price, req.ImageURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.WriteResult{Acknowledged: true, InsertedID: entry.ID.String()})
}

// Delete handles DELETE /cart/:id. An unknown id reports deletedCount 0.
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid cart entry id",
		})
	}

	deleted, err := h.cartService.DeleteByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
