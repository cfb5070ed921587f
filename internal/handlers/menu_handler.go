package handlers

import (
	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	menuService *services.MenuService
}

func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Create handles POST /menus.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.menuService.Create(req.Category, req.Name, req.Price, req.Description, req.ImageURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.WriteResult{Acknowledged: true, InsertedID: item.ID.String()})
}

// List handles GET /menus - all items, or an exact category match via
// ?category=.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menuService.List(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(items)
}
