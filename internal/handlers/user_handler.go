package handlers

import (
	"errors"

	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Upsert handles PUT /users - create-if-absent keyed by email. An email
// already on record reports {exists:true} without modifying the row.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.userService.Upsert(req.Email, req.Name, req.PhotoURL, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return c.JSON(dto.ExistsResponse{Exists: true})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.WriteResult{Acknowledged: true, InsertedID: user.ID.String()})
}
