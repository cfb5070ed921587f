package handlers

import (
	"log/slog"

	"github.com/AsrafulMasum/bistro-boos-server/internal/dto"
	"github.com/AsrafulMasum/bistro-boos-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /create-payment-intent - stages a charge with
// the provider and returns the client secret.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	secret, err := h.paymentService.CreateIntent(req.Price)
	if err != nil {
		slog.Error("payment intent creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}

// Record handles POST /payments - writes the ledger entry and purges the
// referenced cart entries.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payment, deleted, err := h.paymentService.Record(
		req.Email, req.Price, req.TransactionID, req.Status, req.CartIDs, req.MenuItemIDs)
	if err != nil {
		slog.Error("payment recording failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.RecordPaymentResponse{
		PaymentResult: dto.WriteResult{Acknowledged: true, InsertedID: payment.ID.String()},
		DeletedResult: dto.DeleteResult{Acknowledged: true, DeletedCount: deleted},
	})
}

// History handles GET /payments/history/:email.
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	payments, err := h.paymentService.HistoryByOwner(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(payments)
}
