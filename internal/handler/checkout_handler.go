package handler

import (
	"time"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	service service.CheckoutService
}

func NewCheckoutHandler(s service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

// Checkout commits the cart. A failed commit returns success=false and a
// null transaction; the terminal keeps the cart so the operator can retry.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req model.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "transaction": nil, "error": "Invalid JSON"})
	}

	transaction, err := h.service.Checkout(&req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"success":     false,
			"transaction": nil,
			"error":       err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":     true,
		"transaction": transaction,
	})
}

func (h *CheckoutHandler) GetTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	transactions, err := h.service.GetRecentTransactions(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

func (h *CheckoutHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	transaction, err := h.service.GetTransactionByID(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(transaction)
}

func (h *CheckoutHandler) GetTransactionsByRange(c *fiber.Ctx) error {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, use RFC3339"})
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, use RFC3339"})
	}

	transactions, err := h.service.GetTransactionsByDateRange(start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}
