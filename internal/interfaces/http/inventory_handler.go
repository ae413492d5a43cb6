package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/dto"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/inventory"
)

// InventoryHandler exposes inventory levels and the deduction audit trail.
type InventoryHandler struct {
	query *inventory.QueryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(query *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{query: query}
}

// Levels godoc
// @Summary      Current stock per category group
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/levels [get]
func (h *InventoryHandler) Levels(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid pagination"})
	}
	page.DefaultPage()
	levels, err := h.query.Levels(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(levels), "levels": levels})
}

// Movements lists applied deductions filtered by order reference or
// transaction id.
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	if txID := c.Query("transaction_id"); txID != "" {
		movements, err := h.query.MovementsByTransaction(c.Context(), txID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
	}
	orderRef := c.Query("order_reference")
	if orderRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_reference or transaction_id required"})
	}
	movements, err := h.query.MovementsByOrder(c.Context(), orderRef)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}
