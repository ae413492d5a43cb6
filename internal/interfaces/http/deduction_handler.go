package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/deduction"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/dto"
)

// DeductionHandler exposes cascade deduction preview and execution.
type DeductionHandler struct {
	uc *deduction.OrderDeductionUseCase
}

// NewDeductionHandler builds the handler.
func NewDeductionHandler(uc *deduction.OrderDeductionUseCase) *DeductionHandler {
	return &DeductionHandler{uc: uc}
}

// Preview godoc
// @Summary      Preview the inventory deductions an order implies
// @Description  Dry run: resolves each line's category, computes primary and
//
//	cascade deductions and aggregates per-group totals. Nothing
//	is applied. Collaborator failures degrade to primary-only
//	with a warning.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewOrderRequest  true  "order lines"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/deductions/preview [post]
func (h *DeductionHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at least one order line required"})
	}
	preview, err := h.uc.Preview(c.Context(), dto.ToOrderLines(in.Lines))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PreviewToResponse(preview))
}

// Process godoc
// @Summary      Process an order applying its category deductions
// @Description  Computes the same deductions as the preview and submits them
//
//	to inventory in one batch. A submit failure is returned as-is;
//	no retry happens here.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessOrderRequest  true  "order lines, optional order_id"
// @Success      200   {object}  dto.ProcessOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/orders/deductions [post]
func (h *DeductionHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at least one order line required"})
	}
	processed, err := h.uc.Process(c.Context(), dto.ToOrderLines(in.Lines), in.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "INVENTORY_SUBMIT", Message: err.Error()})
	}
	return c.JSON(dto.ProcessedToResponse(processed))
}
