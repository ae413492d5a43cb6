package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/dto"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/usecase"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain"
)

// ProductHandler handles product CRUD.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create registers a new SKU.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	p := in.ToEntity("")
	if err := h.uc.Create(c.Context(), p); err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductToResponse(p))
}

// List returns products, paginated.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid pagination"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return productError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductToResponse(p))
	}
	return c.JSON(out)
}

// GetBySKU returns one product.
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	p, err := h.uc.GetBySKU(c.Context(), c.Params("sku"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(dto.ProductToResponse(p))
}

// Update modifies a product.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	p := in.ToEntity(c.Params("id"))
	if err := h.uc.Update(c.Context(), p); err != nil {
		return productError(c, err)
	}
	return c.JSON(dto.ProductToResponse(p))
}

// Delete removes a product.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid data"})
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU already exists"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
