package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/dto"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/usecase"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/category"
)

// CategoryHandler handles category CRUD and link-graph requests.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func validationToDTO(res category.ValidationResult) dto.ValidationResultDTO {
	return dto.ValidationResultDTO{IsValid: res.IsValid, Errors: res.Errors, Warnings: res.Warnings}
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "name, category_group_id, inventory_unit, inventory_deduction_quantity"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	cat := in.ToEntity("")
	if err := h.uc.Create(c.Context(), cat); err != nil {
		return categoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CategoryToResponse(cat))
}

// List godoc
// @Summary      List categories with their links
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return categoryError(c, err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		out = append(out, dto.CategoryToResponse(cat))
	}
	return c.JSON(out)
}

// GetByID returns one category.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	cat, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(dto.CategoryToResponse(cat))
}

// Update modifies a category's configuration.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	cat := in.ToEntity(c.Params("id"))
	if err := h.uc.Update(c.Context(), cat); err != nil {
		return categoryError(c, err)
	}
	return c.JSON(dto.CategoryToResponse(cat))
}

// Delete removes a category and its links.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return categoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLink godoc
// @Summary      Link a category for cascade deduction
// @Description  Validates the proposed link (self link, existence, cycles on
//
//	the simulated graph) and persists it only when no error was found.
//	The validation result is returned either way, errors first.
//
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "source category id"
// @Param        body  body  dto.AddLinkRequest  true  "target_category_id"
// @Success      201   {object}  dto.ValidationResultDTO
// @Failure      422   {object}  dto.ValidationResultDTO
// @Router       /api/categories/{id}/links [post]
func (h *CategoryHandler) AddLink(c *fiber.Ctx) error {
	var in dto.AddLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.AddLink(c.Context(), c.Params("id"), in.TargetCategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLink) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validationToDTO(res))
		}
		return categoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(validationToDTO(res))
}

// RemoveLink deletes a link.
func (h *CategoryHandler) RemoveLink(c *fiber.Ctx) error {
	if err := h.uc.RemoveLink(c.Context(), c.Params("id"), c.Params("targetId")); err != nil {
		return categoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetLinkActive toggles a link without deleting its audit trail.
func (h *CategoryHandler) SetLinkActive(c *fiber.Ctx) error {
	var in dto.SetLinkActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.SetLinkActive(c.Context(), c.Params("id"), c.Params("targetId"), in.IsActive); err != nil {
		return categoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckCircular runs the cycle check for one category.
func (h *CategoryHandler) CheckCircular(c *fiber.Ctx) error {
	res, err := h.uc.CheckCircular(c.Context(), c.Params("id"))
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(validationToDTO(res))
}

// ValidateAllLinks godoc
// @Summary      Audit the whole category link graph
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValidationResultDTO
// @Router       /api/categories/validate-links [get]
func (h *CategoryHandler) ValidateAllLinks(c *fiber.Ctx) error {
	res, err := h.uc.ValidateAllLinks(c.Context())
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(validationToDTO(res))
}

// DependencyChains reports the chains reachable from one category.
func (h *CategoryHandler) DependencyChains(c *fiber.Ctx) error {
	maxDepth, _ := strconv.Atoi(c.Query("max_depth"))
	chains, err := h.uc.DependencyChains(c.Context(), c.Params("id"), maxDepth)
	if err != nil {
		return categoryError(c, err)
	}
	return c.JSON(fiber.Map{"chains": chains})
}

func categoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid data"})
	case errors.Is(err, domain.ErrCategoryNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "category not found"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "resource already exists"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
