package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// CategoryRequest body for POST/PUT /api/categories.
type CategoryRequest struct {
	Name                       string          `json:"name"`
	Description                string          `json:"description,omitempty"`
	Tag                        string          `json:"tag,omitempty"`
	CategoryGroupID            string          `json:"category_group_id,omitempty"`
	InventoryUnit              string          `json:"inventory_unit,omitempty"`
	UnitConversionRate         decimal.Decimal `json:"unit_conversion_rate,omitempty"`
	InventoryDeductionQuantity decimal.Decimal `json:"inventory_deduction_quantity,omitempty"`
}

// ToEntity maps the request onto a Category.
func (r CategoryRequest) ToEntity(id string) *entity.Category {
	return &entity.Category{
		ID:                         id,
		Name:                       r.Name,
		Description:                r.Description,
		Tag:                        r.Tag,
		CategoryGroupID:            r.CategoryGroupID,
		InventoryUnit:              r.InventoryUnit,
		UnitConversionRate:         r.UnitConversionRate,
		InventoryDeductionQuantity: r.InventoryDeductionQuantity,
	}
}

// CategoryLinkDTO one outgoing link in responses.
type CategoryLinkDTO struct {
	CategoryID string    `json:"category_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryResponse body for category reads.
type CategoryResponse struct {
	ID                         string            `json:"id"`
	Name                       string            `json:"name"`
	Description                string            `json:"description,omitempty"`
	Tag                        string            `json:"tag,omitempty"`
	CategoryGroupID            string            `json:"category_group_id,omitempty"`
	InventoryUnit              string            `json:"inventory_unit,omitempty"`
	UnitConversionRate         decimal.Decimal   `json:"unit_conversion_rate,omitempty"`
	InventoryDeductionQuantity decimal.Decimal   `json:"inventory_deduction_quantity,omitempty"`
	Links                      []CategoryLinkDTO `json:"links"`
	CreatedAt                  time.Time         `json:"created_at"`
	UpdatedAt                  time.Time         `json:"updated_at"`
}

// CategoryToResponse maps an entity to its response shape.
func CategoryToResponse(c *entity.Category) CategoryResponse {
	links := make([]CategoryLinkDTO, 0, len(c.Links))
	for _, l := range c.Links {
		links = append(links, CategoryLinkDTO{CategoryID: l.CategoryID, IsActive: l.IsActive, CreatedAt: l.CreatedAt})
	}
	return CategoryResponse{
		ID:                         c.ID,
		Name:                       c.Name,
		Description:                c.Description,
		Tag:                        c.Tag,
		CategoryGroupID:            c.CategoryGroupID,
		InventoryUnit:              c.InventoryUnit,
		UnitConversionRate:         c.UnitConversionRate,
		InventoryDeductionQuantity: c.InventoryDeductionQuantity,
		Links:                      links,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}
}

// AddLinkRequest body for POST /api/categories/:id/links.
type AddLinkRequest struct {
	TargetCategoryID string `json:"target_category_id"`
}

// SetLinkActiveRequest body for PATCH /api/categories/:id/links/:targetId.
type SetLinkActiveRequest struct {
	IsActive bool `json:"is_active"`
}
