package dto

import (
	"time"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// ProductRequest body for POST/PUT /api/products.
type ProductRequest struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Platform    string `json:"platform"` // amazon, flipkart
	CategoryID  string `json:"category_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToEntity maps the request onto a Product.
func (r ProductRequest) ToEntity(id string) *entity.Product {
	return &entity.Product{
		ID:          id,
		SKU:         r.SKU,
		Name:        r.Name,
		Platform:    r.Platform,
		CategoryID:  r.CategoryID,
		Description: r.Description,
	}
}

// ProductResponse body for product reads.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Platform    string    `json:"platform"`
	CategoryID  string    `json:"category_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductToResponse maps an entity to its response shape.
func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Platform:    p.Platform,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
