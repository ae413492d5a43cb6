package repository

import (
	"context"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// GetCategoryBySKU resolves the owning category of a SKU, links
	// included. Returns nil (no error) when the product has no category.
	GetCategoryBySKU(ctx context.Context, sku string) (*entity.Category, error)
}
