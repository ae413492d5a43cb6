package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

// ProductUseCase covers product CRUD. Inventory behaviour hangs off the
// owning category, so this stays thin.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create persists a new product.
func (uc *ProductUseCase) Create(ctx context.Context, p *entity.Product) error {
	if p == nil || p.SKU == "" || p.Name == "" {
		return domain.ErrInvalidInput
	}
	switch p.Platform {
	case entity.PlatformAmazon, entity.PlatformFlipkart:
	default:
		return domain.ErrInvalidInput
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return uc.repo.Create(ctx, p)
}

// GetBySKU returns one product.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// List returns products, paginated.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.List(ctx, limit, offset)
}

// Update persists product changes.
func (uc *ProductUseCase) Update(ctx context.Context, p *entity.Product) error {
	if p == nil || p.ID == "" {
		return domain.ErrInvalidInput
	}
	p.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, p)
}

// Delete removes a product.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}
