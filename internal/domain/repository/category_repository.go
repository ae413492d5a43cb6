package repository

import (
	"context"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// CategoryRepository defines the persistence port for Category (DIP).
// List and GetByID return categories with their links loaded, so the
// result can be used as a graph snapshot by the validators.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error

	// AddLink persists one outgoing link. Validation happens in the use
	// case before this is called.
	AddLink(ctx context.Context, categoryID string, link entity.CategoryLink) error
	RemoveLink(ctx context.Context, categoryID, targetID string) error
	SetLinkActive(ctx context.Context, categoryID, targetID string, active bool) error

	// ListLinkedCategories resolves the active links of a category to full
	// target category objects.
	ListLinkedCategories(ctx context.Context, categoryID string) ([]*entity.Category, error)
}
