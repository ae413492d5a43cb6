package deduction

import (
	"context"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// ProductCategoryResolver resolves the owning category of a SKU, links
// included. nil with no error means the SKU is not tracked.
type ProductCategoryResolver interface {
	GetCategoryBySKU(ctx context.Context, sku string) (*entity.Category, error)
}

// LinkedCategoryFetcher resolves the active links of a category to full
// target category objects.
type LinkedCategoryFetcher interface {
	ListLinkedCategories(ctx context.Context, categoryID string) ([]*entity.Category, error)
}

// DeductionSubmitter is the inventory mutation boundary. One call applies
// a whole batch; transactionID groups the resulting audit records.
type DeductionSubmitter interface {
	SubmitDeductionRequests(ctx context.Context, transactionID string, requests []entity.DeductionRequest) (*entity.DeductionResult, error)
}
