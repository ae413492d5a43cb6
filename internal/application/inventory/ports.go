package inventory

import (
	"context"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing
// repositories bound to that tx. Guarantees a deduction batch applies
// atomically.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		levelRepo repository.InventoryLevelRepository,
		movementRepo repository.DeductionMovementRepository,
	) error) error
}
