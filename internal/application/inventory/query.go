package inventory

import (
	"context"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

// QueryUseCase read side of the inventory boundary: current levels per
// category group and the deduction audit trail.
type QueryUseCase struct {
	levelRepo    repository.InventoryLevelRepository
	movementRepo repository.DeductionMovementRepository
}

// NewQueryUseCase builds the use case.
func NewQueryUseCase(levelRepo repository.InventoryLevelRepository, movementRepo repository.DeductionMovementRepository) *QueryUseCase {
	return &QueryUseCase{levelRepo: levelRepo, movementRepo: movementRepo}
}

// Levels lists stock per category group, paginated.
func (uc *QueryUseCase) Levels(ctx context.Context, limit, offset int) ([]*entity.InventoryLevel, error) {
	return uc.levelRepo.List(ctx, limit, offset)
}

// MovementsByOrder returns the deductions applied for one order reference.
func (uc *QueryUseCase) MovementsByOrder(ctx context.Context, orderReference string) ([]*entity.DeductionMovement, error) {
	return uc.movementRepo.ListByOrderReference(ctx, orderReference)
}

// MovementsByTransaction returns the deductions of one processed batch.
func (uc *QueryUseCase) MovementsByTransaction(ctx context.Context, transactionID string) ([]*entity.DeductionMovement, error) {
	return uc.movementRepo.ListByTransaction(ctx, transactionID)
}
