package repository

import (
	"context"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// InventoryLevelRepository defines the port for stock per category group
// (DIP). GetForUpdate is expected to row-lock inside a transaction so a
// deduction batch applies atomically.
type InventoryLevelRepository interface {
	Get(ctx context.Context, categoryGroupID string) (*entity.InventoryLevel, error)
	GetForUpdate(ctx context.Context, categoryGroupID string) (*entity.InventoryLevel, error)
	Upsert(ctx context.Context, level *entity.InventoryLevel) error
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryLevel, error)
}

// DeductionMovementRepository persists the audit trail of applied
// deductions.
type DeductionMovementRepository interface {
	Create(ctx context.Context, movement *entity.DeductionMovement) error
	ListByTransaction(ctx context.Context, transactionID string) ([]*entity.DeductionMovement, error)
	ListByOrderReference(ctx context.Context, orderReference string) ([]*entity.DeductionMovement, error)
}
