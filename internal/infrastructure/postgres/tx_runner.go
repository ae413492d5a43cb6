package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/inventory"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, executes fn with repos bound to that tx, and
// commits on success or rolls back on any error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	levelRepo repository.InventoryLevelRepository,
	movementRepo repository.DeductionMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	levelRepo := NewInventoryLevelRepository(tx)
	movementRepo := NewDeductionMovementRepository(tx)

	if err := fn(levelRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
