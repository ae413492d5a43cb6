package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

var _ repository.DeductionMovementRepository = (*DeductionMovementRepo)(nil)

// DeductionMovementRepo persists the audit trail of applied deductions.
type DeductionMovementRepo struct {
	q Querier
}

// NewDeductionMovementRepository builds the adapter. Accepts pool or tx (Querier).
func NewDeductionMovementRepository(q Querier) *DeductionMovementRepo {
	return &DeductionMovementRepo{q: q}
}

func (r *DeductionMovementRepo) Create(ctx context.Context, m *entity.DeductionMovement) error {
	query := `
		INSERT INTO deduction_movements
			(id, transaction_id, category_group_id, sku, order_reference, platform,
			 quantity, unit, is_cascade, source_category, target_category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionID, m.CategoryGroupID, m.SKU, m.OrderReference, m.Platform,
		m.Quantity, m.Unit, m.IsCascade, m.SourceCategory, m.TargetCategory, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create deduction movement: %w", err)
	}
	return nil
}

const movementColumns = `id, transaction_id, category_group_id, sku, order_reference, platform,
	quantity, unit, is_cascade, source_category, target_category, created_at`

func (r *DeductionMovementRepo) ListByTransaction(ctx context.Context, transactionID string) ([]*entity.DeductionMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM deduction_movements WHERE transaction_id = $1 ORDER BY created_at`
	return r.list(ctx, query, transactionID)
}

func (r *DeductionMovementRepo) ListByOrderReference(ctx context.Context, orderReference string) ([]*entity.DeductionMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM deduction_movements WHERE order_reference = $1 ORDER BY created_at`
	return r.list(ctx, query, orderReference)
}

func (r *DeductionMovementRepo) list(ctx context.Context, query string, arg any) ([]*entity.DeductionMovement, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list deduction movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.DeductionMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deduction movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.DeductionMovement, error) {
	var m entity.DeductionMovement
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.CategoryGroupID, &m.SKU, &m.OrderReference, &m.Platform,
		&m.Quantity, &m.Unit, &m.IsCascade, &m.SourceCategory, &m.TargetCategory, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
