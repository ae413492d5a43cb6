package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implements InventoryLevelRepository over PostgreSQL.
// Stock is tracked per category group.
type InventoryLevelRepo struct {
	q Querier
}

// NewInventoryLevelRepository builds the adapter. Accepts pool or tx (Querier).
func NewInventoryLevelRepository(q Querier) *InventoryLevelRepo {
	return &InventoryLevelRepo{q: q}
}

func (r *InventoryLevelRepo) Get(ctx context.Context, categoryGroupID string) (*entity.InventoryLevel, error) {
	return r.get(ctx, categoryGroupID, false)
}

// GetForUpdate row-locks the level (SELECT FOR UPDATE) so a deduction
// batch applies without races. Only meaningful inside a transaction.
func (r *InventoryLevelRepo) GetForUpdate(ctx context.Context, categoryGroupID string) (*entity.InventoryLevel, error) {
	return r.get(ctx, categoryGroupID, true)
}

func (r *InventoryLevelRepo) get(ctx context.Context, categoryGroupID string, forUpdate bool) (*entity.InventoryLevel, error) {
	query := `
		SELECT category_group_id, name, quantity, unit, updated_at
		FROM inventory_levels
		WHERE category_group_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var l entity.InventoryLevel
	err := r.q.QueryRow(ctx, query, categoryGroupID).Scan(
		&l.CategoryGroupID, &l.Name, &l.Quantity, &l.Unit, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level: %w", err)
	}
	return &l, nil
}

func (r *InventoryLevelRepo) Upsert(ctx context.Context, level *entity.InventoryLevel) error {
	query := `
		INSERT INTO inventory_levels (category_group_id, name, quantity, unit, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (category_group_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, unit = EXCLUDED.unit, updated_at = now()`
	_, err := r.q.Exec(ctx, query, level.CategoryGroupID, level.Name, level.Quantity, level.Unit)
	if err != nil {
		return fmt.Errorf("upsert inventory level: %w", err)
	}
	return nil
}

func (r *InventoryLevelRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryLevel, error) {
	query := `
		SELECT category_group_id, name, quantity, unit, updated_at
		FROM inventory_levels
		ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.CategoryGroupID, &l.Name, &l.Quantity, &l.Unit, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
