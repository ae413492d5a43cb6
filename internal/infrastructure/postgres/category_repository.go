package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements CategoryRepository over PostgreSQL. Links live
// in category_links (source_id, target_id, is_active, created_at); reads
// merge them onto the categories so callers get a usable graph snapshot.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository builds the adapter. Accepts pool or tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, description, tag, category_group_id, inventory_unit,
	unit_conversion_rate, inventory_deduction_quantity, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Tag, &c.CategoryGroupID, &c.InventoryUnit,
		&c.UnitConversionRate, &c.InventoryDeductionQuantity, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Tag,
		category.CategoryGroupID, category.InventoryUnit,
		category.UnitConversionRate, category.InventoryDeductionQuantity,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	links, err := r.linksBySource(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Links = links
	return c, nil
}

// List returns every category with its links loaded, usable as a graph
// snapshot by the validators.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	index := make(map[string]*entity.Category)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
		index[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	linkQuery := `SELECT source_id, target_id, is_active, created_at FROM category_links ORDER BY created_at`
	linkRows, err := r.q.Query(ctx, linkQuery)
	if err != nil {
		return nil, fmt.Errorf("list category links: %w", err)
	}
	defer linkRows.Close()
	for linkRows.Next() {
		var sourceID string
		var link entity.CategoryLink
		if err := linkRows.Scan(&sourceID, &link.CategoryID, &link.IsActive, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category link: %w", err)
		}
		if c, ok := index[sourceID]; ok {
			c.Links = append(c.Links, link)
		}
	}
	return list, linkRows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, tag = $4, category_group_id = $5,
			inventory_unit = $6, unit_conversion_rate = $7,
			inventory_deduction_quantity = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Tag,
		category.CategoryGroupID, category.InventoryUnit,
		category.UnitConversionRate, category.InventoryDeductionQuantity,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	// Links referencing the category go with it (both directions).
	if _, err := r.q.Exec(ctx, `DELETE FROM category_links WHERE source_id = $1 OR target_id = $1`, id); err != nil {
		return fmt.Errorf("delete category links: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepo) AddLink(ctx context.Context, categoryID string, link entity.CategoryLink) error {
	query := `
		INSERT INTO category_links (source_id, target_id, is_active, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, categoryID, link.CategoryID, link.IsActive, link.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("add category link: %w", err)
	}
	return nil
}

func (r *CategoryRepo) RemoveLink(ctx context.Context, categoryID, targetID string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM category_links WHERE source_id = $1 AND target_id = $2`, categoryID, targetID)
	if err != nil {
		return fmt.Errorf("remove category link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) SetLinkActive(ctx context.Context, categoryID, targetID string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE category_links SET is_active = $3 WHERE source_id = $1 AND target_id = $2`, categoryID, targetID, active)
	if err != nil {
		return fmt.Errorf("set category link active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLinkedCategories resolves the active links of a category to full
// target category objects, the shape the cascade calculator consumes.
func (r *CategoryRepo) ListLinkedCategories(ctx context.Context, categoryID string) ([]*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.tag, c.category_group_id, c.inventory_unit,
			c.unit_conversion_rate, c.inventory_deduction_quantity, c.created_at, c.updated_at
		FROM category_links l
		JOIN categories c ON c.id = l.target_id
		WHERE l.source_id = $1 AND l.is_active
		ORDER BY l.created_at`
	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list linked categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan linked category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) linksBySource(ctx context.Context, sourceID string) ([]entity.CategoryLink, error) {
	rows, err := r.q.Query(ctx, `SELECT target_id, is_active, created_at FROM category_links WHERE source_id = $1 ORDER BY created_at`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var links []entity.CategoryLink
	for rows.Next() {
		var l entity.CategoryLink
		if err := rows.Scan(&l.CategoryID, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
