package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/category"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// CategoryUseCase covers category CRUD and the gated link mutations. Link
// mutation is the single gate that could introduce a cycle into the
// category graph, so every AddLink validates against a freshly fetched
// snapshot and persists only when the validator passes.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  *logger.Logger
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log}
}

// Create persists a new category. The ID is generated here when absent.
func (uc *CategoryUseCase) Create(ctx context.Context, c *entity.Category) error {
	if c == nil || c.Name == "" {
		return domain.ErrInvalidInput
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return uc.repo.Create(ctx, c)
}

// GetByID returns one category with its links.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

// List returns all categories with their links (the graph snapshot).
func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	return uc.repo.List(ctx)
}

// Update persists changes to name, group and deduction configuration.
func (uc *CategoryUseCase) Update(ctx context.Context, c *entity.Category) error {
	if c == nil || c.ID == "" || c.Name == "" {
		return domain.ErrInvalidInput
	}
	c.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, c)
}

// Delete removes a category.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// AddLink validates a proposed link against a fresh snapshot and persists
// it only when no structural error was found. The returned result carries
// every error and warning for the caller to display (errors first);
// domain.ErrInvalidLink accompanies a rejection.
func (uc *CategoryUseCase) AddLink(ctx context.Context, sourceID, targetID string) (category.ValidationResult, error) {
	snapshot, err := uc.repo.List(ctx)
	if err != nil {
		return category.NewValidationResult(), err
	}

	res := category.ValidateLink(sourceID, targetID, snapshot)
	for _, c := range snapshot {
		if c.ID != sourceID {
			continue
		}
		for _, l := range c.Links {
			if l.CategoryID == targetID {
				res.AddError("link already exists")
			}
		}
	}
	if !res.IsValid {
		uc.log.Info().
			Str("source", sourceID).
			Str("target", targetID).
			Strs("errors", res.Errors).
			Msg("category link rejected")
		return res, domain.ErrInvalidLink
	}

	link := entity.CategoryLink{CategoryID: targetID, IsActive: true, CreatedAt: time.Now()}
	if err := uc.repo.AddLink(ctx, sourceID, link); err != nil {
		return res, err
	}
	return res, nil
}

// RemoveLink deletes the link sourceID → targetID.
func (uc *CategoryUseCase) RemoveLink(ctx context.Context, sourceID, targetID string) error {
	if sourceID == "" || targetID == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.RemoveLink(ctx, sourceID, targetID)
}

// SetLinkActive toggles a link. Deactivating keeps the row for audit while
// removing the edge from cycle checks and cascade computation.
func (uc *CategoryUseCase) SetLinkActive(ctx context.Context, sourceID, targetID string, active bool) error {
	if sourceID == "" || targetID == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.SetLinkActive(ctx, sourceID, targetID, active)
}

// CheckCircular runs the cycle check for one category on a fresh snapshot.
func (uc *CategoryUseCase) CheckCircular(ctx context.Context, categoryID string) (category.ValidationResult, error) {
	snapshot, err := uc.repo.List(ctx)
	if err != nil {
		return category.NewValidationResult(), err
	}
	return category.CheckCircularDependency(categoryID, snapshot), nil
}

// ValidateAllLinks audits the whole graph.
func (uc *CategoryUseCase) ValidateAllLinks(ctx context.Context) (category.ValidationResult, error) {
	snapshot, err := uc.repo.List(ctx)
	if err != nil {
		return category.NewValidationResult(), err
	}
	return category.ValidateAllCategoryLinks(snapshot), nil
}

// DependencyChains reports the chains reachable from one category.
func (uc *CategoryUseCase) DependencyChains(ctx context.Context, categoryID string, maxDepth int) ([]string, error) {
	snapshot, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return category.DependencyChains(categoryID, snapshot, maxDepth), nil
}
