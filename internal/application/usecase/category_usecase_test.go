package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/usecase"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// memoryCategoryRepo is an in-memory CategoryRepository good enough to
// exercise the link mutation gate without a database.
type memoryCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemoryCategoryRepo(categories ...*entity.Category) *memoryCategoryRepo {
	r := &memoryCategoryRepo{byID: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.byID[c.ID] = c
	}
	return r
}

func (r *memoryCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if _, ok := r.byID[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[c.ID] = c
	return nil
}

func (r *memoryCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.byID[id], nil
}

func (r *memoryCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *memoryCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memoryCategoryRepo) AddLink(_ context.Context, categoryID string, link entity.CategoryLink) error {
	c, ok := r.byID[categoryID]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	c.Links = append(c.Links, link)
	return nil
}

func (r *memoryCategoryRepo) RemoveLink(_ context.Context, categoryID, targetID string) error {
	c, ok := r.byID[categoryID]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	kept := c.Links[:0]
	for _, l := range c.Links {
		if l.CategoryID != targetID {
			kept = append(kept, l)
		}
	}
	c.Links = kept
	return nil
}

func (r *memoryCategoryRepo) SetLinkActive(_ context.Context, categoryID, targetID string, active bool) error {
	c, ok := r.byID[categoryID]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	for i := range c.Links {
		if c.Links[i].CategoryID == targetID {
			c.Links[i].IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryCategoryRepo) ListLinkedCategories(_ context.Context, categoryID string) ([]*entity.Category, error) {
	c, ok := r.byID[categoryID]
	if !ok {
		return nil, nil
	}
	var out []*entity.Category
	for _, l := range c.ActiveLinks() {
		if target, ok := r.byID[l.CategoryID]; ok {
			out = append(out, target)
		}
	}
	return out, nil
}

func configured(id, name, groupID string) *entity.Category {
	return &entity.Category{
		ID:                         id,
		Name:                       name,
		CategoryGroupID:            groupID,
		InventoryUnit:              entity.UnitPieces,
		InventoryDeductionQuantity: decimal.NewFromInt(1),
	}
}

func activeLinkTo(targetID string) entity.CategoryLink {
	return entity.CategoryLink{CategoryID: targetID, IsActive: true, CreatedAt: time.Now()}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddLink gate
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLink_ValidLinkIsPersisted(t *testing.T) {
	repo := newMemoryCategoryRepo(
		configured("cat-e", "Electronics", "electronics-group"),
		configured("cat-b", "Batteries", "battery-group"),
	)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	res, err := uc.AddLink(context.Background(), "cat-e", "cat-b")

	require.NoError(t, err)
	assert.True(t, res.IsValid)
	require.Len(t, repo.byID["cat-e"].Links, 1)
	assert.Equal(t, "cat-b", repo.byID["cat-e"].Links[0].CategoryID)
	assert.True(t, repo.byID["cat-e"].Links[0].IsActive, "new links start active")
}

func TestAddLink_CycleClosingLinkRejectedAndNotPersisted(t *testing.T) {
	a := configured("cat-a", "Electronics", "g-a")
	b := configured("cat-b", "Accessories", "g-b")
	a.Links = append(a.Links, activeLinkTo("cat-b"))
	repo := newMemoryCategoryRepo(a, b)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	res, err := uc.AddLink(context.Background(), "cat-b", "cat-a")

	require.ErrorIs(t, err, domain.ErrInvalidLink)
	assert.False(t, res.IsValid)
	assert.NotEmpty(t, res.Errors)
	assert.Empty(t, repo.byID["cat-b"].Links, "rejected links must never reach storage")
}

func TestAddLink_DuplicateRejected(t *testing.T) {
	a := configured("cat-a", "Electronics", "g-a")
	a.Links = append(a.Links, activeLinkTo("cat-b"))
	repo := newMemoryCategoryRepo(a, configured("cat-b", "Batteries", "g-b"))
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	res, err := uc.AddLink(context.Background(), "cat-a", "cat-b")

	require.ErrorIs(t, err, domain.ErrInvalidLink)
	assert.Contains(t, res.Errors, "link already exists")
	assert.Len(t, repo.byID["cat-a"].Links, 1)
}

func TestAddLink_SelfLinkRejected(t *testing.T) {
	repo := newMemoryCategoryRepo(configured("cat-a", "Electronics", "g-a"))
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	_, err := uc.AddLink(context.Background(), "cat-a", "cat-a")

	require.ErrorIs(t, err, domain.ErrInvalidLink)
	assert.Empty(t, repo.byID["cat-a"].Links)
}

func TestAddLink_UnconfiguredTargetPersistedWithWarnings(t *testing.T) {
	bare := &entity.Category{ID: "cat-b", Name: "Misc"} // no group, no quantity
	repo := newMemoryCategoryRepo(configured("cat-a", "Electronics", "g-a"), bare)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	res, err := uc.AddLink(context.Background(), "cat-a", "cat-b")

	require.NoError(t, err, "warnings inform, they never block")
	assert.True(t, res.IsValid)
	assert.Len(t, res.Warnings, 2)
	assert.Len(t, repo.byID["cat-a"].Links, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD and graph queries
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GeneratesIDAndTimestamps(t *testing.T) {
	repo := newMemoryCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	c := &entity.Category{Name: "Electronics"}
	require.NoError(t, uc.Create(context.Background(), c))

	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.NotNil(t, repo.byID[c.ID])
}

func TestCreate_RejectsUnnamedCategory(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemoryCategoryRepo(), logger.Nop())

	err := uc.Create(context.Background(), &entity.Category{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_MissingCategory(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemoryCategoryRepo(), logger.Nop())

	_, err := uc.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCheckCircular_ReportsExistingCycle(t *testing.T) {
	a := configured("cat-a", "Electronics", "g-a")
	b := configured("cat-b", "Accessories", "g-b")
	a.Links = append(a.Links, activeLinkTo("cat-b"))
	b.Links = append(b.Links, activeLinkTo("cat-a"))
	uc := usecase.NewCategoryUseCase(newMemoryCategoryRepo(a, b), logger.Nop())

	res, err := uc.CheckCircular(context.Background(), "cat-a")

	require.NoError(t, err)
	assert.False(t, res.IsValid)
}

func TestSetLinkActive_DeactivationUnblocksValidation(t *testing.T) {
	a := configured("cat-a", "Electronics", "g-a")
	b := configured("cat-b", "Accessories", "g-b")
	a.Links = append(a.Links, activeLinkTo("cat-b"))
	b.Links = append(b.Links, activeLinkTo("cat-a"))
	repo := newMemoryCategoryRepo(a, b)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	require.NoError(t, uc.SetLinkActive(context.Background(), "cat-b", "cat-a", false))

	res, err := uc.CheckCircular(context.Background(), "cat-a")
	require.NoError(t, err)
	assert.True(t, res.IsValid, "an inactive edge no longer participates in cycles")
}

func TestDependencyChains_UsesFreshSnapshot(t *testing.T) {
	a := configured("cat-a", "Electronics", "g-a")
	b := configured("cat-b", "Batteries", "g-b")
	a.Links = append(a.Links, activeLinkTo("cat-b"))
	uc := usecase.NewCategoryUseCase(newMemoryCategoryRepo(a, b), logger.Nop())

	chains, err := uc.DependencyChains(context.Background(), "cat-a", 10)

	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, "Electronics → Batteries", chains[0])
}
