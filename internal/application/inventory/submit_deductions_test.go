package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/inventory"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/repository"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// fakeTxRunner hands in-memory repositories to fn and keeps the changes
// only when fn succeeds, imitating commit/rollback.
type fakeTxRunner struct {
	levels     *memoryLevelRepo
	movements  *memoryMovementRepo
	rolledBack bool
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.InventoryLevelRepository, repository.DeductionMovementRepository) error) error {
	levelsCopy := r.levels.clone()
	movementsCopy := r.movements.clone()
	if err := fn(levelsCopy, movementsCopy); err != nil {
		r.rolledBack = true
		return err
	}
	*r.levels = *levelsCopy
	*r.movements = *movementsCopy
	return nil
}

type memoryLevelRepo struct {
	byGroup   map[string]*entity.InventoryLevel
	upsertErr error
}

func (r *memoryLevelRepo) clone() *memoryLevelRepo {
	c := &memoryLevelRepo{byGroup: make(map[string]*entity.InventoryLevel, len(r.byGroup)), upsertErr: r.upsertErr}
	for k, v := range r.byGroup {
		copied := *v
		c.byGroup[k] = &copied
	}
	return c
}

func (r *memoryLevelRepo) Get(_ context.Context, groupID string) (*entity.InventoryLevel, error) {
	return r.byGroup[groupID], nil
}

func (r *memoryLevelRepo) GetForUpdate(_ context.Context, groupID string) (*entity.InventoryLevel, error) {
	return r.byGroup[groupID], nil
}

func (r *memoryLevelRepo) Upsert(_ context.Context, level *entity.InventoryLevel) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.byGroup[level.CategoryGroupID] = level
	return nil
}

func (r *memoryLevelRepo) List(_ context.Context, _, _ int) ([]*entity.InventoryLevel, error) {
	out := make([]*entity.InventoryLevel, 0, len(r.byGroup))
	for _, l := range r.byGroup {
		out = append(out, l)
	}
	return out, nil
}

type memoryMovementRepo struct {
	created []*entity.DeductionMovement
}

func (r *memoryMovementRepo) clone() *memoryMovementRepo {
	return &memoryMovementRepo{created: append([]*entity.DeductionMovement(nil), r.created...)}
}

func (r *memoryMovementRepo) Create(_ context.Context, m *entity.DeductionMovement) error {
	r.created = append(r.created, m)
	return nil
}

func (r *memoryMovementRepo) ListByTransaction(_ context.Context, transactionID string) ([]*entity.DeductionMovement, error) {
	var out []*entity.DeductionMovement
	for _, m := range r.created {
		if m.TransactionID == transactionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryMovementRepo) ListByOrderReference(_ context.Context, orderReference string) ([]*entity.DeductionMovement, error) {
	var out []*entity.DeductionMovement
	for _, m := range r.created {
		if m.OrderReference == orderReference {
			out = append(out, m)
		}
	}
	return out, nil
}

func level(groupID string, quantity int64) *entity.InventoryLevel {
	return &entity.InventoryLevel{
		CategoryGroupID: groupID,
		Quantity:        decimal.NewFromInt(quantity),
		Unit:            entity.UnitPieces,
	}
}

func request(groupID string, quantity int64) entity.DeductionRequest {
	return entity.DeductionRequest{
		CategoryGroupID: groupID,
		Quantity:        decimal.NewFromInt(quantity),
		Unit:            entity.UnitPieces,
		SKU:             "SKU-1",
		OrderReference:  "ORD-1",
		Platform:        entity.PlatformFlipkart,
	}
}

func newRunner(levels ...*entity.InventoryLevel) *fakeTxRunner {
	repo := &memoryLevelRepo{byGroup: make(map[string]*entity.InventoryLevel)}
	for _, l := range levels {
		repo.byGroup[l.CategoryGroupID] = l
	}
	return &fakeTxRunner{levels: repo, movements: &memoryMovementRepo{}}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitDeductionRequests_AppliesBatchAndRecordsMovements(t *testing.T) {
	runner := newRunner(level("electronics-group", 10), level("battery-group", 20))
	uc := inventory.NewSubmitDeductionsUseCase(runner, logger.Nop())

	cascade := request("battery-group", 4)
	cascade.IsCascade = true
	cascade.CascadeSource = &entity.CascadeSource{SourceCategoryName: "Electronics", TargetCategoryName: "Batteries"}

	result, err := uc.SubmitDeductionRequests(context.Background(), "txn-1",
		[]entity.DeductionRequest{request("electronics-group", 2), cascade})

	require.NoError(t, err)
	require.Len(t, result.Deductions, 2)
	assert.Empty(t, result.Errors)

	assert.True(t, runner.levels.byGroup["electronics-group"].Quantity.Equal(decimal.NewFromInt(8)))
	assert.True(t, runner.levels.byGroup["battery-group"].Quantity.Equal(decimal.NewFromInt(16)))

	require.Len(t, runner.movements.created, 2)
	audit := runner.movements.created[1]
	assert.Equal(t, "txn-1", audit.TransactionID)
	assert.True(t, audit.IsCascade)
	assert.Equal(t, "Electronics", audit.SourceCategory)
	assert.Equal(t, "Batteries", audit.TargetCategory)
	assert.NotEmpty(t, audit.ID)
}

func TestSubmitDeductionRequests_MissingLevelSkipsRequestOnly(t *testing.T) {
	runner := newRunner(level("battery-group", 20))
	uc := inventory.NewSubmitDeductionsUseCase(runner, logger.Nop())

	result, err := uc.SubmitDeductionRequests(context.Background(), "txn-1",
		[]entity.DeductionRequest{request("ghost-group", 2), request("battery-group", 4)})

	require.NoError(t, err, "a missing level is a per-request error, not a batch failure")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ghost-group")
	require.Len(t, result.Deductions, 1, "the rest of the batch still applies")
	assert.True(t, runner.levels.byGroup["battery-group"].Quantity.Equal(decimal.NewFromInt(16)))
}

func TestSubmitDeductionRequests_NegativeLevelWarnsButApplies(t *testing.T) {
	runner := newRunner(level("battery-group", 3))
	uc := inventory.NewSubmitDeductionsUseCase(runner, logger.Nop())

	result, err := uc.SubmitDeductionRequests(context.Background(), "txn-1",
		[]entity.DeductionRequest{request("battery-group", 5)})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "negative")
	assert.True(t, runner.levels.byGroup["battery-group"].Quantity.Equal(decimal.NewFromInt(-2)),
		"negative stock is recorded, not clamped")
	assert.Len(t, result.Deductions, 1)
}

func TestSubmitDeductionRequests_InfrastructureFailureRollsBack(t *testing.T) {
	runner := newRunner(level("electronics-group", 10))
	runner.levels.upsertErr = errors.New("connection reset")
	uc := inventory.NewSubmitDeductionsUseCase(runner, logger.Nop())

	result, err := uc.SubmitDeductionRequests(context.Background(), "txn-1",
		[]entity.DeductionRequest{request("electronics-group", 2)})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, runner.rolledBack)
	assert.True(t, runner.levels.byGroup["electronics-group"].Quantity.Equal(decimal.NewFromInt(10)),
		"stock is untouched after rollback")
	assert.Empty(t, runner.movements.created)
}

func TestSubmitDeductionRequests_EmptyBatch(t *testing.T) {
	runner := newRunner()
	uc := inventory.NewSubmitDeductionsUseCase(runner, logger.Nop())

	result, err := uc.SubmitDeductionRequests(context.Background(), "txn-1", nil)

	require.NoError(t, err)
	assert.Empty(t, result.Deductions)
	assert.Empty(t, result.Errors)
}
