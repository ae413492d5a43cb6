package deduction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/deduction"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: the resolver maps SKU → category; the fetcher resolves a
// category's active links against the same snapshot, mirroring the
// repository contract (inactive links never come back).
// ──────────────────────────────────────────────────────────────────────────────

type fakeResolver struct {
	bySKU map[string]*entity.Category
	err   error
}

func (f fakeResolver) GetCategoryBySKU(_ context.Context, sku string) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySKU[sku], nil
}

type fakeLinkFetcher struct {
	byID map[string]*entity.Category
	err  error
}

func (f fakeLinkFetcher) ListLinkedCategories(_ context.Context, categoryID string) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	source, ok := f.byID[categoryID]
	if !ok {
		return nil, nil
	}
	var linked []*entity.Category
	for _, l := range source.ActiveLinks() {
		if target, ok := f.byID[l.CategoryID]; ok {
			linked = append(linked, target)
		}
	}
	return linked, nil
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func testCategory(id, name, groupID string, deduction int64, links ...entity.CategoryLink) *entity.Category {
	return &entity.Category{
		ID:                         id,
		Name:                       name,
		CategoryGroupID:            groupID,
		InventoryUnit:              entity.UnitPieces,
		InventoryDeductionQuantity: qty(deduction),
		Links:                      links,
	}
}

func activeLink(targetID string) entity.CategoryLink {
	return entity.CategoryLink{CategoryID: targetID, IsActive: true, CreatedAt: time.Now()}
}

// electronicsWorld is the canonical scenario: Electronics (deduction 1)
// actively linked to Batteries (deduction 2) and Chargers (deduction 1).
func electronicsWorld() (fakeResolver, fakeLinkFetcher) {
	electronics := testCategory("cat-e", "Electronics", "electronics-group", 1,
		activeLink("cat-b"), activeLink("cat-c"))
	batteries := testCategory("cat-b", "Batteries", "battery-group", 2)
	chargers := testCategory("cat-c", "Chargers", "charger-group", 1)

	byID := map[string]*entity.Category{"cat-e": electronics, "cat-b": batteries, "cat-c": chargers}
	return fakeResolver{bySKU: map[string]*entity.Category{"SKU-1": electronics}}, fakeLinkFetcher{byID: byID}
}

// ──────────────────────────────────────────────────────────────────────────────
// LineDeductions
// ──────────────────────────────────────────────────────────────────────────────

func TestLineDeductions_PrimaryPlusCascades(t *testing.T) {
	resolver, fetcher := electronicsWorld()
	calc := deduction.NewCalculator(resolver, fetcher, logger.Nop())

	reqs, warnings := calc.LineDeductions(context.Background(), deduction.OrderLine{
		SKU: "SKU-1", Quantity: qty(2), Platform: entity.PlatformAmazon, OrderReference: "ORD-1",
	})

	require.Len(t, reqs, 3, "one primary and two cascade requests expected")
	assert.Empty(t, warnings)

	primary := reqs[0]
	assert.False(t, primary.IsCascade)
	assert.Equal(t, "electronics-group", primary.CategoryGroupID)
	assert.True(t, primary.Quantity.Equal(qty(2)), "2 ordered × deduction 1")

	byGroup := map[string]entity.DeductionRequest{}
	for _, r := range reqs[1:] {
		byGroup[r.CategoryGroupID] = r
	}
	require.Contains(t, byGroup, "battery-group")
	require.Contains(t, byGroup, "charger-group")
	assert.True(t, byGroup["battery-group"].Quantity.Equal(qty(4)), "2 ordered × deduction 2")
	assert.True(t, byGroup["charger-group"].Quantity.Equal(qty(2)))

	cascade := byGroup["battery-group"]
	assert.True(t, cascade.IsCascade)
	require.NotNil(t, cascade.CascadeSource)
	assert.Equal(t, "Electronics", cascade.CascadeSource.SourceCategoryName)
	assert.Equal(t, "Batteries", cascade.CascadeSource.TargetCategoryName)
}

func TestLineDeductions_InactiveLinkNeverCascades(t *testing.T) {
	electronics := testCategory("cat-e", "Electronics", "electronics-group", 1,
		entity.CategoryLink{CategoryID: "cat-b", IsActive: false, CreatedAt: time.Now()})
	batteries := testCategory("cat-b", "Batteries", "battery-group", 2)

	resolver := fakeResolver{bySKU: map[string]*entity.Category{"SKU-1": electronics}}
	fetcher := fakeLinkFetcher{byID: map[string]*entity.Category{"cat-e": electronics, "cat-b": batteries}}
	calc := deduction.NewCalculator(resolver, fetcher, logger.Nop())

	reqs, _ := calc.LineDeductions(context.Background(), deduction.OrderLine{SKU: "SKU-1", Quantity: qty(2)})

	require.Len(t, reqs, 1, "a fully configured target behind an inactive link must be skipped")
	assert.False(t, reqs[0].IsCascade)
}

func TestLineDeductions_TargetWithoutGroupSkippedSilently(t *testing.T) {
	target := testCategory("cat-b", "Accessories", "", 2) // no category group
	electronics := testCategory("cat-e", "Electronics", "electronics-group", 1, activeLink("cat-b"))

	resolver := fakeResolver{bySKU: map[string]*entity.Category{"SKU-1": electronics}}
	fetcher := fakeLinkFetcher{byID: map[string]*entity.Category{"cat-e": electronics, "cat-b": target}}
	calc := deduction.NewCalculator(resolver, fetcher, logger.Nop())

	reqs, warnings := calc.LineDeductions(context.Background(), deduction.OrderLine{SKU: "SKU-1", Quantity: qty(1)})

	require.Len(t, reqs, 1, "primary applies, the unconfigured target does not")
	assert.Empty(t, warnings, "the warning already happened at link creation time")
}

func TestLineDeductions_UnconfiguredPrimaryIsSilentNoOp(t *testing.T) {
	untracked := testCategory("cat-u", "Untracked", "", 0)
	resolver := fakeResolver{bySKU: map[string]*entity.Category{"SKU-1": untracked}}
	calc := deduction.NewCalculator(resolver, fakeLinkFetcher{}, logger.Nop())

	reqs, warnings := calc.LineDeductions(context.Background(), deduction.OrderLine{SKU: "SKU-1", Quantity: qty(5)})

	assert.Empty(t, reqs, "absence of configuration is a legitimate not-tracked state")
	assert.Empty(t, warnings)
}

func TestLineDeductions_UnknownSKUContributesNothing(t *testing.T) {
	calc := deduction.NewCalculator(fakeResolver{}, fakeLinkFetcher{}, logger.Nop())

	reqs, warnings := calc.LineDeductions(context.Background(), deduction.OrderLine{SKU: "NOPE", Quantity: qty(1)})

	assert.Empty(t, reqs)
	assert.Empty(t, warnings)
}

func TestLineDeductions_LinkFetchFailureKeepsPrimary(t *testing.T) {
	resolver, _ := electronicsWorld()
	fetcher := fakeLinkFetcher{err: errors.New("storage unavailable")}
	calc := deduction.NewCalculator(resolver, fetcher, logger.Nop())

	reqs, warnings := calc.LineDeductions(context.Background(), deduction.OrderLine{SKU: "SKU-1", Quantity: qty(2)})

	require.Len(t, reqs, 1, "cascade failure must never abort the primary deduction")
	assert.False(t, reqs[0].IsCascade)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Electronics", "the warning must name the source category")
}

func TestLineDeductions_ResolverFailureSkipsLineWithWarning(t *testing.T) {
	calc := deduction.NewCalculator(fakeResolver{err: errors.New("boom")}, fakeLinkFetcher{}, logger.Nop())

	reqs, warnings := calc.LineDeductions(context.Background(), deduction.OrderLine{SKU: "SKU-1", Quantity: qty(1)})

	assert.Empty(t, reqs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "SKU-1")
}
