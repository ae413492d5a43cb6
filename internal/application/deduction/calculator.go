package deduction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// OrderLine is one order line entering the deduction engine.
type OrderLine struct {
	SKU            string
	Quantity       decimal.Decimal
	Platform       string // amazon, flipkart
	OrderReference string
}

// Calculator computes the flattened set of deduction requests an order
// line implies: one primary deduction for the owning category plus one
// cascade deduction per active link whose target is fully configured.
//
// Cascade is deliberately single level: only the direct links of the
// primary category are read. The link validator's multi-level cycle
// protection exists so that link creation can never build a chain that
// would loop if this walk were ever made transitive.
type Calculator struct {
	products ProductCategoryResolver
	links    LinkedCategoryFetcher
	log      *logger.Logger
}

// NewCalculator builds the calculator.
func NewCalculator(products ProductCategoryResolver, links LinkedCategoryFetcher, log *logger.Logger) *Calculator {
	return &Calculator{products: products, links: links, log: log}
}

// LineDeductions resolves one order line into deduction requests plus
// advisory warnings. A line whose SKU is unknown, uncategorized or whose
// category carries no deduction configuration contributes nothing: absence
// of configuration is a legitimate "not tracked" state, not an error.
// A failure loading linked categories downgrades to "no cascade for this
// line" and never suppresses the primary deduction.
func (c *Calculator) LineDeductions(ctx context.Context, line OrderLine) ([]entity.DeductionRequest, []string) {
	var warnings []string

	cat, err := c.products.GetCategoryBySKU(ctx, line.SKU)
	if err != nil {
		c.log.Warn().Err(err).Str("sku", line.SKU).Msg("resolve product category failed, line skipped")
		warnings = append(warnings, fmt.Sprintf("could not resolve a category for SKU %s: line skipped", line.SKU))
		return nil, warnings
	}
	if cat == nil || !cat.HasDeductionConfig() {
		return nil, warnings
	}

	requests := []entity.DeductionRequest{{
		CategoryGroupID: cat.CategoryGroupID,
		CategoryName:    cat.Name,
		Quantity:        line.Quantity.Mul(cat.InventoryDeductionQuantity),
		Unit:            cat.InventoryUnit,
		SKU:             line.SKU,
		OrderReference:  line.OrderReference,
		Platform:        line.Platform,
	}}

	linked, err := c.links.ListLinkedCategories(ctx, cat.ID)
	if err != nil {
		// Cascade failures must never abort the primary deduction.
		c.log.Warn().Err(err).Str("category", cat.Name).Msg("linked categories unavailable, cascade skipped")
		warnings = append(warnings, fmt.Sprintf("could not load linked categories for %q: cascade deductions skipped", cat.Name))
		return requests, warnings
	}

	for _, target := range linked {
		// Targets missing group or quantity were already warned about at
		// link creation time; here they are silently skipped.
		if target == nil || !target.HasDeductionConfig() {
			continue
		}
		requests = append(requests, entity.DeductionRequest{
			CategoryGroupID: target.CategoryGroupID,
			CategoryName:    target.Name,
			Quantity:        line.Quantity.Mul(target.InventoryDeductionQuantity),
			Unit:            target.InventoryUnit,
			SKU:             line.SKU,
			OrderReference:  line.OrderReference,
			Platform:        line.Platform,
			IsCascade:       true,
			CascadeSource: &entity.CascadeSource{
				SourceCategoryName: cat.Name,
				TargetCategoryName: target.Name,
			},
		})
	}
	return requests, warnings
}
