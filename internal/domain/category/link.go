package category

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// ValidateLink gates a proposed link sourceID → targetID before it is
// persisted. Structural problems (self link, unknown category, cycle in
// the simulated post-mutation graph) are errors; missing deduction
// configuration on the target only warns, since such a link is legal but
// will never cascade. The caller's snapshot is not modified.
func ValidateLink(sourceID, targetID string, categories []*entity.Category) ValidationResult {
	res := NewValidationResult()

	if sourceID == targetID {
		res.AddError("a category cannot be linked to itself")
		return res
	}

	g := buildGraph(categories)
	_, sourceOK := g.byID[sourceID]
	target, targetOK := g.byID[targetID]
	if !sourceOK {
		res.AddError(fmt.Sprintf("source category %s does not exist", sourceID))
	}
	if !targetOK {
		res.AddError(fmt.Sprintf("target category %s does not exist", targetID))
	}
	if !res.IsValid {
		return res
	}

	if !target.InventoryDeductionQuantity.GreaterThan(decimal.Zero) {
		res.AddWarning(fmt.Sprintf("category %q has no deduction quantity configured: cascade deduction will not occur", target.Name))
	}
	if target.CategoryGroupID == "" {
		res.AddWarning(fmt.Sprintf("category %q has no category group assigned: inventory deduction will not be possible", target.Name))
	}

	// Validate against a simulated graph carrying the hypothetical edge.
	// A cycle found here is the definitive rejection reason.
	simulated := CloneWithLink(categories, sourceID, targetID, time.Now())
	res.Merge(CheckCircularDependency(sourceID, simulated))
	return res
}
