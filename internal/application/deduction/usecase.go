package deduction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

// GroupTotal is the aggregated deduction for one category group, used by
// the "total deductions" view.
type GroupTotal struct {
	Name          string
	TotalQuantity decimal.Decimal
	Unit          string
}

// Preview is the dry-run result: every per-line request (primary and
// cascade, with provenance), the per-group totals, and advisory warnings.
// Nothing is submitted to the inventory boundary.
type Preview struct {
	Items    []entity.DeductionRequest
	Totals   map[string]GroupTotal
	Warnings []string
}

// ProcessedLine pairs an order line with the requests it produced.
type ProcessedLine struct {
	OrderLine
	Deductions []entity.DeductionRequest
}

// ProcessedOrder is the execute-mode result: the enhanced order lines plus
// the inventory boundary's own result for the submitted batch.
type ProcessedOrder struct {
	TransactionID string
	OrderLines    []ProcessedLine
	Inventory     *entity.DeductionResult
}

// OrderDeductionUseCase orchestrates product→category resolution, the
// cascade calculator and the inventory mutation boundary. Each call works
// on its own freshly fetched inputs; there is no shared state between
// concurrent invocations.
type OrderDeductionUseCase struct {
	calc      *Calculator
	submitter DeductionSubmitter
	log       *logger.Logger
}

// NewOrderDeductionUseCase builds the use case.
func NewOrderDeductionUseCase(calc *Calculator, submitter DeductionSubmitter, log *logger.Logger) *OrderDeductionUseCase {
	return &OrderDeductionUseCase{calc: calc, submitter: submitter, log: log}
}

// Preview computes the deductions the given order lines imply without
// applying them. Cascade failures degrade to "primary only" with an
// explanatory warning; Preview itself never fails on collaborator errors.
func (uc *OrderDeductionUseCase) Preview(ctx context.Context, lines []OrderLine) (*Preview, error) {
	items, warnings := uc.collect(ctx, lines, "")

	cascades := 0
	for _, it := range items {
		if it.IsCascade {
			cascades++
		}
	}
	if cascades > 0 {
		warnings = append(warnings, fmt.Sprintf("%d additional cascade deduction(s) will be applied through category links", cascades))
	}

	return &Preview{
		Items:    items,
		Totals:   totalsByGroup(items),
		Warnings: warnings,
	}, nil
}

// Process performs the same computation as Preview and then forwards the
// flattened request list to the inventory boundary in one batch call.
// orderID groups the audit trail and defaults to a new UUID. A submit
// failure is returned unchanged: this core has no authority to retry.
func (uc *OrderDeductionUseCase) Process(ctx context.Context, lines []OrderLine, orderID string) (*ProcessedOrder, error) {
	if orderID == "" {
		orderID = uuid.New().String()
	}

	processed := make([]ProcessedLine, 0, len(lines))
	var flat []entity.DeductionRequest
	for _, line := range lines {
		if line.OrderReference == "" {
			line.OrderReference = orderID
		}
		reqs, _ := uc.calc.LineDeductions(ctx, line)
		processed = append(processed, ProcessedLine{OrderLine: line, Deductions: reqs})
		flat = append(flat, reqs...)
	}

	result := &entity.DeductionResult{}
	if len(flat) > 0 {
		var err error
		result, err = uc.submitter.SubmitDeductionRequests(ctx, orderID, flat)
		if err != nil {
			return nil, err
		}
	}

	uc.log.Info().
		Str("transaction_id", orderID).
		Int("lines", len(lines)).
		Int("deductions", len(flat)).
		Msg("order processed with category deductions")

	return &ProcessedOrder{
		TransactionID: orderID,
		OrderLines:    processed,
		Inventory:     result,
	}, nil
}

// collect runs the calculator over every line. fallbackRef, when set,
// fills empty order references.
func (uc *OrderDeductionUseCase) collect(ctx context.Context, lines []OrderLine, fallbackRef string) ([]entity.DeductionRequest, []string) {
	var items []entity.DeductionRequest
	var warnings []string
	for _, line := range lines {
		if line.OrderReference == "" && fallbackRef != "" {
			line.OrderReference = fallbackRef
		}
		reqs, warns := uc.calc.LineDeductions(ctx, line)
		items = append(items, reqs...)
		warnings = append(warnings, warns...)
	}
	return items, warnings
}

// totalsByGroup sums request quantities per category group. Several
// categories may share one group; simple accumulation is the defined
// conflict resolution.
func totalsByGroup(items []entity.DeductionRequest) map[string]GroupTotal {
	totals := make(map[string]GroupTotal, len(items))
	for _, it := range items {
		t, ok := totals[it.CategoryGroupID]
		if !ok {
			t = GroupTotal{Name: it.CategoryName, Unit: it.Unit}
		}
		t.TotalQuantity = t.TotalQuantity.Add(it.Quantity)
		totals[it.CategoryGroupID] = t
	}
	return totals
}
