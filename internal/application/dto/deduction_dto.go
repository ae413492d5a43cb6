package dto

import (
	"github.com/shopspring/decimal"

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/deduction"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/domain/entity"
)

// OrderLineRequest one line of an incoming order.
type OrderLineRequest struct {
	SKU            string          `json:"sku"`
	Quantity       decimal.Decimal `json:"quantity"`
	Platform       string          `json:"platform"` // amazon, flipkart
	OrderReference string          `json:"order_reference,omitempty"`
}

// ProcessOrderRequest body for POST /api/orders/deductions.
type ProcessOrderRequest struct {
	OrderID string             `json:"order_id,omitempty"` // generated when absent
	Lines   []OrderLineRequest `json:"lines"`
}

// PreviewOrderRequest body for POST /api/orders/deductions/preview.
type PreviewOrderRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// ToOrderLines maps request lines to the engine's input.
func ToOrderLines(lines []OrderLineRequest) []deduction.OrderLine {
	out := make([]deduction.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, deduction.OrderLine{
			SKU:            l.SKU,
			Quantity:       l.Quantity,
			Platform:       l.Platform,
			OrderReference: l.OrderReference,
		})
	}
	return out
}

// CascadeSourceDTO audit provenance of a cascade deduction.
type CascadeSourceDTO struct {
	SourceCategoryName string `json:"source_category_name"`
	TargetCategoryName string `json:"target_category_name"`
}

// DeductionItemDTO one computed deduction request.
type DeductionItemDTO struct {
	CategoryGroupID string            `json:"category_group_id"`
	CategoryName    string            `json:"category_name"`
	Quantity        decimal.Decimal   `json:"quantity"`
	Unit            string            `json:"unit"`
	SKU             string            `json:"sku"`
	OrderReference  string            `json:"order_reference"`
	Platform        string            `json:"platform"`
	IsCascade       bool              `json:"is_cascade"`
	CascadeSource   *CascadeSourceDTO `json:"cascade_source,omitempty"`
}

// GroupTotalDTO aggregated quantity for one category group.
type GroupTotalDTO struct {
	Name          string          `json:"name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Unit          string          `json:"unit"`
}

// PreviewResponse body for the deduction preview endpoint.
type PreviewResponse struct {
	Items           []DeductionItemDTO       `json:"items"`
	TotalDeductions map[string]GroupTotalDTO `json:"total_deductions"`
	Warnings        []string                 `json:"warnings"`
}

// DeductionItems maps engine requests to their response shape.
func DeductionItems(reqs []entity.DeductionRequest) []DeductionItemDTO {
	items := make([]DeductionItemDTO, 0, len(reqs))
	for _, r := range reqs {
		item := DeductionItemDTO{
			CategoryGroupID: r.CategoryGroupID,
			CategoryName:    r.CategoryName,
			Quantity:        r.Quantity,
			Unit:            r.Unit,
			SKU:             r.SKU,
			OrderReference:  r.OrderReference,
			Platform:        r.Platform,
			IsCascade:       r.IsCascade,
		}
		if r.CascadeSource != nil {
			item.CascadeSource = &CascadeSourceDTO{
				SourceCategoryName: r.CascadeSource.SourceCategoryName,
				TargetCategoryName: r.CascadeSource.TargetCategoryName,
			}
		}
		items = append(items, item)
	}
	return items
}

// PreviewToResponse maps a Preview.
func PreviewToResponse(p *deduction.Preview) PreviewResponse {
	totals := make(map[string]GroupTotalDTO, len(p.Totals))
	for groupID, t := range p.Totals {
		totals[groupID] = GroupTotalDTO{Name: t.Name, TotalQuantity: t.TotalQuantity, Unit: t.Unit}
	}
	return PreviewResponse{
		Items:           DeductionItems(p.Items),
		TotalDeductions: totals,
		Warnings:        p.Warnings,
	}
}

// ProcessedLineDTO one order line with its applied deductions.
type ProcessedLineDTO struct {
	SKU            string             `json:"sku"`
	Quantity       decimal.Decimal    `json:"quantity"`
	Platform       string             `json:"platform"`
	OrderReference string             `json:"order_reference"`
	Deductions     []DeductionItemDTO `json:"deductions"`
}

// ProcessOrderResponse body for the execute endpoint.
type ProcessOrderResponse struct {
	TransactionID string             `json:"transaction_id"`
	OrderItems    []ProcessedLineDTO `json:"order_items"`
	Warnings      []string           `json:"warnings"`
	Errors        []string           `json:"errors"`
	Applied       int                `json:"applied"`
}

// ProcessedToResponse maps a ProcessedOrder.
func ProcessedToResponse(po *deduction.ProcessedOrder) ProcessOrderResponse {
	items := make([]ProcessedLineDTO, 0, len(po.OrderLines))
	for _, pl := range po.OrderLines {
		items = append(items, ProcessedLineDTO{
			SKU:            pl.SKU,
			Quantity:       pl.Quantity,
			Platform:       pl.Platform,
			OrderReference: pl.OrderReference,
			Deductions:     DeductionItems(pl.Deductions),
		})
	}
	resp := ProcessOrderResponse{
		TransactionID: po.TransactionID,
		OrderItems:    items,
	}
	if po.Inventory != nil {
		resp.Warnings = po.Inventory.Warnings
		resp.Errors = po.Inventory.Errors
		resp.Applied = len(po.Inventory.Deductions)
	}
	return resp
}
