package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory units supported for category-level tracking.
const (
	UnitKilogram = "kg"
	UnitGram     = "g"
	UnitPieces   = "pcs"
)

// CategoryLink is a directed edge to another category, used for cascade
// inventory deduction. Inactive links are excluded from traversal but kept
// for audit.
type CategoryLink struct {
	CategoryID string
	IsActive   bool
	CreatedAt  time.Time
}

// Category classifies products and optionally carries inventory deduction
// configuration. Physical quantity is tracked against the category group,
// not the category itself; several categories may share one group.
// An empty ID means the category has not been persisted yet.
type Category struct {
	ID                         string
	Name                       string
	Description                string
	Tag                        string
	CategoryGroupID            string          // empty = inventory deduction not possible
	InventoryUnit              string          // kg, g, pcs
	UnitConversionRate         decimal.Decimal // optional, zero = no conversion
	InventoryDeductionQuantity decimal.Decimal // consumed per ordered unit; zero/negative = not configured
	Links                      []CategoryLink
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// HasDeductionConfig reports whether an order against this category can
// produce an inventory deduction (group assigned and positive quantity).
func (c *Category) HasDeductionConfig() bool {
	return c.CategoryGroupID != "" && c.InventoryDeductionQuantity.GreaterThan(decimal.Zero)
}

// ActiveLinks returns the outgoing links that participate in cycle checks
// and cascade computation.
func (c *Category) ActiveLinks() []CategoryLink {
	var active []CategoryLink
	for _, l := range c.Links {
		if l.IsActive {
			active = append(active, l)
		}
	}
	return active
}
