package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLevel is the physical stock tracked for one category group.
type InventoryLevel struct {
	CategoryGroupID string
	Name            string
	Quantity        decimal.Decimal
	Unit            string // kg, g, pcs
	UpdatedAt       time.Time
}
