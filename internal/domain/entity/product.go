package entity

import "time"

// Marketplace platforms an order line can originate from.
const (
	PlatformAmazon   = "amazon"
	PlatformFlipkart = "flipkart"
)

// Product is a listed SKU. CategoryID points at the owning Category, which
// carries the inventory deduction configuration; a product without a
// category (or with an unconfigured one) is simply not inventory-tracked.
type Product struct {
	ID          string
	SKU         string // unique per platform
	Name        string
	Platform    string // amazon, flipkart
	CategoryID  string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
