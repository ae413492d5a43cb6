package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CascadeSource names the link that produced a cascade deduction, for
// audit display next to the request.
type CascadeSource struct {
	SourceCategoryName string
	TargetCategoryName string
}

// DeductionRequest is one inventory deduction to apply against a category
// group. Quantity is always derived and >= 0. Requests tagged IsCascade
// carry the originating link in CascadeSource.
type DeductionRequest struct {
	CategoryGroupID string
	CategoryName    string // category that contributed the request, for display
	Quantity        decimal.Decimal
	Unit            string // kg, g, pcs
	SKU             string
	OrderReference  string
	Platform        string
	IsCascade       bool
	CascadeSource   *CascadeSource
}

// DeductionResult is the outcome of submitting a batch of requests to the
// inventory mutation boundary. Errors name requests that could not be
// applied; warnings are advisory (for example a level driven negative).
type DeductionResult struct {
	Deductions []DeductionMovement
	Warnings   []string
	Errors     []string
}

// DeductionMovement is the persisted audit record of one applied deduction.
type DeductionMovement struct {
	ID              string
	TransactionID   string // groups all movements of one order batch
	CategoryGroupID string
	SKU             string
	OrderReference  string
	Platform        string
	Quantity        decimal.Decimal // positive, amount removed
	Unit            string
	IsCascade       bool
	SourceCategory  string // cascade provenance, empty for primary
	TargetCategory  string
	CreatedAt       time.Time
}
