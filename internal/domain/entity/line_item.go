package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxMode says whether a line's price already contains consumption tax.
type TaxMode string

const (
	// TaxInclusive: the unit price contains 10% consumption tax; the net
	// amount is backed out by dividing by 1.10.
	TaxInclusive TaxMode = "inclusive"
	// TaxExclusive: the unit price excludes tax; 10% is added on top.
	TaxExclusive TaxMode = "exclusive"
)

// Valid reports whether m is one of the two known modes.
func (m TaxMode) Valid() bool {
	return m == TaxInclusive || m == TaxExclusive
}

// LineItem is a single row of a billing document.
// Quantity and UnitPrice are kept non-negative; callers that accept free-form
// input coerce garbage to zero before it gets here.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxMode     TaxMode         `json:"taxMode"`
}

// Amount returns quantity × unit price (gross, before any tax netting).
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// NewBlankLineItem returns the default empty row a fresh document starts with:
// quantity 1, price 0, tax-inclusive.
func NewBlankLineItem() LineItem {
	return LineItem{
		ID:       uuid.New().String(),
		Quantity: decimal.NewFromInt(1),
		TaxMode:  TaxInclusive,
	}
}
