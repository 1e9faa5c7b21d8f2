// Package tax computes billing-document totals under the Japanese 10%
// consumption-tax regime, with mixed inclusive/exclusive line items.
//
// Two derived figures exist on purpose and must not be unified:
//
//   - ComputeTotals: the itemized netting algorithm. Each line is netted
//     (exclusive lines as-is, inclusive lines divided by 1.10), the net and
//     tax aggregates are rounded independently, and the grand total is the
//     sum of the two already-rounded figures.
//   - ComputeSummary: the headline shortcut shown in the amount-summary
//     block: exclusiveSubtotal × 1.10 + inclusiveSubtotal, rounded once.
//
// The two can legitimately differ by a few yen on mixed-mode documents.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/hayashiy/billdoc/internal/domain/entity"
)

// Tax-label values for the applicable-mode text next to printed amounts.
const (
	LabelInclusive = "inclusive"
	LabelExclusive = "exclusive"
	LabelMixed     = "inclusive/exclusive"
)

var (
	taxRate    = decimal.NewFromFloat(0.10)
	grossRate  = decimal.NewFromFloat(1.10)
	hundred    = decimal.NewFromInt(100)
	hundredTen = decimal.NewFromInt(110)
)

// Totals is the itemized totals-table figure set. Never persisted; always
// recomputed from the line items.
type Totals struct {
	SubtotalExTax  decimal.Decimal
	ConsumptionTax decimal.Decimal
	GrandTotal     decimal.Decimal
	TaxLabel       string
}

// Summary is the headline amount-summary figure. Computed without per-line
// netting, so on mixed-mode documents it may diverge from Totals.GrandTotal
// by rounding order.
type Summary struct {
	Amount   decimal.Decimal
	TaxLabel string
}

// ComputeTotals runs the canonical netting algorithm over the line items.
// It never fails: an empty slice yields all-zero totals and an empty label,
// and negative quantities or prices are clamped to zero before entering the
// accumulation.
func ComputeTotals(items []entity.LineItem) Totals {
	var net, taxSum decimal.Decimal
	inclusiveGross, exclusiveGross := splitGross(items)

	for _, it := range items {
		lineTotal := clampNonNegative(it.Quantity).Mul(clampNonNegative(it.UnitPrice))
		if it.TaxMode == entity.TaxExclusive {
			net = net.Add(lineTotal)
			taxSum = taxSum.Add(lineTotal.Mul(taxRate))
		} else {
			// Inclusive (and the blank default): back the net out of the
			// gross line total.
			lineNet := lineTotal.Mul(hundred).Div(hundredTen)
			net = net.Add(lineNet)
			taxSum = taxSum.Add(lineTotal.Sub(lineNet))
		}
	}

	// Round each aggregate independently, then sum the rounded figures.
	// Rounding the raw net+tax sum once instead can differ by ±1 yen.
	roundedNet := net.Round(0)
	roundedTax := taxSum.Round(0)
	return Totals{
		SubtotalExTax:  roundedNet,
		ConsumptionTax: roundedTax,
		GrandTotal:     roundedNet.Add(roundedTax),
		TaxLabel:       label(inclusiveGross, exclusiveGross),
	}
}

// ComputeSummary computes the headline figure without per-line netting.
// Only valid as a display shortcut; the itemized totals table must use
// ComputeTotals.
func ComputeSummary(items []entity.LineItem) Summary {
	inclusiveGross, exclusiveGross := splitGross(items)
	amount := exclusiveGross.Mul(grossRate).Add(inclusiveGross)
	return Summary{
		Amount:   amount.Round(0),
		TaxLabel: label(inclusiveGross, exclusiveGross),
	}
}

// splitGross accumulates the gross line totals per tax mode.
func splitGross(items []entity.LineItem) (inclusive, exclusive decimal.Decimal) {
	for _, it := range items {
		lineTotal := clampNonNegative(it.Quantity).Mul(clampNonNegative(it.UnitPrice))
		if it.TaxMode == entity.TaxExclusive {
			exclusive = exclusive.Add(lineTotal)
		} else {
			inclusive = inclusive.Add(lineTotal)
		}
	}
	return inclusive, exclusive
}

// label picks the applicable-mode text from the nonzero gross subtotals.
func label(inclusiveGross, exclusiveGross decimal.Decimal) string {
	hasInclusive := inclusiveGross.GreaterThan(decimal.Zero)
	hasExclusive := exclusiveGross.GreaterThan(decimal.Zero)
	switch {
	case hasInclusive && hasExclusive:
		return LabelMixed
	case hasInclusive:
		return LabelInclusive
	case hasExclusive:
		return LabelExclusive
	default:
		return ""
	}
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
