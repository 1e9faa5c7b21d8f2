// Package pdf implements the two PDF export strategies behind the
// billing.DocumentExporter port.
//
// MarotoExporter (canonical) emits the document as a structured vector page
// description with explicit column widths: text stays selectable and item
// counts beyond one page flow onto additional pages. RasterExporter
// (fallback) captures a live visual surface as a bitmap and embeds it as one
// full-page image for style-perfect fidelity.
//
// Both strategies produce the same geometry for a given visual structure
// regardless of any zoom or window state the user was viewing at.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hayashiy/billdoc/internal/domain/layout"
)

// ── color palette ─────────────────────────────────────────────────────────────

var (
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRowShade = &props.Color{Red: 243, Green: 243, Blue: 243}
)

// ── exporter ──────────────────────────────────────────────────────────────────

// MarotoExporter implements billing.DocumentExporter using Maroto v2.
type MarotoExporter struct{}

// NewMarotoExporter builds the vector exporter.
func NewMarotoExporter() *MarotoExporter { return &MarotoExporter{} }

// Export renders vs as a portrait A4 vector PDF and returns its bytes.
func (e *MarotoExporter) Export(_ context.Context, vs *layout.VisualStructure) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(vs.Header.Title, true).
		Build()

	m := maroto.New(cfg)
	accent := parseHexColor(vs.AccentColorHex)

	// Accent bar + title block
	m.AddRows(accentBarRow(accent))
	m.AddRows(headerRows(&vs.Header, accent)...)

	// Parties
	m.AddRows(partyRow(&vs.Parties, accent))
	m.AddRows(line.NewRow(2, props.Line{Color: accent, Thickness: 0.5}))

	// Amount summary and bank account, side by side when both are present
	if r, ok := amountRow(vs, accent); ok {
		m.AddRows(r)
	}
	for _, r := range noteLineRows(vs.NoteLines) {
		m.AddRows(r)
	}

	// Itemized table
	m.AddRows(tableHeaderRow(&vs.Body, accent))
	for _, r := range bodyRows(&vs.Body) {
		m.AddRows(r)
	}

	// Totals
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.3}))
	m.AddRows(totalsRow(&vs.Totals, accent))

	// Footer note
	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow(vs.FooterNote, accent))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── sections ──────────────────────────────────────────────────────────────────

func accentBarRow(accent *props.Color) core.Row {
	return row.New(3).WithStyle(&props.Cell{BackgroundColor: accent})
}

// headerRows: centered title, issue date and document number.
func headerRows(h *layout.HeaderBlock, accent *props.Color) []core.Row {
	rows := []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New(h.Title, props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center,
				Color: accent, Top: 2,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(h.Date, props.Text{Size: 9, Align: align.Center, Color: colorGray}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(h.NumberLabel+" "+h.Number, props.Text{Size: 9, Align: align.Center}),
		)),
	}
	if h.ValidUntil != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(h.ValidUntil, props.Text{Size: 8, Align: align.Center, Color: colorGray}),
		)))
	}
	return rows
}

// partyRow: client block (left) and issuer block (right).
func partyRow(p *layout.PartyBlock, accent *props.Color) core.Row {
	left := col.New(6).Add(
		text.New(p.ClientName, props.Text{Style: fontstyle.Bold, Size: 12, Top: 2, Color: accent}),
		text.New(p.ClientContact, props.Text{Size: 8, Top: 9}),
		text.New(p.ClientPostal, props.Text{Size: 8, Top: 14, Color: colorGray}),
		text.New(p.ClientAddress, props.Text{Size: 8, Top: 19, Color: colorGray}),
	)
	right := col.New(6).Add(
		text.New(p.IssuerPostal, props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
		text.New(p.IssuerAddress, props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
		text.New(p.IssuerName, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 12}),
		text.New(p.IssuerContact, props.Text{Size: 8, Align: align.Right, Top: 19, Color: colorGray}),
		text.New(p.IssuerRegNo, props.Text{Size: 8, Align: align.Right, Top: 24, Color: colorGray}),
	)
	return row.New(30).Add(left, right)
}

// amountRow: headline amount summary (left) and remittance account (right).
// Either block can be hidden; with both hidden the row disappears entirely.
func amountRow(vs *layout.VisualStructure, accent *props.Color) (core.Row, bool) {
	summary := vs.AmountSummary
	bank := vs.BankInfo
	if summary == nil && bank == nil {
		return nil, false
	}

	cols := make([]core.Col, 0, 2)
	if summary != nil {
		cols = append(cols, col.New(6).WithStyle(&props.Cell{
			BorderColor: accent, BorderType: border.Full, BorderThickness: 0.5,
		}).Add(
			text.New(summary.Label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Left: 2, Color: accent,
			}),
			text.New("¥"+layout.FormatNumber(summary.Amount), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right, Top: 6, Right: 3,
			}),
			text.New("("+summary.TaxLabel+")", props.Text{
				Size: 7, Align: align.Right, Top: 14, Right: 3, Color: colorGray,
			}),
		))
	}
	if bank != nil {
		width := 6
		if summary == nil {
			width = 12
		}
		cols = append(cols, col.New(width).WithStyle(&props.Cell{
			BorderColor: accent, BorderType: border.Full, BorderThickness: 0.5,
		}).Add(
			text.New(bank.Label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2, Left: 2, Color: accent,
			}),
			text.New(bank.BankLine, props.Text{Size: 8, Top: 7, Left: 2}),
			text.New(bank.AccountLine, props.Text{Size: 8, Top: 11, Left: 2}),
			text.New(bank.HolderLine, props.Text{Size: 8, Top: 15, Left: 2}),
		))
	}
	if len(cols) == 1 && summary != nil {
		cols = append(cols, col.New(6))
	}
	return row.New(20).Add(cols...), true
}

// noteLineRows: fixed transfer instructions in small gray type.
func noteLineRows(lines []string) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 7, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// Column grid (12-unit): description 6, unit price 2, qty 1, amount 2, tax 1.
var columnWidths = [5]int{6, 2, 1, 2, 1}

var columnAligns = [5]align.Type{
	align.Left, align.Right, align.Center, align.Right, align.Center,
}

// tableHeaderRow: accent-filled header repeated from the body columns.
func tableHeaderRow(body *layout.BodyTable, accent *props.Color) core.Row {
	cols := make([]core.Col, 0, len(body.Columns))
	for i, label := range body.Columns {
		cols = append(cols, col.New(columnWidths[i]).WithStyle(&props.Cell{
			BackgroundColor: accent,
		}).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: columnAligns[i],
				Color: colorWhite, Top: 2, Left: 1, Right: 1,
			}),
		))
	}
	return row.New(8).Add(cols...)
}

// bodyRows: one row per layout row, zebra shading included. Padding rows
// render with their cells blank but keep the shading of their index.
func bodyRows(body *layout.BodyTable) []core.Row {
	result := make([]core.Row, 0, len(body.Rows))
	for _, r := range body.Rows {
		cols := make([]core.Col, 0, len(r.Cells))
		for i, cell := range r.Cells {
			cols = append(cols, col.New(columnWidths[i]).Add(
				text.New(cell, props.Text{
					Size: 8, Align: columnAligns[i], Top: 1.5, Left: 1, Right: 1,
				}),
			))
		}
		mr := row.New(7).Add(cols...)
		if r.Shaded {
			mr = mr.WithStyle(&props.Cell{BackgroundColor: colorRowShade})
		}
		result = append(result, mr)
	}
	return result
}

// totalsRow: the itemized totals table, right-aligned.
func totalsRow(t *layout.TotalsBlock, accent *props.Color) core.Row {
	labels := col.New(3).Add(
		text.New(t.SubtotalLabel, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}),
		text.New(t.TaxLabel, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 5, Right: 2}),
		text.New(t.GrandTotalLabel, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: accent, Top: 10, Right: 2,
		}),
	)
	values := col.New(3).Add(
		text.New(layout.FormatNumber(t.Totals.SubtotalExTax), props.Text{Size: 9, Align: align.Right, Right: 1}),
		text.New(layout.FormatNumber(t.Totals.ConsumptionTax), props.Text{Size: 9, Align: align.Right, Top: 5, Right: 1}),
		text.New(layout.FormatNumber(t.Totals.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: accent, Top: 10, Right: 1,
		}),
	)
	return row.New(17).Add(col.New(6), labels, values)
}

// footerRow: free-form note in a bordered box.
func footerRow(note string, accent *props.Color) core.Row {
	return row.New(16).WithStyle(&props.Cell{
		BorderColor: accent, BorderType: border.Full, BorderThickness: 0.3,
	}).Add(col.New(12).Add(
		text.New(note, props.Text{Size: 8, Top: 2, Left: 2, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// parseHexColor converts "#RRGGBB" to a maroto color. Malformed input falls
// back to near-black rather than failing the export.
func parseHexColor(hex string) *props.Color {
	if len(hex) == 7 && hex[0] == '#' {
		r, errR := strconv.ParseUint(hex[1:3], 16, 8)
		g, errG := strconv.ParseUint(hex[3:5], 16, 8)
		b, errB := strconv.ParseUint(hex[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
		}
	}
	return &props.Color{Red: 30, Green: 30, Blue: 30}
}
