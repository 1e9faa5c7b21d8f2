// Package layout maps a billing document and a Config onto the fixed-size
// A4 visual structure the exporters render. The page never reflows or
// paginates here; the row floor below is the only overflow mitigation.
//
// Structure of the page, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  accent bar                                                  │
//	│  TITLE (centered) + date + document number                   │
//	│  CLIENT (left)                │  ISSUER (right)              │
//	│  AMOUNT SUMMARY │ BANK ACCOUNT  (optional blocks)            │
//	│  note lines (optional)                                       │
//	│  TABLE: Description | Unit Price | Qty | Amount | Tax        │
//	│  TOTALS: subtotal / consumption tax / grand total            │
//	│  FOOTER: free-form note                                      │
//	└─────────────────────────────────────────────────────────────┘
package layout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hayashiy/billdoc/internal/domain/entity"
	"github.com/hayashiy/billdoc/internal/domain/tax"
)

// Page geometry (portrait A4) and the body-table row floor.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	MinBodyRows  = 8
)

// Placeholders for missing optional fields. Rendering never fails on a
// sparse document; gaps become explicit text.
const (
	placeholderPostal  = "000-0000"
	placeholderAddress = "(no address on file)"
	placeholderNote    = "(none)"
)

// Fixed transfer instructions printed under the amount block on invoices.
var invoiceNoteLines = []string{
	"1. Please review the itemized charges and transfer the total to the account below by the due date.",
	"2. Bank transfer fees are to be borne by the customer.",
}

// VisualStructure is the deterministic, viewport-independent description of
// one rendered page. Exporters consume it; nothing in it depends on live
// view state.
type VisualStructure struct {
	PageWidthMM    float64
	PageHeightMM   float64
	AccentColorHex string
	Header         HeaderBlock
	Parties        PartyBlock
	AmountSummary  *AmountSummaryBlock // nil when the config hides it
	BankInfo       *BankInfoBlock      // nil when hidden or the issuer has no account
	NoteLines      []string            // empty when hidden
	Body           BodyTable
	Totals         TotalsBlock
	FooterNote     string
}

// HeaderBlock carries the title line and document identity.
type HeaderBlock struct {
	Title       string
	Date        string
	NumberLabel string
	Number      string
	ValidUntil  string // quotations only; empty otherwise
}

// PartyBlock is the client (left) and issuer (right) identity section.
type PartyBlock struct {
	ClientName    string
	ClientContact string
	ClientPostal  string
	ClientAddress string
	IssuerName    string
	IssuerPostal  string
	IssuerAddress string
	IssuerContact string
	IssuerRegNo   string
}

// AmountSummaryBlock is the headline figure computed by tax.ComputeSummary.
type AmountSummaryBlock struct {
	Label    string
	Amount   decimal.Decimal
	TaxLabel string
}

// BankInfoBlock is the remittance-account box.
type BankInfoBlock struct {
	Label       string
	BankLine    string
	AccountLine string
	HolderLine  string
}

// BodyTable is the itemized table with its fixed column order.
type BodyTable struct {
	Columns [5]string
	Rows    []BodyRow
}

// BodyRow is one rendered table row. Shading alternates by absolute row
// index, not by item identity, so inserting or removing an item shifts the
// colors of every following row. Documented behavior, kept as-is.
type BodyRow struct {
	Cells  [5]string
	Shaded bool
	Empty  bool
}

// TotalsBlock is the itemized totals table (netting algorithm), independent
// of the headline amount summary.
type TotalsBlock struct {
	SubtotalLabel   string
	TaxLabel        string
	GrandTotalLabel string
	Totals          tax.Totals
}

// RenderInvoice renders inv with the invoice defaults, the stored title
// winning over the default one.
func RenderInvoice(inv *entity.Invoice) *VisualStructure {
	cfg := InvoiceConfig()
	if inv.Title != "" {
		cfg.TitleText = inv.Title
	}
	return Render(&inv.BillingDocument, cfg)
}

// RenderQuotation renders q with the quotation defaults.
func RenderQuotation(q *entity.Quotation) *VisualStructure {
	cfg := QuotationConfig()
	if q.Title != "" {
		cfg.TitleText = q.Title
	}
	vs := Render(&q.BillingDocument, cfg)
	if q.ValidUntil != nil {
		vs.Header.ValidUntil = "Valid until: " + q.ValidUntil.Format("2006-01-02")
	}
	return vs
}

// Render builds the visual structure for doc under cfg. It assumes a
// well-formed document; missing optional fields surface as placeholders,
// never as failures.
func Render(doc *entity.BillingDocument, cfg Config) *VisualStructure {
	vs := &VisualStructure{
		PageWidthMM:    PageWidthMM,
		PageHeightMM:   PageHeightMM,
		AccentColorHex: accentOrDefault(cfg.AccentColorHex),
		Header: HeaderBlock{
			Title:       cfg.TitleText,
			Date:        doc.Date.Format("2006-01-02"),
			NumberLabel: cfg.NumberLabel,
			Number:      doc.Number,
		},
		Parties:    renderParties(doc),
		Body:       renderBody(doc.Items),
		Totals:     renderTotals(doc.Items),
		FooterNote: orPlaceholder(doc.Note, placeholderNote),
	}

	if cfg.ShowAmountSummary {
		summary := tax.ComputeSummary(doc.Items)
		vs.AmountSummary = &AmountSummaryBlock{
			Label:    cfg.TotalLabelText,
			Amount:   summary.Amount,
			TaxLabel: summary.TaxLabel,
		}
	}
	if cfg.ShowBankInfo && doc.Issuer.Bank != nil {
		vs.BankInfo = renderBankInfo(doc.Issuer.Bank)
	}
	if cfg.ShowNoteLines {
		vs.NoteLines = append([]string(nil), invoiceNoteLines...)
	}
	return vs
}

func renderParties(doc *entity.BillingDocument) PartyBlock {
	p := PartyBlock{
		ClientName:    doc.Client.Name,
		ClientPostal:  orPlaceholder(doc.Client.PostalCode, placeholderPostal),
		ClientAddress: orPlaceholder(doc.Client.Address, placeholderAddress),
		IssuerName:    doc.Issuer.Name,
		IssuerPostal:  doc.Issuer.PostalCode,
		IssuerAddress: doc.Issuer.Address,
	}
	if doc.Client.ContactName != "" {
		p.ClientContact = "Attn: " + doc.Client.ContactName
	}
	var contact []string
	if doc.Issuer.Phone != "" {
		contact = append(contact, "Tel: "+doc.Issuer.Phone)
	}
	if doc.Issuer.Fax != "" {
		contact = append(contact, "Fax: "+doc.Issuer.Fax)
	}
	p.IssuerContact = strings.Join(contact, " / ")
	if doc.Issuer.RegistrationNumber != "" {
		p.IssuerRegNo = "Reg. No. " + doc.Issuer.RegistrationNumber
	}
	return p
}

func renderBody(items []entity.LineItem) BodyTable {
	table := BodyTable{
		Columns: [5]string{"Description", "Unit Price", "Qty", "Amount", "Tax"},
	}
	for i, it := range items {
		table.Rows = append(table.Rows, BodyRow{
			Cells: [5]string{
				it.Description,
				FormatNumber(it.UnitPrice),
				FormatNumber(it.Quantity),
				FormatNumber(it.Amount()),
				taxModeText(it.TaxMode),
			},
			Shaded: i%2 == 0,
		})
	}
	// Pad up to the row floor. Padding rows keep the alternating shading of
	// their absolute index so the zebra pattern stays continuous.
	for i := len(items); i < MinBodyRows; i++ {
		table.Rows = append(table.Rows, BodyRow{Shaded: i%2 == 0, Empty: true})
	}
	return table
}

func renderTotals(items []entity.LineItem) TotalsBlock {
	return TotalsBlock{
		SubtotalLabel:   "Subtotal (ex. tax)",
		TaxLabel:        "Consumption tax",
		GrandTotalLabel: "Total",
		Totals:          tax.ComputeTotals(items),
	}
}

func renderBankInfo(b *entity.BankAccount) *BankInfoBlock {
	return &BankInfoBlock{
		Label:       "Remittance Account",
		BankLine:    strings.TrimSpace(b.BankName + " " + b.BranchName),
		AccountLine: "(" + accountTypeText(b.AccountType) + ") " + b.AccountNumber,
		HolderLine:  b.AccountHolder,
	}
}

func taxModeText(m entity.TaxMode) string {
	if m == entity.TaxExclusive {
		return "excl."
	}
	return "incl."
}

func accountTypeText(t string) string {
	if t == entity.AccountChecking {
		return "Checking"
	}
	return "Ordinary"
}

func accentOrDefault(hex string) string {
	if hex == "" {
		return DefaultAccentColor
	}
	return hex
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// FormatNumber renders a decimal with thousands separators, keeping any
// fractional digits. "1000000" → "1,000,000".
func FormatNumber(d decimal.Decimal) string {
	s := d.String()
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, intPart[i])
		}
		intPart = string(buf)
	}
	if neg {
		intPart = "-" + intPart
	}
	return intPart + frac
}
