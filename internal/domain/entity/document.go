package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingDocument is the shape shared by invoices and quotations: identity,
// the two parties, the item rows and a free-form note. Totals are never stored
// on the document; they are recomputed from Items on every read so they can
// never go stale.
type BillingDocument struct {
	ID     string     `json:"id"`
	Number string     `json:"number"`
	Date   time.Time  `json:"date"`
	Issuer PartyInfo  `json:"issuer"`
	Client PartyInfo  `json:"client"`
	Items  []LineItem `json:"items"`
	Note   string     `json:"note,omitempty"`
}

// Invoice is a billing document with an invoice title.
type Invoice struct {
	BillingDocument
	Title string `json:"title,omitempty"`
}

// Quotation is a billing document with a quotation title and an optional
// validity date.
type Quotation struct {
	BillingDocument
	Title      string     `json:"title,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
}

// DefaultInvoiceNote is printed on a fresh invoice draft.
const DefaultInvoiceNote = "Bank transfer fees are to be borne by the customer."

func newBaseDocument(issuer, client PartyInfo) BillingDocument {
	return BillingDocument{
		ID:     uuid.New().String(),
		Date:   time.Now(),
		Issuer: issuer,
		Client: client,
		Items:  []LineItem{NewBlankLineItem()},
	}
}

// NewInvoice creates a draft invoice with a generated id and a single blank
// line item. Number stays empty until the user assigns one.
func NewInvoice(issuer, client PartyInfo) *Invoice {
	base := newBaseDocument(issuer, client)
	base.Note = DefaultInvoiceNote
	return &Invoice{BillingDocument: base, Title: "INVOICE"}
}

// NewQuotation creates a draft quotation with a generated id and a single
// blank line item.
func NewQuotation(issuer, client PartyInfo) *Quotation {
	return &Quotation{BillingDocument: newBaseDocument(issuer, client), Title: "QUOTATION"}
}
