package layout

// DefaultAccentColor is the green used by the stock document theme.
const DefaultAccentColor = "#00B050"

// Config carries the branding and visibility switches the surrounding
// application hands to Render. All fields have sensible invoice defaults;
// a quotation suppresses the bank-account and note-line blocks by convention.
type Config struct {
	AccentColorHex    string
	TitleText         string
	NumberLabel       string
	TotalLabelText    string
	ShowAmountSummary bool
	ShowBankInfo      bool
	ShowNoteLines     bool
}

// InvoiceConfig returns the invoice defaults: every block visible.
func InvoiceConfig() Config {
	return Config{
		AccentColorHex:    DefaultAccentColor,
		TitleText:         "INVOICE",
		NumberLabel:       "Invoice No.",
		TotalLabelText:    "Total Due",
		ShowAmountSummary: true,
		ShowBankInfo:      true,
		ShowNoteLines:     true,
	}
}

// QuotationConfig returns the quotation defaults: no bank account, no
// transfer-instruction note lines.
func QuotationConfig() Config {
	return Config{
		AccentColorHex:    DefaultAccentColor,
		TitleText:         "QUOTATION",
		NumberLabel:       "Quotation No.",
		TotalLabelText:    "Quotation Total",
		ShowAmountSummary: true,
		ShowBankInfo:      false,
		ShowNoteLines:     false,
	}
}
