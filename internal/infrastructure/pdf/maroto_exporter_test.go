package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayashiy/billdoc/internal/domain/entity"
	"github.com/hayashiy/billdoc/internal/domain/layout"
	"github.com/hayashiy/billdoc/internal/infrastructure/pdf"
)

func sampleStructure(itemCount int) *layout.VisualStructure {
	doc := &entity.BillingDocument{
		ID:     "doc-1",
		Number: "INV-2025-001",
		Date:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Issuer: entity.PartyInfo{
			Name:       "ABC Co., Ltd.",
			PostalCode: "123-4567",
			Address:    "2-8-1 Nishi-Shinjuku, Shinjuku-ku, Tokyo",
			Phone:      "03-1234-5678",
			Bank: &entity.BankAccount{
				BankName:      "Mitsubishi UFJ Bank",
				BranchName:    "Shinjuku Branch",
				AccountType:   entity.AccountOrdinary,
				AccountNumber: "1234567",
				AccountHolder: "ABC Co., Ltd.",
			},
		},
		Client: entity.PartyInfo{Name: "Client A Co., Ltd."},
		Note:   "Thank you for your business.",
	}
	for i := 0; i < itemCount; i++ {
		doc.Items = append(doc.Items, entity.LineItem{
			ID:          "item",
			Description: "Service",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(1000),
			TaxMode:     entity.TaxExclusive,
		})
	}
	return layout.Render(doc, layout.InvoiceConfig())
}

// a4MediaBox is the portrait A4 page box in PDF points (210×297mm at 72dpi).
var a4MediaBox = []byte("/MediaBox [0 0 595.28 841.89]")

func assertA4MediaBox(t *testing.T, out []byte) {
	t.Helper()
	assert.True(t, bytes.Contains(out, a4MediaBox),
		"every page must declare the exact A4 media box")
}

func TestMarotoExport_ProducesPDF(t *testing.T) {
	exp := pdf.NewMarotoExporter()

	out, err := exp.Export(context.Background(), sampleStructure(3))

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestMarotoExport_HandlesEmptyDocument(t *testing.T) {
	exp := pdf.NewMarotoExporter()

	out, err := exp.Export(context.Background(), sampleStructure(0))

	require.NoError(t, err)
	assert.NotEmpty(t, out, "row-floor padding alone still renders a full page")
}

// TestMarotoExport_LargeItemCount: the vector strategy flows rows past the
// fixed page rather than truncating them.
func TestMarotoExport_LargeItemCount(t *testing.T) {
	exp := pdf.NewMarotoExporter()

	out, err := exp.Export(context.Background(), sampleStructure(60))

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// TestMarotoExport_PageSizeIndependentOfItemCount: the page geometry is a
// constant of the document format. Empty, short and multi-page item counts
// all emit the same exact A4 media box.
func TestMarotoExport_PageSizeIndependentOfItemCount(t *testing.T) {
	exp := pdf.NewMarotoExporter()

	for _, count := range []int{0, 3, 60} {
		out, err := exp.Export(context.Background(), sampleStructure(count))

		require.NoError(t, err, "item count %d", count)
		assertA4MediaBox(t, out)
	}
}

func TestMarotoExport_QuotationStructure(t *testing.T) {
	valid := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	q := &entity.Quotation{ValidUntil: &valid}
	q.Number = "QUO-2025-001"
	q.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	q.Issuer = entity.PartyInfo{Name: "ABC Co., Ltd."}
	q.Client = entity.PartyInfo{Name: "Client A Co., Ltd."}
	q.Items = []entity.LineItem{{
		ID:        "item",
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(5000),
		TaxMode:   entity.TaxInclusive,
	}}

	exp := pdf.NewMarotoExporter()
	out, err := exp.Export(context.Background(), layout.RenderQuotation(q))

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
