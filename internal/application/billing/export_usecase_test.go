package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayashiy/billdoc/internal/application/billing"
	"github.com/hayashiy/billdoc/internal/domain"
	"github.com/hayashiy/billdoc/internal/domain/layout"
	"github.com/hayashiy/billdoc/pkg/logger"
)

type fakeExporter struct {
	pdf   []byte
	err   error
	calls int
}

func (f *fakeExporter) Export(_ context.Context, _ *layout.VisualStructure) ([]byte, error) {
	f.calls++
	return f.pdf, f.err
}

func structureWithNumber(number string) *layout.VisualStructure {
	return &layout.VisualStructure{Header: layout.HeaderBlock{Number: number}}
}

func TestExportUseCase_Export(t *testing.T) {
	exp := &fakeExporter{pdf: []byte("%PDF-1.4 fake")}
	uc := billing.NewExportUseCase(exp, logger.Nop())

	pdf, filename, err := uc.Export(context.Background(), structureWithNumber("INV-0042"))
	require.NoError(t, err)
	assert.Equal(t, exp.pdf, pdf)
	assert.Equal(t, "INV-0042.pdf", filename)
	assert.Equal(t, 1, exp.calls)
}

func TestExportUseCase_ExportFailure(t *testing.T) {
	exp := &fakeExporter{err: errors.New("surface gone")}
	uc := billing.NewExportUseCase(exp, logger.Nop())

	pdf, filename, err := uc.Export(context.Background(), structureWithNumber("INV-1"))
	assert.ErrorIs(t, err, domain.ErrExportFailed)
	assert.Nil(t, pdf)
	assert.Empty(t, filename)
}

func TestExportUseCase_ExportAsyncDeliversOneResult(t *testing.T) {
	exp := &fakeExporter{pdf: []byte("%PDF")}
	uc := billing.NewExportUseCase(exp, logger.Nop())

	ch := uc.ExportAsync(context.Background(), structureWithNumber("Q-7"))

	select {
	case res := <-ch:
		require.NoError(t, res.Err)
		assert.Equal(t, "Q-7.pdf", res.Filename)
		assert.Equal(t, exp.pdf, res.PDF)
	case <-time.After(5 * time.Second):
		t.Fatal("no result delivered")
	}

	// The channel closes after the single result.
	_, open := <-ch
	assert.False(t, open)
}

func TestExportUseCase_ExportAsyncPropagatesError(t *testing.T) {
	exp := &fakeExporter{err: errors.New("boom")}
	uc := billing.NewExportUseCase(exp, logger.Nop())

	res := <-uc.ExportAsync(context.Background(), structureWithNumber(""))
	assert.ErrorIs(t, res.Err, domain.ErrExportFailed)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "INV-0001.pdf", billing.Filename("INV-0001"))
	assert.Equal(t, "document.pdf", billing.Filename(""))
}
