package billing

import (
	"context"
	"fmt"

	"github.com/hayashiy/billdoc/internal/domain"
	"github.com/hayashiy/billdoc/internal/domain/layout"
	"github.com/hayashiy/billdoc/pkg/logger"
)

// ExportUseCase produces the downloadable PDF for a rendered document.
// The export is the only long-running operation in the system; ExportAsync
// runs it off the caller's goroutine so the interface stays responsive.
type ExportUseCase struct {
	exporter DocumentExporter
	log      *logger.Logger
}

// NewExportUseCase builds the use case with the chosen exporter strategy.
func NewExportUseCase(exporter DocumentExporter, log *logger.Logger) *ExportUseCase {
	return &ExportUseCase{exporter: exporter, log: log}
}

// ExportResult is delivered on the channel returned by ExportAsync.
type ExportResult struct {
	PDF      []byte
	Filename string
	Err      error
}

// Export renders vs to PDF bytes and computes the download filename from the
// document number: "<number>.pdf", falling back to "document.pdf" when the
// number is still blank. Failures come back as a recoverable error; no
// partial output is ever handed to the caller.
func (uc *ExportUseCase) Export(ctx context.Context, vs *layout.VisualStructure) (pdf []byte, filename string, err error) {
	pdf, err = uc.exporter.Export(ctx, vs)
	if err != nil {
		uc.log.Error().Err(err).Str("number", vs.Header.Number).Msg("pdf export failed")
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	filename = Filename(vs.Header.Number)
	uc.log.Info().
		Str("filename", filename).
		Int("bytes", len(pdf)).
		Msg("pdf export finished")
	return pdf, filename, nil
}

// ExportAsync runs Export on its own goroutine and delivers exactly one
// ExportResult on the returned channel. The channel is buffered, so the
// result never blocks even if the caller walked away; any style mutations an
// exporter made on a live surface are rolled back by the exporter itself
// before the result is sent.
func (uc *ExportUseCase) ExportAsync(ctx context.Context, vs *layout.VisualStructure) <-chan ExportResult {
	out := make(chan ExportResult, 1)
	go func() {
		defer close(out)
		pdf, filename, err := uc.Export(ctx, vs)
		out <- ExportResult{PDF: pdf, Filename: filename, Err: err}
	}()
	return out
}

// Filename derives the download name from a document number.
func Filename(number string) string {
	if number == "" {
		return "document.pdf"
	}
	return number + ".pdf"
}
