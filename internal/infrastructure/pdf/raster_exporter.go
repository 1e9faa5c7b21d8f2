package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/hayashiy/billdoc/internal/domain/layout"
)

// DefaultCaptureScale is the minimum resolution multiplier for sharp output.
const DefaultCaptureScale = 4

// Surface is a live visual rendering of a document that can be captured as a
// bitmap. BeginExport puts the surface into export mode (scale forced to 1:1,
// export-mode marker applied); EndExport reverts every temporary mutation and
// must be safe to call after a failed Begin or Capture. The exporter calls
// EndExport in a deferred step, so the surface is never left dangling even
// when the capture or the encoding fails mid-flight.
type Surface interface {
	BeginExport() error
	EndExport()
	Capture(scale int) (image.Image, error)
}

// RasterExporter implements billing.DocumentExporter by photographing a
// Surface and embedding the bitmap as one full-page image. Each exporter
// owns its private surface snapshot; no surface is shared across exports.
type RasterExporter struct {
	surface Surface
	scale   int
}

// NewRasterExporter builds the raster exporter around a surface. A scale
// below the default is bumped up to it.
func NewRasterExporter(surface Surface, scale int) *RasterExporter {
	if scale < DefaultCaptureScale {
		scale = DefaultCaptureScale
	}
	return &RasterExporter{surface: surface, scale: scale}
}

// Export captures the surface and fits the bitmap into a portrait A4 page:
// by width unless the resulting height would exceed the page, by height
// otherwise, horizontally centered. The page size comes from the visual
// structure, never from the surface's on-screen state.
func (e *RasterExporter) Export(_ context.Context, vs *layout.VisualStructure) ([]byte, error) {
	if err := e.surface.BeginExport(); err != nil {
		return nil, fmt.Errorf("pdf: enter export mode: %w", err)
	}
	defer e.surface.EndExport()

	img, err := e.surface.Capture(e.scale)
	if err != nil {
		return nil, fmt.Errorf("pdf: capture surface: %w", err)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("pdf: encode capture: %w", err)
	}

	bounds := img.Bounds()
	w, h, x := FitToPage(bounds.Dx(), bounds.Dy(), vs.PageWidthMM, vs.PageHeightMM)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("surface", opts, &encoded)
	doc.ImageOptions("surface", x, 0, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("pdf: write document: %w", err)
	}
	return out.Bytes(), nil
}

// FitToPage scales a bitmap of widthPx × heightPx into a pageW × pageH page
// (mm). Fit by width; if the implied height overflows the page, fit by height
// instead. Returns the placed width, height and the centering x offset.
func FitToPage(widthPx, heightPx int, pageW, pageH float64) (w, h, x float64) {
	if widthPx <= 0 || heightPx <= 0 {
		return pageW, pageH, 0
	}
	ratio := float64(widthPx) / float64(heightPx)

	w = pageW
	h = pageW / ratio
	if h > pageH {
		h = pageH
		w = pageH * ratio
	}
	x = (pageW - w) / 2
	return w, h, x
}
