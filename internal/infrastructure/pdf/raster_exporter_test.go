package pdf_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayashiy/billdoc/internal/domain/layout"
	"github.com/hayashiy/billdoc/internal/infrastructure/pdf"
)

// fakeSurface records the export-mode lifecycle so tests can assert the
// acquire/release discipline.
type fakeSurface struct {
	img          image.Image
	beginErr     error
	captureErr   error
	beginCalls   int
	endCalls     int
	captureScale int
}

func (s *fakeSurface) BeginExport() error {
	s.beginCalls++
	return s.beginErr
}

func (s *fakeSurface) EndExport() { s.endCalls++ }

func (s *fakeSurface) Capture(scale int) (image.Image, error) {
	s.captureScale = scale
	if s.captureErr != nil {
		return nil, s.captureErr
	}
	return s.img, nil
}

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func a4Structure() *layout.VisualStructure {
	return &layout.VisualStructure{PageWidthMM: 210, PageHeightMM: 297}
}

func TestRasterExport_ProducesPDF(t *testing.T) {
	surface := &fakeSurface{img: solidImage(420, 594)}
	exp := pdf.NewRasterExporter(surface, 4)

	out, err := exp.Export(context.Background(), a4Structure())

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "output must be a PDF stream")
}

// TestRasterExport_PageSizeIndependentOfCapture: whatever the surface bitmap
// measures, the output page is always the exact A4 media box.
func TestRasterExport_PageSizeIndependentOfCapture(t *testing.T) {
	for _, dims := range [][2]int{{420, 594}, {1000, 2000}, {3000, 1000}} {
		surface := &fakeSurface{img: solidImage(dims[0], dims[1])}
		exp := pdf.NewRasterExporter(surface, 4)

		out, err := exp.Export(context.Background(), a4Structure())

		require.NoError(t, err, "capture %dx%d", dims[0], dims[1])
		assertA4MediaBox(t, out)
	}
}

func TestRasterExport_CleanupRunsOnSuccess(t *testing.T) {
	surface := &fakeSurface{img: solidImage(100, 141)}
	exp := pdf.NewRasterExporter(surface, 4)

	_, err := exp.Export(context.Background(), a4Structure())

	require.NoError(t, err)
	assert.Equal(t, 1, surface.beginCalls)
	assert.Equal(t, 1, surface.endCalls, "export mode must be released")
}

// TestRasterExport_CleanupRunsOnCaptureError: temporary style mutations are
// rolled back even when the capture fails mid-flight.
func TestRasterExport_CleanupRunsOnCaptureError(t *testing.T) {
	surface := &fakeSurface{captureErr: errors.New("canvas detached")}
	exp := pdf.NewRasterExporter(surface, 4)

	_, err := exp.Export(context.Background(), a4Structure())

	require.Error(t, err)
	assert.Equal(t, 1, surface.endCalls, "EndExport must run despite the capture failure")
}

func TestRasterExport_NoCleanupWithoutAcquire(t *testing.T) {
	surface := &fakeSurface{beginErr: errors.New("surface busy")}
	exp := pdf.NewRasterExporter(surface, 4)

	_, err := exp.Export(context.Background(), a4Structure())

	require.Error(t, err)
	assert.Equal(t, 1, surface.beginCalls)
	assert.Equal(t, 0, surface.endCalls, "EndExport must not run when export mode was never entered")
}

func TestRasterExport_ScaleFloorIsEnforced(t *testing.T) {
	surface := &fakeSurface{img: solidImage(10, 10)}
	exp := pdf.NewRasterExporter(surface, 1)

	_, err := exp.Export(context.Background(), a4Structure())

	require.NoError(t, err)
	assert.Equal(t, pdf.DefaultCaptureScale, surface.captureScale,
		"captures below the 4x multiplier floor are bumped up")
}

// ── fit math ──────────────────────────────────────────────────────────────────

func TestFitToPage_FitsByWidthForPageShapedBitmaps(t *testing.T) {
	// Same aspect ratio as A4: fills the page exactly, no offset.
	w, h, x := pdf.FitToPage(2100, 2970, 210, 297)

	assert.InDelta(t, 210.0, w, 0.01)
	assert.InDelta(t, 297.0, h, 0.01)
	assert.InDelta(t, 0.0, x, 0.01)
}

func TestFitToPage_FitsByHeightForTallBitmaps(t *testing.T) {
	// Twice as tall as wide: width-fit would need 420mm of height, so the
	// fit flips to height and the image centers horizontally.
	w, h, x := pdf.FitToPage(1000, 2000, 210, 297)

	assert.InDelta(t, 297.0, h, 0.01)
	assert.InDelta(t, 148.5, w, 0.01)
	assert.InDelta(t, (210.0-148.5)/2, x, 0.01)
}

func TestFitToPage_WideBitmapsStayWidthBound(t *testing.T) {
	w, h, x := pdf.FitToPage(3000, 1000, 210, 297)

	assert.InDelta(t, 210.0, w, 0.01)
	assert.InDelta(t, 70.0, h, 0.01)
	assert.InDelta(t, 0.0, x, 0.01)
}

func TestFitToPage_DegenerateBitmapFillsPage(t *testing.T) {
	w, h, x := pdf.FitToPage(0, 0, 210, 297)

	assert.Equal(t, 210.0, w)
	assert.Equal(t, 297.0, h)
	assert.Equal(t, 0.0, x)
}
