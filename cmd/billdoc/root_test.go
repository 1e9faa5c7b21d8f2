package main

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayashiy/billdoc/internal/domain/layout"
	"github.com/hayashiy/billdoc/internal/infrastructure/pdf"
	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

// stubSurface records the capture scale it was asked for.
type stubSurface struct {
	scale int
}

func (s *stubSurface) BeginExport() error { return nil }
func (s *stubSurface) EndExport()         {}
func (s *stubSurface) Capture(scale int) (image.Image, error) {
	s.scale = scale
	return image.NewRGBA(image.Rect(0, 0, 100, 141)), nil
}

func TestNewExporter_VectorByDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.Export.Strategy = "vector"

	exp := newExporter(cfg, logger.Nop(), nil)

	assert.IsType(t, &pdf.MarotoExporter{}, exp)
}

func TestNewExporter_RasterWithoutSurfaceFallsBackToVector(t *testing.T) {
	cfg := &config.Config{}
	cfg.Export.Strategy = "raster"
	cfg.Export.RasterScale = 6

	exp := newExporter(cfg, logger.Nop(), nil)

	assert.IsType(t, &pdf.MarotoExporter{}, exp)
}

// TestNewExporter_RasterUsesConfiguredScale: with a surface wired in, the
// raster strategy is selected and the configured capture scale reaches it.
func TestNewExporter_RasterUsesConfiguredScale(t *testing.T) {
	cfg := &config.Config{}
	cfg.Export.Strategy = "raster"
	cfg.Export.RasterScale = 6
	surface := &stubSurface{}

	exp := newExporter(cfg, logger.Nop(), surface)
	require.IsType(t, &pdf.RasterExporter{}, exp)

	_, err := exp.Export(context.Background(),
		&layout.VisualStructure{PageWidthMM: 210, PageHeightMM: 297})

	require.NoError(t, err)
	assert.Equal(t, 6, surface.scale, "the configured capture scale must reach the surface")
}
