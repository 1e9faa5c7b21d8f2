package billing

import (
	"context"

	"github.com/hayashiy/billdoc/internal/domain/layout"
)

// DocumentExporter turns a rendered visual structure into PDF bytes.
// Implementations must be deterministic for a given structure: the output
// may not depend on any live viewport state. Two strategies exist behind
// this port: the vector page-description exporter (canonical) and the
// raster surface-capture exporter (fidelity fallback).
type DocumentExporter interface {
	Export(ctx context.Context, vs *layout.VisualStructure) ([]byte, error)
}
