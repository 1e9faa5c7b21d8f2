package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hayashiy/billdoc/internal/domain/layout"
	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

func newExportCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var (
		docType string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export [id-or-number]",
		Short: "Export a stored document to a print-ready A4 PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Export.OutputDir
			}

			vs, err := renderStored(a, docType, args[0])
			if err != nil {
				return err
			}
			if cfg.Layout.AccentColor != "" {
				vs.AccentColorHex = cfg.Layout.AccentColor
			}

			pdfBytes, filename, err := a.exports.Export(cmd.Context(), vs)
			if err != nil {
				return err
			}

			target := filepath.Join(outDir, filename)
			if err := writeFileAtomic(target, pdfBytes); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			fmt.Println("wrote", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&docType, "type", "t", "invoice", "document type: invoice or quotation")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: EXPORT_OUTPUT_DIR)")
	return cmd
}

// renderStored looks a document up by id first, then by number, and renders
// its visual structure.
func renderStored(a *app, docType, key string) (*layout.VisualStructure, error) {
	switch docType {
	case "invoice":
		inv, err := a.store.Invoices().GetByID(key)
		if err != nil {
			return nil, err
		}
		if inv == nil {
			list, err := a.store.Invoices().List()
			if err != nil {
				return nil, err
			}
			for _, candidate := range list {
				if candidate.Number == key {
					inv = candidate
					break
				}
			}
		}
		if inv == nil {
			return nil, fmt.Errorf("invoice %q not found", key)
		}
		return layout.RenderInvoice(inv), nil

	case "quotation":
		q, err := a.store.Quotations().GetByID(key)
		if err != nil {
			return nil, err
		}
		if q == nil {
			list, err := a.store.Quotations().List()
			if err != nil {
				return nil, err
			}
			for _, candidate := range list {
				if candidate.Number == key {
					q = candidate
					break
				}
			}
		}
		if q == nil {
			return nil, fmt.Errorf("quotation %q not found", key)
		}
		return layout.RenderQuotation(q), nil

	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
}

// writeFileAtomic writes data next to target and renames it into place so a
// crashed export never leaves a truncated PDF behind.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".export-*.pdf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}
