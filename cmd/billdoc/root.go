package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hayashiy/billdoc/internal/application/billing"
	"github.com/hayashiy/billdoc/internal/infrastructure/localstore"
	"github.com/hayashiy/billdoc/internal/infrastructure/pdf"
	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

var version = "1.0.0"

// app bundles the wired dependencies shared by all subcommands.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	store     *localstore.Store
	documents *billing.DocumentUseCase
	exports   *billing.ExportUseCase
}

func newApp(cfg *config.Config, log *logger.Logger) (*app, error) {
	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	documents := billing.NewDocumentUseCase(
		store.Invoices(), store.Quotations(), store.Issuers(), store.Clients(), log)

	// The CLI has no drawing surface, so the raster strategy always falls
	// back to vector here.
	exports := billing.NewExportUseCase(newExporter(cfg, log, nil), log)

	return &app{
		cfg:       cfg,
		log:       log,
		store:     store,
		documents: documents,
		exports:   exports,
	}, nil
}

// newExporter picks the export strategy. The raster strategy needs a live
// drawing surface supplied by an embedding application; without one the
// vector path wins regardless of the configured strategy.
func newExporter(cfg *config.Config, log *logger.Logger, surface pdf.Surface) billing.DocumentExporter {
	if cfg.Export.Strategy == "raster" {
		if surface != nil {
			return pdf.NewRasterExporter(surface, cfg.Export.RasterScale)
		}
		log.Warn().Msg("raster export needs a capture surface, using vector")
	}
	return pdf.NewMarotoExporter()
}

func newRootCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:     "billdoc",
		Short:   "Create, manage and export invoices and quotations as PDF",
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("billdoc: invoice and quotation PDF generator")
			fmt.Println("Use --help to see available commands.")
		},
	}

	root.AddCommand(newSeedCmd(cfg, log))
	root.AddCommand(newNewCmd(cfg, log))
	root.AddCommand(newListCmd(cfg, log))
	root.AddCommand(newExportCmd(cfg, log))
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(cfg *config.Config, log *logger.Logger) {
	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
