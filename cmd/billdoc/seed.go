package main

import (
	"github.com/spf13/cobra"

	"github.com/hayashiy/billdoc/internal/infrastructure/localstore"
	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

func newSeedCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty store with a default issuer and sample clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			if err := localstore.SeedIfEmpty(a.store); err != nil {
				return err
			}
			log.Info().Str("path", cfg.Store.Path).Msg("store seeded")
			return nil
		},
	}
}
