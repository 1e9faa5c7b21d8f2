package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

func newListCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored invoices and quotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}

			invoices, err := a.store.Invoices().List()
			if err != nil {
				return err
			}
			quotations, err := a.store.Quotations().List()
			if err != nil {
				return err
			}

			fmt.Printf("Invoices (%d):\n", len(invoices))
			for _, inv := range invoices {
				fmt.Printf("  %s  %-12s  %s  %s\n",
					inv.ID, inv.Number, inv.Date.Format("2006-01-02"), inv.Client.Name)
			}
			fmt.Printf("Quotations (%d):\n", len(quotations))
			for _, q := range quotations {
				fmt.Printf("  %s  %-12s  %s  %s\n",
					q.ID, q.Number, q.Date.Format("2006-01-02"), q.Client.Name)
			}
			return nil
		},
	}
}
