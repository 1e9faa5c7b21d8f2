package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

func newNewCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	var (
		docType  string
		issuerID string
		clientID string
		number   string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create and save a draft document for a stored issuer and client",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}

			var id string
			switch docType {
			case "invoice":
				inv, err := a.documents.NewInvoiceDraft(issuerID, clientID)
				if err != nil {
					return err
				}
				inv.Number = number
				if err := a.documents.SaveInvoice(inv); err != nil {
					return err
				}
				id = inv.ID
			case "quotation":
				q, err := a.documents.NewQuotationDraft(issuerID, clientID)
				if err != nil {
					return err
				}
				q.Number = number
				if err := a.documents.SaveQuotation(q); err != nil {
					return err
				}
				id = q.ID
			default:
				return fmt.Errorf("unknown document type %q", docType)
			}

			if err := a.store.Save(); err != nil {
				return err
			}
			fmt.Println("created", docType, id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&docType, "type", "t", "invoice", "document type: invoice or quotation")
	cmd.Flags().StringVar(&issuerID, "issuer", "issuer-default", "issuer id")
	cmd.Flags().StringVar(&clientID, "client", "client-a", "client id")
	cmd.Flags().StringVarP(&number, "number", "n", "", "document number (required)")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}
