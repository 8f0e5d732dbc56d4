package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/tui"
	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

func newChecksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "checks [pdf|docx]",
		Short: "List the accessibility checks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := rules.All()
			if len(args) > 0 {
				mime, err := mimeForType(args[0])
				if err != nil {
					return err
				}
				ft, _ := domain.ParseFileType(mime)
				catalog = rules.ForType(ft)
			}

			if jsonOutput {
				return renderJSON(cmd, catalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalog(catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the catalog as JSON")
	return cmd
}
