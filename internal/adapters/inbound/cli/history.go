package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/cache"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/history"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/tui"
	"github.com/WojciechSzmit/wcag/internal/application"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOutput bool
		file       string
	)

	cmd := &cobra.Command{
		Use:   "history [dir]",
		Short: "Show scores recorded with analyze --record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			entries, err := application.NewHistoryService(history.New(), nil).Entries(dir, file)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().StringVar(&file, "file", "", "Only show entries for this file name")
	return cmd
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the report cache used by analyze --cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear [dir]",
		Short: "Remove every cached report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if err := cache.New().Invalidate(dir); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	})
	return cmd
}
