package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/config"
	"github.com/WojciechSzmit/wcag/internal/domain"
)

const configHeader = "# wcag configuration. Unset fields use the defaults shown here.\n\n"

func newInitCmd() *cobra.Command {
	var (
		force    bool
		minScore int
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .wcag.yaml configuration file",
		Long:  "Create a .wcag.yaml holding the default heuristics so they can be tuned per project.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.CI.MinScore = minScore
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, append([]byte(configHeader), data...), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .wcag.yaml")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score written to ci.min_score")

	return cmd
}
