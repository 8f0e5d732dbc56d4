package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/config"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/logger"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/ooxml"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/pdfengine"
	"github.com/WojciechSzmit/wcag/internal/application"
)

// newLogger builds the stderr logger from the persistent flags. Without
// --verbose only warnings and errors are shown.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New(format, level)
}

// newAnalyzeService loads configuration from configPath and wires the
// outbound adapters into an AnalyzeService.
func newAnalyzeService(configPath string, log *logger.Logger) (*application.AnalyzeService, error) {
	cfg, err := config.New().Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log.Debug("config loaded", "path", configPath, "workers", cfg.Workers, "min_score", cfg.CI.MinScore)
	return application.NewAnalyzeService(ooxml.New(), pdfengine.New(nil), cfg, log), nil
}
