package cli

import (
	"github.com/spf13/cobra"

	"github.com/WojciechSzmit/wcag/internal/adapters/inbound/httpapi"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/mimesniff"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		maxUpload  int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long:  "Start an HTTP server exposing POST /v1/reports and the check catalog under /v1/checks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			svc, err := newAnalyzeService(configPath, log)
			if err != nil {
				return err
			}
			handler := httpapi.NewHandler(svc, mimesniff.New(), log, maxUpload)
			return httpapi.Serve(cmd.Context(), addr, handler.Router(), log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&configPath, "config", ".", "Config file or directory containing .wcag.yaml")
	cmd.Flags().Int64Var(&maxUpload, "max-upload", httpapi.DefaultMaxUpload, "Maximum upload size in bytes")

	return cmd
}
