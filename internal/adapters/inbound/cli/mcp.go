package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/WojciechSzmit/wcag/internal/adapters/inbound/mcp"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/mimesniff"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the wcag MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start wcag MCP server (stdio)",
		Long:  "Start the wcag MCP server using stdio transport. This lets AI assistants analyze documents and list the checks.",
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
			return server.ServeStdio(mcpadapter.NewWCAGMCPServer(svc, mimesniff.New(), version))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", ".", "Config file or directory containing .wcag.yaml")

	return cmd
}
