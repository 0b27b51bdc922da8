package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API.

Endpoints:
  GET  /api/v1/health
  POST /api/v1/ask       JSON or multipart form with an optional document
  POST /api/v1/search
  POST /api/v1/extract   multipart form with a PDF or XML file

Prompt templates in ~/.mevzuat/prompts are reloaded when they change.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errAssistantUnavailable
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Assistant:   assistantService,
		Regulations: regulationService,
		Documents:   documentService,
		History:     historyService,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if closer := startPromptWatch(cmd); closer != nil {
		defer closer.Close() //nolint:errcheck
	}

	fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on %s\n", serveAddr)
	return server.Run(ctx, serveAddr)
}

// startPromptWatch starts prompt hot-reloading if available.
// A watcher failure is logged and otherwise ignored.
func startPromptWatch(cmd *cobra.Command) io.Closer {
	if watchPrompts == nil {
		return nil
	}
	closer, err := watchPrompts(cmd.Context())
	if err != nil {
		logger.Warn("Prompt hot-reload disabled: %v", err)
		return nil
	}
	return closer
}
