// Package cli provides the cobra command tree of the mevzuat binary.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

// Services holds the driving ports the commands call into.
type Services struct {
	// Assistant answers questions. Nil when no LLM provider is configured.
	Assistant driving.AssistantService

	Regulations driving.RegulationService
	Documents   driving.DocumentService
	Settings    driving.SettingsService

	// History lists answered questions. Optional.
	History driving.HistoryService

	// WatchPrompts starts hot-reloading prompt templates. Optional.
	WatchPrompts func(ctx context.Context) (io.Closer, error)

	// LogPath is the log file read by the logs command.
	LogPath string
}

var (
	assistantService  driving.AssistantService
	regulationService driving.RegulationService
	documentService   driving.DocumentService
	settingsService   driving.SettingsService
	historyService    driving.HistoryService
	watchPrompts      func(ctx context.Context) (io.Closer, error)
	logPath           string
)

// errAssistantUnavailable is returned by commands that need a configured LLM.
var errAssistantUnavailable = errors.New(
	"assistant not available: run 'mevzuat config set-provider' or 'mevzuat config check'")

var rootCmd = &cobra.Command{
	Use:   "mevzuat",
	Short: "Turkish tax regulation assistant",
	Long: `mevzuat answers questions about Turkish tax regulations.

It asks an LLM provider for a quick answer, searches regulation websites
such as mevzuat.gov.tr and resmigazete.gov.tr, and picks the most confident
answer grounded in the retrieved documents.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print log lines to stderr")
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	assistantService = s.Assistant
	regulationService = s.Regulations
	documentService = s.Documents
	settingsService = s.Settings
	historyService = s.History
	watchPrompts = s.WatchPrompts
	logPath = s.LogPath
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
