package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the end of the log file",
	Args:  cobra.NoArgs,
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of lines to show (0 = all)")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, _ []string) error {
	if logPath == "" {
		return errors.New("log file not configured")
	}

	lines, err := logger.Tail(logPath, logsLines)
	if errors.Is(err, os.ErrNotExist) {
		cmd.Println("No log entries yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", logPath, err)
	}

	for _, line := range lines {
		cmd.Println(line)
	}
	return nil
}
