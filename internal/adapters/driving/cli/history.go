package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously asked questions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", domain.DefaultHistoryLimit, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history not available")
	}

	if historyClear {
		if err := historyService.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	entries, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No questions asked yet.")
		return nil
	}

	for i := range entries {
		e := entries[i]
		cmd.Printf("%s  %s\n", mutedStyle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")), e.Question)
		cmd.Printf("    %s\n", e.QuickAnswer)
		if e.BestAnswer != "" && e.BestAnswer != domain.NoAnswerText {
			cmd.Printf("    En iyi: %s (%s, %.2f)\n", e.BestAnswer, e.BestSource, e.Confidence)
		}
	}
	return nil
}
