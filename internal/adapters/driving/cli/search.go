package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

var (
	searchSources []string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search regulation websites",
	Long: `Searches the selected regulation websites and lists every record found.
Without --source, the configured default sources are searched, or all of them.
A source that cannot be reached contributes no records.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchSources, "source", "s", nil, sourceNamesHelp())
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	if regulationService == nil {
		return errors.New("regulation service not configured")
	}

	sources, err := resolveSources(searchSources, domain.AllSources())
	if err != nil {
		return err
	}

	results := regulationService.Search(cmd.Context(), query, sources)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println(noRecordsMessage)
		return nil
	}
	printRecords(cmd, results)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RegulationRecord) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
