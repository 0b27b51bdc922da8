package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

var pageCmd = &cobra.Command{
	Use:   "page [url]",
	Short: "Print the text of a regulation page",
	Args:  cobra.ExactArgs(1),
	RunE:  runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	if regulationService == nil {
		return errors.New("regulation service not configured")
	}

	text := regulationService.PageContent(cmd.Context(), args[0])
	if text == "" {
		return fmt.Errorf("%w: no content at %s", domain.ErrNetwork, args[0])
	}

	cmd.Println(text)
	return nil
}
