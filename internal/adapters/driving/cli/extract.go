package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var extractFileType string

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract text from a PDF or XML document",
	Long: `Prints the text the assistant would use as context for the document.
PDF pages are joined with newlines; XML is re-indented.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFileType, "type", "t", "", "document type (pdf, xml); inferred from the extension")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	content, fileType, err := readDocument(args[0], extractFileType)
	if err != nil {
		return err
	}

	text, err := documentService.Extract(cmd.Context(), content, fileType)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	cmd.Println(text)
	return nil
}
