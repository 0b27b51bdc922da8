package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
)

// noRecordsMessage is printed when sources were searched but nothing matched.
const noRecordsMessage = "Seçilen kaynaklarda ilgili mevzuat bulunamadı."

const updateWarning = "Bu cevap güncel olmayabilir. Güncel mevzuatı kontrol edin."

var (
	askSources   []string
	askFile      string
	askFileType  string
	askThreshold float64
	askJSON      bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about tax regulations",
	Long: `Asks the configured LLM provider for a quick answer.

With --source, the selected regulation websites are searched and the most
confident answer grounded in the results is printed alongside it.
With --file, the answer is also derived from the given PDF or XML document.`,
	Example: `  mevzuat ask "KDV oranı nedir?"
  mevzuat ask "KDV oranı nedir?" --source mevzuat --source resmigazete
  mevzuat ask "Bu tebliğ kimleri kapsar?" --file teblig.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringArrayVarP(&askSources, "source", "s", nil, sourceNamesHelp())
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "PDF or XML document to use as context")
	askCmd.Flags().StringVarP(&askFileType, "type", "t", "", "document type (pdf, xml); inferred from the extension")
	askCmd.Flags().Float64Var(&askThreshold, "threshold", 0, "minimum confidence for the best answer (default from config)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the response as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errAssistantUnavailable
	}

	sources, err := resolveSources(askSources, nil)
	if err != nil {
		return err
	}

	req := driving.AskRequest{
		Question: args[0],
		Sources:  sources,
	}
	if cmd.Flags().Changed("threshold") {
		if askThreshold < 0 || askThreshold > 1 {
			return fmt.Errorf("%w: threshold %.2f outside [0,1]", domain.ErrInvalidInput, askThreshold)
		}
		threshold := askThreshold
		req.Threshold = &threshold
	} else if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			threshold := settings.Search.ConfidenceThreshold
			req.Threshold = &threshold
		}
	}

	if askFile != "" {
		content, fileType, err := readDocument(askFile, askFileType)
		if err != nil {
			return err
		}
		req.Document = content
		req.DocumentType = fileType
	}

	resp, err := assistantService.Ask(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printAskResponse(cmd, resp)
	return nil
}

// readDocument loads a document from disk and resolves its type.
func readDocument(path, typeName string) ([]byte, domain.FileType, error) {
	var (
		fileType domain.FileType
		err      error
	)
	if typeName != "" {
		fileType, err = domain.ParseFileType(typeName)
	} else {
		fileType, err = domain.FileTypeFromPath(path)
	}
	if err != nil {
		return nil, "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, fileType, nil
}

func printAskResponse(cmd *cobra.Command, resp *driving.AskResponse) {
	cmd.Println(headingStyle.Render("Hızlı Cevap"))
	cmd.Println(resp.Quick.Answer)
	if resp.Quick.NeedsUpdate {
		cmd.Println(warnStyle.Render(updateWarning))
	}
	cmd.Println()

	if resp.ContextAnswer != nil {
		cmd.Println(headingStyle.Render("Belgeye Göre Cevap"))
		cmd.Println(resp.ContextAnswer.Text)
		cmd.Println(mutedStyle.Render(fmt.Sprintf("Güven: %.2f", resp.ContextAnswer.EffectiveConfidence())))
		cmd.Println()
	}

	if !resp.Searched {
		return
	}

	if len(resp.Results) == 0 {
		cmd.Println(warnStyle.Render(noRecordsMessage))
		return
	}

	if resp.Best != nil {
		cmd.Println(headingStyle.Render("En İyi Cevap"))
		cmd.Println(resp.Best.Answer)
		if !resp.Best.IsSentinel() {
			cmd.Printf("  Kaynak: %s\n", resp.Best.Source)
			if resp.Best.Link != "" {
				cmd.Printf("  Bağlantı: %s\n", linkStyle.Render(resp.Best.Link))
			}
			if resp.Best.Date != "" {
				cmd.Printf("  Tarih: %s\n", resp.Best.Date)
			}
			cmd.Printf("  Güven: %s\n", okStyle.Render(fmt.Sprintf("%.2f", resp.Best.Confidence)))
		}
		cmd.Println()
	}

	printRecords(cmd, resp.Results)
}

func printRecords(cmd *cobra.Command, records []domain.RegulationRecord) {
	cmd.Println(headingStyle.Render(fmt.Sprintf("Sonuçlar (%d)", len(records))))
	for i := range records {
		r := records[i]
		cmd.Printf("  [%d] %s\n", i+1, r.Title)
		meta := r.Source.String()
		if r.Date != "" {
			meta += " · " + r.Date
		}
		cmd.Printf("      %s\n", mutedStyle.Render(meta))
		cmd.Printf("      %s\n", linkStyle.Render(r.Link))
		if r.Content != "" {
			cmd.Printf("      %s\n", r.Content)
		}
	}
}
