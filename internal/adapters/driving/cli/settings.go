package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

var (
	configModel  string
	configAPIKey string
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage application settings",
	Long: `View and configure the LLM provider, its credential and the answer threshold.

Settings are stored in ~/.mevzuat/config.toml. The environment variables
MEVZUAT_LLM_PROVIDER, MEVZUAT_LLM_MODEL and MEVZUAT_LLM_API_KEY override them,
as do HUGGING_FACE_TOKEN, OPENAI_API_KEY and ANTHROPIC_API_KEY for the key.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetProviderCmd = &cobra.Command{
	Use:   "set-provider [provider]",
	Short: "Configure the LLM provider",
	Long: `Configure the LLM provider used for answers.

Available providers:
  huggingface - Hugging Face text generation inference
  openai      - OpenAI chat completions
  anthropic   - Anthropic messages

Without an argument, the provider is chosen interactively.
Without --api-key, the key is read from the terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSetProvider,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set the API key of the configured provider",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigSetKey,
}

var configSetThresholdCmd = &cobra.Command{
	Use:   "set-threshold [value]",
	Short: "Set the minimum confidence for a best answer",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetThreshold,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate settings and ping the LLM provider",
	RunE:  runConfigCheck,
}

func init() {
	configSetProviderCmd.Flags().StringVarP(&configModel, "model", "m", "", "model name (default depends on provider)")
	configSetProviderCmd.Flags().StringVar(&configAPIKey, "api-key", "", "provider API key")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetProviderCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetThresholdCmd)
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.LLM.Timeout)
	cmd.Printf("  Max Retries: %d\n", settings.LLM.MaxRetries)
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Confidence Threshold: %.2f\n", settings.Search.ConfidenceThreshold)
	if len(settings.Search.DefaultSources) > 0 {
		names := make([]string, 0, len(settings.Search.DefaultSources))
		for _, src := range settings.Search.DefaultSources {
			names = append(names, src.String())
		}
		cmd.Printf("  Default Sources: %s\n", strings.Join(names, ", "))
	} else {
		cmd.Printf("  Default Sources: (none)\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'mevzuat config set-provider' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigSetProvider(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	var provider domain.AIProvider
	if len(args) == 1 {
		provider = domain.AIProvider(strings.ToLower(args[0]))
	} else {
		providers := domain.AllLLMProviders()
		cmd.Println("Select LLM provider:")
		for i, p := range providers {
			cmd.Printf("  %d. %s\n", i+1, p.Description())
		}
		cmd.Print("\nEnter choice [1]: ")
		provider = providers[parseChoice(readLine(reader), len(providers), 1)-1]
	}
	if !provider.IsValid() {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, provider)
	}

	apiKey := configAPIKey
	if apiKey == "" && provider.RequiresAPIKey() {
		cmd.Printf("API key for %s: ", provider.Description())
		apiKey = readSecret(cmd, reader)
		cmd.Println()
	}

	if err := settingsService.SetLLMProvider(provider, configModel, apiKey); err != nil {
		return fmt.Errorf("failed to set LLM provider: %w", err)
	}

	model := configModel
	if model == "" {
		model = domain.DefaultLLMModels()[provider]
	}
	cmd.Printf("LLM provider set to %s (model %s)\n", provider.Description(), model)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var apiKey string
	if len(args) == 1 {
		apiKey = args[0]
	} else {
		cmd.Print("API key: ")
		apiKey = readSecret(cmd, bufio.NewReader(cmd.InOrStdin()))
		cmd.Println()
	}

	if err := settingsService.SetAPIKey(apiKey); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}
	cmd.Printf("API key set to %s\n", maskAPIKey(apiKey))
	return nil
}

func runConfigSetThreshold(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	threshold, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: threshold %q", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetConfidenceThreshold(threshold); err != nil {
		return fmt.Errorf("failed to set threshold: %w", err)
	}
	cmd.Printf("Confidence threshold set to %.2f\n", threshold)
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Validate(); err != nil {
		return err
	}
	cmd.Println("Configuration is valid.")

	cmd.Println("Pinging LLM provider...")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		return err
	}
	cmd.Println(okStyle.Render("LLM provider is reachable."))
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readSecret reads a line without echo when input is a terminal.
func readSecret(cmd *cobra.Command, reader *bufio.Reader) string {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
