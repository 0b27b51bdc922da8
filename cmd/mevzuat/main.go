// Command mevzuat answers questions about Turkish tax regulations.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/scraper"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/mevzuat-cli/internal/core/services"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
	"github.com/custodia-labs/mevzuat-cli/internal/normalisers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const logFileName = "mevzuat.log"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configDir, err := file.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: resolving config directory: %v\n", err)
		return 1
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	promptStore, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading prompts: %v\n", err)
		return 1
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return 1
	}

	logPath := settings.Log.File
	if logPath == "" {
		logPath = filepath.Join(configDir, logFileName)
	}
	if sink, err := logger.OpenFile(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging to file disabled: %v\n", err)
	} else {
		defer sink.Close() //nolint:errcheck
	}

	sources, pages := scraper.Sources()
	regulations := services.NewRegulationSearchService(sources...)
	regulations.SetPageFetcher(pages)

	documents := services.NewDocumentService(normalisers.NewExtractor())

	var history *services.HistoryService
	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		logger.Warn("History disabled: %v", err)
	} else {
		defer store.Close() //nolint:errcheck
		history = services.NewHistoryService(store.HistoryStore())
	}

	var assistant driving.AssistantService
	if gw, err := ai.CreateGateway(&settings.LLM); err != nil {
		logger.Debug("Assistant disabled: %v", err)
	} else {
		svc := services.NewAssistantService(services.NewComposer(promptStore), gw, regulations, documents)
		if store != nil {
			svc.SetHistory(store.HistoryStore())
		}
		assistant = svc
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Assistant:   assistant,
		Regulations: regulations,
		Documents:   documents,
		Settings:    settingsService,
		History:     historyService(history),
		WatchPrompts: func(ctx context.Context) (io.Closer, error) {
			return file.WatchPrompts(ctx, promptStore)
		},
		LogPath: logPath,
	})

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// historyService returns a nil interface when history is unavailable.
func historyService(history *services.HistoryService) driving.HistoryService {
	if history == nil {
		return nil
	}
	return history
}
