package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// PromptWatcher reloads a PromptStore when prompt files change on disk.
type PromptWatcher struct {
	watcher *fsnotify.Watcher
	store   *PromptStore
	done    chan struct{}
}

// WatchPrompts starts watching the store's prompt directory until ctx is
// cancelled or Close is called.
func WatchPrompts(ctx context.Context, store *PromptStore) (*PromptWatcher, error) {
	if err := os.MkdirAll(store.Dir(), 0700); err != nil {
		return nil, fmt.Errorf("create prompt directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create prompt watcher: %w", err)
	}
	if err := w.Add(store.Dir()); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", store.Dir(), err)
	}

	pw := &PromptWatcher{
		watcher: w,
		store:   store,
		done:    make(chan struct{}),
	}
	go pw.run(ctx)

	logger.Debug("Watching prompts in %s", store.Dir())
	return pw, nil
}

// Close stops the watcher and waits for the event loop to exit.
func (w *PromptWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *PromptWatcher) run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			_ = w.watcher.Close()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Prompt watcher: %v", err)
		}
	}
}

// handle reloads the store for changes to prompt files and reports whether it did.
func (w *PromptWatcher) handle(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".txt" {
		return false
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	w.store.Reload()
	logger.Info("Prompts reloaded after change to %s", filepath.Base(event.Name))
	return true
}
