package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
)

const dbFileName = "history.db"

// Store is the SQLite database holding the question history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.mevzuat/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mevzuat", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL lets the HTTP and MCP servers read while a request is being recorded.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_history.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== History Store ====================

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save stores or replaces an entry.
func (s *historyStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.RequestID == "" {
		return fmt.Errorf("%w: history entry without request id", domain.ErrInvalidInput)
	}

	sources := entry.Sources
	if sources == nil {
		sources = []domain.SourceName{}
	}
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("marshalling sources: %w", err)
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO history (request_id, question, sources, quick_answer, best_answer,
			best_source, best_link, confidence, result_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(request_id) DO UPDATE SET
			question = excluded.question,
			sources = excluded.sources,
			quick_answer = excluded.quick_answer,
			best_answer = excluded.best_answer,
			best_source = excluded.best_source,
			best_link = excluded.best_link,
			confidence = excluded.confidence,
			result_count = excluded.result_count
	`, entry.RequestID, entry.Question, string(sourcesJSON), entry.QuickAnswer, entry.BestAnswer,
		entry.BestSource, entry.BestLink, entry.Confidence, entry.ResultCount, entry.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *historyStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT request_id, question, sources, quick_answer, best_answer,
			best_source, best_link, confidence, result_count, created_at
		FROM history
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Clear removes every entry.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func scanHistoryEntry(rows *sql.Rows) (*domain.HistoryEntry, error) {
	var (
		entry       domain.HistoryEntry
		sourcesJSON string
	)
	err := rows.Scan(&entry.RequestID, &entry.Question, &sourcesJSON, &entry.QuickAnswer,
		&entry.BestAnswer, &entry.BestSource, &entry.BestLink, &entry.Confidence,
		&entry.ResultCount, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}

	if err := json.Unmarshal([]byte(sourcesJSON), &entry.Sources); err != nil {
		return nil, fmt.Errorf("unmarshalling sources: %w", err)
	}
	return &entry, nil
}
