package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/leapstack-labs/reactlint/pkg/lint"
)

// DefaultPath is the cache location relative to the project root.
const DefaultPath = ".reactlint/cache.db"

// MemoryPath opens a private in-memory cache.
const MemoryPath = ":memory:"

// ErrNotOpen is returned when the store is used before Open or after Close.
var ErrNotOpen = errors.New("cache not opened")

const timeLayout = time.RFC3339Nano

// Store is the SQLite-backed lint result cache.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewStore creates a new cache store instance.
// If logger is nil, a discard logger is used.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// Open opens (and creates if missing) the cache database and applies
// pending migrations. Use MemoryPath for an in-memory database.
func (s *Store) Open(ctx context.Context, path string) error {
	dsn := ":memory:"
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		// Pragmas via DSN keep it portable with the modernc driver.
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single connection also keeps an in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path

	if err := s.Migrate(ctx); err != nil {
		s.db = nil
		db.Close()
		return err
	}

	s.logger.Debug("cache opened", slog.String("path", path))
	return nil
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// generateID creates a new UUID.
func generateID() string {
	return uuid.New().String()
}

// ContentHash returns the hex SHA-256 of file content.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// RulesetHash fingerprints the rules an analyzer will run, including
// severity overrides and rule options, together with the version of the
// binary that implements them.
func RulesetHash(analyzer *lint.Analyzer, version string) string {
	sum := sha256.Sum256([]byte(version + "\x00" + analyzer.Fingerprint()))
	return hex.EncodeToString(sum[:])
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
