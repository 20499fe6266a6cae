// Package engine runs lint rules over a set of files on disk.
// It handles discovery, result caching, concurrent parsing and analysis.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/leapstack-labs/reactlint/internal/cache"
	"github.com/leapstack-labs/reactlint/internal/loader"
	"github.com/leapstack-labs/reactlint/pkg/lint"
)

// Engine orchestrates a lint run.
type Engine struct {
	// Structured logger
	logger *slog.Logger

	analyzer    *lint.Analyzer
	loader      *loader.Loader
	store       *cache.Store // nil when caching is disabled
	exclude     []string
	projectRoot string
	version     string
	concurrency int
}

// Config holds engine configuration.
type Config struct {
	// Lint selects rules, severities and rule options (optional)
	Lint *lint.Config
	// Registry supplies the rules; the global registry when nil
	Registry *lint.Registry
	// Exclude holds doublestar patterns skipped during discovery
	Exclude []string
	// ProjectRoot anchors Exclude for explicitly named files; the
	// working directory when empty
	ProjectRoot string
	// Version of the rules implementation; a change invalidates the cache
	Version string
	// Concurrency bounds parallel parsing; GOMAXPROCS when below 1
	Concurrency int
	// CachePath is the SQLite cache location; empty disables caching
	CachePath string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates a new engine, opening the result cache when configured.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	e := &Engine{
		logger:      logger,
		analyzer:    lint.NewAnalyzerWithRegistry(cfg.Lint, cfg.Registry),
		loader:      loader.New(logger),
		exclude:     cfg.Exclude,
		projectRoot: cfg.ProjectRoot,
		version:     cfg.Version,
		concurrency: concurrency,
	}

	if cfg.CachePath != "" {
		store := cache.NewStore(logger)
		if err := store.Open(ctx, cfg.CachePath); err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		e.store = store
	}

	logger.Debug("engine initialized",
		slog.Int("rules", len(e.analyzer.ActiveRules())),
		slog.Int("concurrency", concurrency),
		slog.Bool("cache", e.store != nil))

	return e, nil
}

// Analyzer returns the analyzer the engine runs.
func (e *Engine) Analyzer() *lint.Analyzer {
	return e.analyzer
}

// CacheEnabled reports whether results are cached between runs.
func (e *Engine) CacheEnabled() bool {
	return e.store != nil
}

// Close releases the result cache.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}
