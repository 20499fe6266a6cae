package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/reactlint/pkg/parser"
	"github.com/leapstack-labs/reactlint/pkg/source"
)

// Loaded is a source file read from disk. File is nil when the content
// turned out not to be JavaScript or TypeScript.
type Loaded struct {
	Path    string
	Content []byte
	File    *source.File
}

// Skipped reports whether the file was left unparsed.
func (l Loaded) Skipped() bool {
	return l.File == nil
}

// Loader reads and parses files.
type Loader struct {
	parser *parser.Parser
	logger *slog.Logger
}

// New creates a Loader with its own parser pools. A nil logger discards.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{parser: parser.New(), logger: logger}
}

// Read returns the raw content of path.
func Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: paths come from Discover or the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// Parse parses already-read content.
func (l *Loader) Parse(ctx context.Context, path string, content []byte) (*source.File, error) {
	file, err := l.parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, nil
}

// Load reads and parses paths concurrently. Results keep the input order.
// Files in an unsupported language (Qt Linguist .ts files, for instance)
// are logged and returned unparsed; any other error stops the load.
// A concurrency below 1 uses GOMAXPROCS.
func (l *Loader) Load(ctx context.Context, paths []string, concurrency int) ([]Loaded, error) {
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]Loaded, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := Read(path)
			if err != nil {
				return err
			}
			file, err := l.Parse(gctx, path, content)
			if errors.Is(err, parser.ErrUnsupportedLanguage) {
				l.logger.Info("skipping file", slog.String("path", path), slog.String("reason", err.Error()))
				results[i] = Loaded{Path: path, Content: content}
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = Loaded{Path: path, Content: content, File: file}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Load reads and parses paths with a fresh Loader.
func Load(ctx context.Context, paths []string, concurrency int) ([]Loaded, error) {
	return New(nil).Load(ctx, paths, concurrency)
}
