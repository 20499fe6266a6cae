package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/reactlint/pkg/parser"
)

// DiscoverOptions configures source discovery.
type DiscoverOptions struct {
	// Exclude holds doublestar patterns matched against slash-separated
	// paths relative to each walked root and to BaseDir.
	Exclude []string
	// BaseDir anchors Exclude for explicit file roots; the working
	// directory when empty.
	BaseDir string
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger
}

// Discover walks roots and returns the supported source files beneath them,
// de-duplicated and sorted. Roots may be files or directories. Dependency
// directories (node_modules and friends), hidden directories and excluded
// paths are skipped, explicit file roots included.
func Discover(ctx context.Context, roots []string, opts DiscoverOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}

		if !info.IsDir() {
			switch {
			case !parser.IsSupported(root):
				logger.Debug("skipping unsupported file", slog.String("path", root))
			case Excluded(opts.Exclude, opts.BaseDir, root):
				logger.Debug("skipping excluded file", slog.String("path", root))
			default:
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if rel != "." && SkipDir(rel) {
					logger.Debug("skipping directory", slog.String("path", path))
					return filepath.SkipDir
				}
				if rel != "." && (match(opts.Exclude, rel) || Excluded(opts.Exclude, opts.BaseDir, path)) {
					return filepath.SkipDir
				}
				return nil
			}

			if !parser.IsSupported(path) || match(opts.Exclude, rel) || Excluded(opts.Exclude, opts.BaseDir, path) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// dependencyDirs are package manager install directories.
var dependencyDirs = map[string]bool{
	"node_modules":     true,
	"bower_components": true,
	"jspm_packages":    true,
}

// SkipDir reports whether a directory, given as a slash-separated path
// relative to the walked root, should not be descended into. Everything
// else is left to the exclude patterns.
func SkipDir(rel string) bool {
	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}
	if strings.HasPrefix(base, ".") && base != "." && base != ".." {
		return true
	}
	return dependencyDirs[base]
}

// Excluded reports whether path matches one of patterns relative to
// baseDir, or to the working directory when baseDir is empty.
func Excluded(patterns []string, baseDir, path string) bool {
	if len(patterns) == 0 {
		return false
	}
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return match(patterns, filepath.ToSlash(rel))
}

func match(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
