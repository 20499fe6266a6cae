package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/reactlint/internal/cache"
	"github.com/leapstack-labs/reactlint/internal/loader"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	"github.com/leapstack-labs/reactlint/pkg/source"
)

// Lint discovers the sources under paths and checks them.
// Lint violations are reported in the Result, not as an error.
func (e *Engine) Lint(ctx context.Context, paths []string) (_ *Result, err error) {
	start := time.Now()

	files, err := loader.Discover(ctx, paths, loader.DiscoverOptions{
		Exclude: e.exclude,
		BaseDir: e.projectRoot,
		Logger:  e.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	e.logger.Info("starting lint", slog.Int("files", len(files)))

	result := &Result{Files: make([]FileResult, len(files))}

	var run *cache.Run
	if e.store != nil {
		run, err = e.store.StartRun(ctx)
		if err != nil {
			return nil, err
		}
		result.RunID = run.ID

		// A failed run leaves no half-written record behind
		defer func() {
			if err == nil {
				return
			}
			if derr := e.store.DeleteRun(context.WithoutCancel(ctx), run.ID); derr != nil {
				e.logger.Warn("failed to discard run", slog.String("id", run.ID), slog.String("error", derr.Error()))
			}
		}()
	}

	rulesetHash := cache.RulesetHash(e.analyzer, e.version)

	// 1. Serve unchanged files from the cache
	misses, err := e.lookup(ctx, files, rulesetHash, result)
	if err != nil {
		return nil, err
	}

	// 2. Parse and analyze everything else
	if err := e.analyze(ctx, files, misses, rulesetHash, result); err != nil {
		return nil, err
	}
	result.Files = slices.DeleteFunc(result.Files, func(f FileResult) bool { return f.Path == "" })

	// 3. Forget files that no longer exist and record the run
	if e.store != nil {
		if _, err := e.store.Prune(ctx, fileExists); err != nil {
			e.logger.Warn("cache prune failed", slog.String("error", err.Error()))
		}
		stats := cache.RunStats{
			Files:       len(result.Files),
			Cached:      result.Cached,
			Diagnostics: len(result.Diagnostics()),
		}
		if err := e.store.CompleteRun(ctx, run.ID, stats); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start)

	e.logger.Info("lint completed",
		slog.Int("files", len(result.Files)),
		slog.Int("cached", result.Cached),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("diagnostics", len(result.Diagnostics())),
		slog.Int64("duration_ms", result.Duration.Milliseconds()))

	return result, nil
}

// lookup fills result entries that the cache can answer and returns the
// indexes of the files that must be analyzed.
func (e *Engine) lookup(ctx context.Context, files []string, rulesetHash string, result *Result) ([]int, error) {
	if e.store == nil {
		misses := make([]int, len(files))
		for i := range files {
			misses[i] = i
		}
		return misses, nil
	}

	hit := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, path := range files {
		g.Go(func() error {
			content, err := loader.Read(path)
			if err != nil {
				return err
			}
			diags, ok, err := e.store.Get(gctx, cacheKey(path), cache.ContentHash(content), rulesetHash)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			e.logger.Debug("cache hit", slog.String("path", path))
			for j := range diags {
				diags[j].FilePath = path
			}
			hit[i] = true
			result.Files[i] = FileResult{
				Path:        path,
				Diagnostics: diags,
				Cached:      true,
				Lines:       source.NewLineIndex(content),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var misses []int
	for i := range files {
		if hit[i] {
			result.Cached++
		} else {
			misses = append(misses, i)
		}
	}
	return misses, nil
}

// analyze parses the missed files, runs the analyzer and stores results.
func (e *Engine) analyze(ctx context.Context, files []string, misses []int, rulesetHash string, result *Result) error {
	if len(misses) == 0 {
		return nil
	}

	paths := make([]string, len(misses))
	for j, i := range misses {
		paths[j] = files[i]
	}

	loaded, err := e.loader.Load(ctx, paths, e.concurrency)
	if err != nil {
		return err
	}

	for j, l := range loaded {
		if l.Skipped() {
			result.Skipped = append(result.Skipped, l.Path)
			continue
		}

		if l.File.HasErrors {
			e.logger.Warn("syntax errors, results may be incomplete", slog.String("path", l.Path))
		}

		diags := e.analyzer.Analyze(l.File)
		if diags == nil {
			diags = []lint.Diagnostic{}
		}

		result.Files[misses[j]] = FileResult{
			Path:        l.Path,
			Diagnostics: diags,
			HasErrors:   l.File.HasErrors,
			Lines:       source.NewLineIndex(l.Content),
		}

		if e.store != nil {
			if err := e.store.Put(ctx, cacheKey(l.Path), cache.ContentHash(l.Content), rulesetHash, diags); err != nil {
				return err
			}
		}
	}
	return nil
}

// cacheKey makes cache entries independent of the working directory.
func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
