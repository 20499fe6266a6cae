package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/reactlint/internal/cli/config"
	"github.com/leapstack-labs/reactlint/internal/cli/output"
	"github.com/leapstack-labs/reactlint/internal/engine"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// OpenEngine creates the lint engine for lintCfg.
// Returns a cleanup function that must be called (typically via defer).
func (c *CommandContext) OpenEngine(cmd *cobra.Command, lintCfg *lint.Config) (func(), error) {
	eng, err := createEngine(cmd, c.Cfg, lintCfg, c.Logger)
	if err != nil {
		return nil, err
	}
	c.Engine = eng

	return func() {
		_ = eng.Close()
	}, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that only print metadata.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// rendererFor returns r, or a renderer for format when the command
// overrides the configured output mode.
func rendererFor(cmd *cobra.Command, r *output.Renderer, format string) (*output.Renderer, error) {
	if format == "" {
		return r, nil
	}
	mode, err := output.ParseMode(format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode), nil
}

// projectLintConfig converts the lint section of cfg, warning about
// entries that cannot be applied.
func projectLintConfig(cfg *config.Config, logger *slog.Logger) *lint.Config {
	lintCfg, invalid := lint.FromLintConfig(cfg.Lint)
	if len(invalid) > 0 {
		logger.Warn("ignoring invalid severity overrides", slog.String("entries", strings.Join(invalid, ", ")))
	}
	return lintCfg
}

func createEngine(cmd *cobra.Command, cfg *config.Config, lintCfg *lint.Config, logger *slog.Logger) (*engine.Engine, error) {
	if cfg.Lint != nil && cfg.Lint.DocsBaseURL != "" {
		lint.SetDocsBaseURL(cfg.Lint.DocsBaseURL)
	}

	engineCfg := engine.Config{
		Lint:        lintCfg,
		Exclude:     cfg.Exclude,
		ProjectRoot: cfg.ProjectRoot,
		Version:     cmd.Root().Version,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}
	if cfg.Cache != nil && cfg.Cache.Enabled {
		engineCfg.CachePath = cfg.Cache.Path
	}

	eng, err := engine.New(cmd.Context(), engineCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, nil
}
