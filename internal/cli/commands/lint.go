package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/reactlint/internal/cli/config"
	"github.com/leapstack-labs/reactlint/internal/cli/output"
	"github.com/leapstack-labs/reactlint/internal/engine"
	"github.com/leapstack-labs/reactlint/internal/watch"
	"github.com/leapstack-labs/reactlint/pkg/core"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	_ "github.com/leapstack-labs/reactlint/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
)

// ErrLintIssues is returned when diagnostics at or above the threshold were found.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths       []string // Files or directories to lint
	Format      string   // Output format: text, markdown, json
	Disable     []string // Rule IDs to disable
	Severity    string   // Minimum severity: error, warning, info, hint
	Rules       []string // Run only specific rules
	Watch       bool     // Re-lint on file changes
	Concurrency int      // Parallel parsers, 0 for the configured value
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint JavaScript and TypeScript sources",
		Long: `Analyze .ts, .tsx, .js and .jsx sources and report rule violations.

Paths default to the include list of reactlint.yaml, or the project root.
node_modules, bower_components, jspm_packages and hidden directories are
always skipped; use exclude in reactlint.yaml for anything else.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the project
  reactlint lint

  # Lint specific paths
  reactlint lint src/components src/App.tsx

  # Output as JSON
  reactlint lint --format json

  # Disable a rule
  reactlint lint --disable jsx-imports-react

  # Only report errors
  reactlint lint --severity error

  # Re-lint whenever a file changes
  reactlint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and re-lint")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "Files parsed in parallel (default: number of CPUs)")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q: must be error, warning, info or hint", opts.Severity)
	}

	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r, err := rendererFor(cmd, cmdCtx.Renderer, opts.Format)
	if err != nil {
		return err
	}

	if opts.Concurrency > 0 {
		cfg := *cmdCtx.Cfg
		cfg.Concurrency = opts.Concurrency
		cmdCtx.Cfg = &cfg
	}
	cfg := cmdCtx.Cfg

	cleanup, err := cmdCtx.OpenEngine(cmd, buildLintConfig(cfg, opts, cmdCtx.Logger))
	if err != nil {
		return err
	}
	defer cleanup()

	paths := opts.Paths
	if len(paths) == 0 {
		paths = cfg.IncludePaths()
	}

	if opts.Watch {
		return watchLint(cmd.Context(), cmdCtx, r, paths, threshold)
	}

	res, err := cmdCtx.Engine.Lint(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if renderLintResults(r, res, threshold) {
		return ErrLintIssues
	}
	return nil
}

// watchLint lints once, then again for every batch of changed files until
// the context is canceled.
func watchLint(ctx context.Context, cmdCtx *CommandContext, r *output.Renderer, paths []string, threshold core.Severity) error {
	lintOnce := func(ctx context.Context, changed []string) error {
		res, err := cmdCtx.Engine.Lint(ctx, changed)
		if err != nil {
			r.Error(err.Error())
			return nil
		}
		renderLintResults(r, res, threshold)
		return nil
	}

	if err := lintOnce(ctx, paths); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(r.ErrWriter(), r.Muted("Watching for changes. Press Ctrl+C to stop."))

	w := watch.New(paths,
		watch.WithExclude(cmdCtx.Cfg.ProjectRoot, cmdCtx.Cfg.Exclude),
		watch.WithLogger(cmdCtx.Logger))
	return w.Run(ctx, func(ctx context.Context, changed []string) error {
		cmdCtx.Logger.Debug("files changed", slog.Int("count", len(changed)))
		return lintOnce(ctx, changed)
	})
}

func buildLintConfig(cfg *config.Config, opts *LintOptions, logger *slog.Logger) *lint.Config {
	// Project config first (lower precedence)
	lintCfg := projectLintConfig(cfg, logger)

	// CLI overrides
	for _, id := range opts.Disable {
		if id = strings.TrimSpace(id); id != "" {
			lintCfg.Disable(id)
		}
	}

	if len(opts.Rules) > 0 {
		ids := make([]string, 0, len(opts.Rules))
		for _, id := range opts.Rules {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		lintCfg.EnableOnly(ids...)
	}

	return lintCfg
}

// filterBySeverity drops diagnostics below threshold and files left empty.
func filterBySeverity(files []engine.FileResult, threshold core.Severity) []engine.FileResult {
	var filtered []engine.FileResult
	for _, f := range files {
		var diags []lint.Diagnostic
		for _, d := range f.Diagnostics {
			if d.Severity.AtLeast(threshold) {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			f.Diagnostics = diags
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func lintSummary(res *engine.Result, files []engine.FileResult) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed: len(res.Files),
		FilesCached:   res.Cached,
		RunID:         res.RunID,
		DurationMS:    res.Duration.Milliseconds(),
	}
	for _, f := range files {
		summary.TotalIssues += len(f.Diagnostics)
		for _, d := range f.Diagnostics {
			switch d.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

// renderLintResults prints the diagnostics at or above threshold and
// reports whether there were any.
func renderLintResults(r *output.Renderer, res *engine.Result, threshold core.Severity) bool {
	files := filterBySeverity(res.Files, threshold)
	summary := lintSummary(res, files)

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
			Files:   make([]output.LintFileResult, 0, len(files)),
		}
		for i := range files {
			f := &files[i]
			fileResult := output.LintFileResult{Path: f.Path}
			for _, d := range f.Diagnostics {
				pos := f.Position(d.Pos)
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:           d.RuleID,
					Severity:         d.Severity.String(),
					Message:          d.Message,
					Line:             pos.Line,
					Column:           pos.Column,
					Offset:           d.Pos,
					EndOffset:        d.EndPos,
					DocumentationURL: d.DocumentationURL,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return summary.TotalIssues > 0
	}

	if len(files) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return false
	}

	styles := r.Styles()
	for i := range files {
		f := &files[i]
		r.Println(styles.FilePath.Render(f.Path))
		for _, d := range f.Diagnostics {
			pos := f.Position(d.Pos)
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", fmt.Sprintf("%d:%d", pos.Line, pos.Column))),
				severityLabel(r, d.Severity),
				styles.Bold.Render(d.RuleID),
				d.Message,
			)
			if d.DocumentationURL != "" {
				r.Println("           " + styles.Muted.Render(d.DocumentationURL))
			}
		}
		r.Println("")
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), len(files))

	return true
}

func severityLabel(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case core.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
