package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/reactlint/internal/cache"
	"github.com/leapstack-labs/reactlint/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewCacheCommand creates the cache command group.
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the lint result cache",
		Long: `Inspect and clear the SQLite cache used by 'reactlint lint --cache'.

Cached results are keyed by file content and the active rule set, so
they are dropped automatically when either changes.`,
	}

	cmd.AddCommand(newCacheClearCommand())
	cmd.AddCommand(newCacheInfoCommand())

	return cmd
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached lint results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			path := cmdCtx.Cfg.Cache.Path

			if _, err := os.Stat(path); os.IsNotExist(err) {
				cmdCtx.Renderer.Success("Cache is already empty")
				return nil
			}

			store := cache.NewStore(cmdCtx.Logger)
			if err := store.Open(cmd.Context(), path); err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			defer func() { _ = store.Close() }()

			n, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}

			cmdCtx.Renderer.Success(fmt.Sprintf("Removed %d cached results from %s", n, path))
			return nil
		},
	}
}

// CacheInfoJSON is the JSON output of 'cache info'.
type CacheInfoJSON struct {
	Path    string       `json:"path"`
	Enabled bool         `json:"enabled"`
	Entries int          `json:"entries"`
	Runs    []*cache.Run `json:"runs"`
}

func newCacheInfoCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show cache location, size and recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			r := cmdCtx.Renderer
			info := CacheInfoJSON{
				Path:    cmdCtx.Cfg.Cache.Path,
				Enabled: cmdCtx.Cfg.Cache.Enabled,
				Runs:    []*cache.Run{},
			}

			if _, err := os.Stat(info.Path); err == nil {
				store := cache.NewStore(cmdCtx.Logger)
				if err := store.Open(cmd.Context(), info.Path); err != nil {
					return fmt.Errorf("failed to open cache: %w", err)
				}
				defer func() { _ = store.Close() }()

				if info.Entries, err = store.Count(cmd.Context()); err != nil {
					return err
				}
				if info.Runs, err = store.LatestRuns(cmd.Context(), limit); err != nil {
					return err
				}
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Header(1, "Cache")
			r.Printf("Path: %s\n", info.Path)
			r.Printf("Enabled: %s\n", yesNo(info.Enabled))
			r.Printf("Entries: %d\n", info.Entries)
			r.Println("")

			if len(info.Runs) == 0 {
				r.Println(r.Muted("No recorded runs"))
				return nil
			}

			rows := make([][]string, 0, len(info.Runs))
			for _, run := range info.Runs {
				completed := "-"
				if run.CompletedAt != nil {
					completed = run.CompletedAt.Format("2006-01-02 15:04:05")
				}
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Format("2006-01-02 15:04:05"),
					completed,
					fmt.Sprint(run.Files),
					fmt.Sprint(run.Cached),
					fmt.Sprint(run.Diagnostics),
				})
			}
			r.Table([]string{"Run", "Started", "Completed", "Files", "Cached", "Diagnostics"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of recent runs to show")

	return cmd
}
