package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/reactlint/internal/cli/config"
	"github.com/leapstack-labs/reactlint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCacheCommand(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCacheCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestCacheCommand(t *testing.T) {
	root := testutil.ReactProject(t)

	cfg := config.Default()
	cfg.OutputFormat = "markdown"
	cfg.Cache.Enabled = true
	cfg.Cache.Path = filepath.Join(t.TempDir(), "cache.db")
	ctx := config.WithConfig(context.Background(), cfg)

	t.Run("clear before first run", func(t *testing.T) {
		out, err := runCacheCommand(ctx, t, "clear")
		require.NoError(t, err)
		assert.Contains(t, out, "Cache is already empty")
	})

	t.Run("info before first run", func(t *testing.T) {
		out, err := runCacheCommand(ctx, t, "info")
		require.NoError(t, err)
		assert.Contains(t, out, "Entries: 0")
		assert.Contains(t, out, "No recorded runs")
	})

	_, err := runLintCommand(ctx, t, root)
	require.ErrorIs(t, err, ErrLintIssues)
	_, err = runLintCommand(ctx, t, root)
	require.ErrorIs(t, err, ErrLintIssues)

	t.Run("info", func(t *testing.T) {
		jsonCfg := *cfg
		jsonCfg.OutputFormat = "json"

		out, err := runCacheCommand(config.WithConfig(context.Background(), &jsonCfg), t, "info", "--limit", "1")
		require.NoError(t, err)

		var got CacheInfoJSON
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Enabled)
		assert.Equal(t, 5, got.Entries)
		require.Len(t, got.Runs, 1)
		assert.Equal(t, 5, got.Runs[0].Cached)
		assert.Equal(t, 2, got.Runs[0].Diagnostics)
	})

	t.Run("clear", func(t *testing.T) {
		out, err := runCacheCommand(ctx, t, "clear")
		require.NoError(t, err)
		assert.Contains(t, out, "Removed 5 cached results")

		out, err = runCacheCommand(ctx, t, "info")
		require.NoError(t, err)
		assert.Contains(t, out, "Entries: 0")
	})
}
