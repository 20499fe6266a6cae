package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/reactlint/internal/testutil"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("project-dir", "", "")
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.Bool("cache", false, "")
	flags.String("cache-path", "", "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, cfg.Include)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Zero(t, cfg.Concurrency)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, DefaultCachePath), cfg.Cache.Path)
	assert.Empty(t, GetConfigFileUsed())
	assert.Equal(t, []string{cfg.ProjectRoot}, cfg.IncludePaths())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"reactlint.yaml": `include:
  - src
exclude:
  - "**/*.stories.tsx"
concurrency: 2
output: json
cache:
  enabled: true
  path: tmp/lint.db
lint:
  disabled:
    - some-rule
  severity:
    jsx-imports-react: warning
  rules:
    jsx-imports-react:
      enabled: true
  docs_base_url: https://docs.example.com/rules
`,
	})

	// Running from a subdirectory finds the file by searching upward.
	testutil.WriteFiles(t, dir, map[string]string{"src/App.tsx": ""})
	t.Chdir(filepath.Join(dir, "src"))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	root, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, root, gotRoot)

	assert.Equal(t, []string{"src"}, cfg.Include)
	assert.Equal(t, []string{"**/*.stories.tsx"}, cfg.Exclude)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, "tmp", "lint.db"), cfg.Cache.Path)
	assert.Equal(t, []string{"some-rule"}, cfg.Lint.Disabled)
	assert.Equal(t, "warning", cfg.Lint.Severity["jsx-imports-react"])
	assert.Equal(t, true, cfg.Lint.Rules["jsx-imports-react"]["enabled"])
	assert.Equal(t, "https://docs.example.com/rules", cfg.Lint.DocsBaseURL)
	assert.NotEmpty(t, GetConfigFileUsed())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"reactlint.yaml": "output: markdown\nconcurrency: 1\ncache:\n  path: from-file.db\n",
	})
	t.Chdir(dir)

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("REACTLINT_OUTPUT", "text")
		t.Setenv("REACTLINT_CACHE__PATH", "from-env.db")
		t.Setenv("REACTLINT_EXCLUDE", "dist/**, build/**")

		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.OutputFormat)
		assert.Equal(t, 1, cfg.Concurrency, "file value kept")
		assert.Equal(t, filepath.Join(cfg.ProjectRoot, "from-env.db"), cfg.Cache.Path)
		assert.Equal(t, []string{"dist/**", "build/**"}, cfg.Exclude)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("REACTLINT_OUTPUT", "text")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--output", "json", "--cache", "--cache-path", "/abs/flag.db"}))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.OutputFormat)
		assert.True(t, cfg.Cache.Enabled)
		assert.Equal(t, "/abs/flag.db", cfg.Cache.Path)
	})

	t.Run("unset flags keep lower layers", func(t *testing.T) {
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--verbose"}))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.Equal(t, "markdown", cfg.OutputFormat)
		assert.True(t, cfg.Verbose)
	})
}

func TestLoadConfig_ExplicitFileAndProjectDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"configs/custom.yaml":   "output: json\n",
		"project/reactlint.yml": "output: text\n",
	})
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(filepath.Join(dir, "configs", "custom.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, filepath.Join(dir, "configs"), cfg.ProjectRoot)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--project-dir", filepath.Join(dir, "project")}))
	cfg, err = LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, filepath.Join(dir, "project"), cfg.ProjectRoot)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad output", mutate: func(c *Config) { c.OutputFormat = "xml" }, errSubstr: "invalid output format"},
		{name: "negative concurrency", mutate: func(c *Config) { c.Concurrency = -1 }, errSubstr: "concurrency"},
		{name: "bad pattern", mutate: func(c *Config) { c.Exclude = []string{"[a"} }, errSubstr: "invalid exclude pattern"},
		{
			name:      "bad severity",
			mutate:    func(c *Config) { c.Lint.Severity = map[string]string{"r": "fatal"} },
			errSubstr: "invalid severity",
		},
		{
			name:      "cache without path",
			mutate:    func(c *Config) { c.Cache = &CacheConfig{Enabled: true} },
			errSubstr: "cache.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errSubstr)
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	assert.Equal(t, "cache.path", envKey("REACTLINT_CACHE__PATH"))
	assert.Equal(t, "lint.docs_base_url", envKey("REACTLINT_LINT__DOCS_BASE_URL"))
	assert.Equal(t, "output", envKey("REACTLINT_OUTPUT"))

	assert.Equal(t, []string{"a", "b"}, envValue("include", "a, ,b"))
	assert.Equal(t, "a,b", envValue("output", "a,b"))
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	t.Chdir(t.TempDir())

	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	assert.Equal(t, DefaultOutput, fallback.OutputFormat)
	assert.True(t, filepath.IsAbs(fallback.Cache.Path))

	cfg := Default()
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
