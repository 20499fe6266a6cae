package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/reactlint/internal/testutil"
)

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestDiscover(t *testing.T) {
	root := testutil.ReactProject(t)

	tests := []struct {
		name    string
		roots   []string
		exclude []string
		want    []string
	}{
		{
			name:  "project root skips dependency and hidden directories",
			roots: []string{root},
			want: []string{
				"src/App.tsx",
				"src/Button.tsx",
				"src/index.js",
				"src/legacy/Card.jsx",
				"src/util.ts",
			},
		},
		{
			name:    "exclude directory pattern",
			roots:   []string{root},
			exclude: []string{"src/legacy/**"},
			want: []string{
				"src/App.tsx",
				"src/Button.tsx",
				"src/index.js",
				"src/util.ts",
			},
		},
		{
			name:    "exclude by extension anywhere",
			roots:   []string{root},
			exclude: []string{"**/*.ts", "**/*.js"},
			want: []string{
				"src/App.tsx",
				"src/Button.tsx",
				"src/legacy/Card.jsx",
			},
		},
		{
			name:  "explicit files are de-duplicated",
			roots: []string{filepath.Join(root, "src", "App.tsx"), filepath.Join(root, "src"), filepath.Join(root, "src", "App.tsx")},
			want: []string{
				"src/App.tsx",
				"src/Button.tsx",
				"src/index.js",
				"src/legacy/Card.jsx",
				"src/util.ts",
			},
		},
		{
			name:  "unsupported explicit file is ignored",
			roots: []string{filepath.Join(root, "README.md")},
			want:  []string{},
		},
		{
			name:    "excluded explicit file is ignored",
			roots:   []string{filepath.Join(root, "src", "legacy", "Card.jsx"), filepath.Join(root, "src", "App.tsx")},
			exclude: []string{"src/legacy/**"},
			want:    []string{"src/App.tsx"},
		},
		{
			name:    "exclude is anchored at the base directory for nested roots",
			roots:   []string{filepath.Join(root, "src")},
			exclude: []string{"src/legacy/**", "**/util.ts"},
			want: []string{
				"src/App.tsx",
				"src/Button.tsx",
				"src/index.js",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Discover(context.Background(), tt.roots, DiscoverOptions{
				Exclude: tt.exclude,
				BaseDir: root,
				Logger:  testutil.NewTestLogger(t),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, files))
		})
	}
}

func TestDiscover_OrdinarySourceDirectories(t *testing.T) {
	root := t.TempDir()
	component := "export const C = () => <div />;\n"
	testutil.WriteFiles(t, root, map[string]string{
		"src/cache/Widget.tsx":             component,
		"src/vendor/Thing.tsx":             component,
		"src/external/Ext.tsx":             component,
		"src/components/Ok.tsx":            component,
		"dist/App.tsx":                     component,
		"node_modules/pkg/index.tsx":       component,
		"web/bower_components/lib/Lib.jsx": component,
		"jspm_packages/npm/dep/Dep.tsx":    component,
		".storybook/Preview.tsx":           component,
	})

	files, err := Discover(context.Background(), []string{root}, DiscoverOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"dist/App.tsx",
		"src/cache/Widget.tsx",
		"src/components/Ok.tsx",
		"src/external/Ext.tsx",
		"src/vendor/Thing.tsx",
	}, rel(t, root, files))
}

func TestExcluded(t *testing.T) {
	root := t.TempDir()
	patterns := []string{"src/Excluded/**", "**/Skip.tsx"}

	tests := []struct {
		path string
		want bool
	}{
		{path: filepath.Join(root, "src", "Excluded", "Other.tsx"), want: true},
		{path: filepath.Join(root, "src", "Skip.tsx"), want: true},
		{path: filepath.Join(root, "src", "Keep.tsx"), want: false},
		{path: filepath.Join(filepath.Dir(root), "elsewhere", "Other.tsx"), want: false},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, Excluded(patterns, root, tt.path))
		})
	}

	assert.False(t, Excluded(nil, root, filepath.Join(root, "src", "Skip.tsx")))

	t.Chdir(root)
	assert.True(t, Excluded(patterns, "", filepath.Join("src", "Excluded", "Skip.tsx")))
}

func TestDiscover_Errors(t *testing.T) {
	root := testutil.ReactProject(t)

	_, err := Discover(context.Background(), []string{filepath.Join(root, "missing")}, DiscoverOptions{})
	assert.Error(t, err)

	_, err = Discover(context.Background(), []string{root}, DiscoverOptions{Exclude: []string{"[unclosed"}})
	assert.ErrorContains(t, err, "invalid exclude pattern")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Discover(ctx, []string{root}, DiscoverOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSkipDir(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{rel: "src", want: false},
		{rel: "src/components", want: false},
		{rel: "node_modules", want: true},
		{rel: "packages/app/node_modules", want: true},
		{rel: ".git", want: true},
		{rel: "src/.cache", want: true},
		{rel: "bower_components", want: true},
		{rel: "jspm_packages", want: true},
		{rel: "src/cache", want: false},
		{rel: "src/vendor", want: false},
		{rel: "dist", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipDir(tt.rel))
		})
	}
}

func TestLoad(t *testing.T) {
	root := testutil.ReactProject(t)
	files, err := Discover(context.Background(), []string{root}, DiscoverOptions{})
	require.NoError(t, err)

	for _, concurrency := range []int{0, 1, 4} {
		loaded, err := Load(context.Background(), files, concurrency)
		require.NoError(t, err)
		require.Len(t, loaded, len(files))

		for i, l := range loaded {
			assert.Equal(t, files[i], l.Path, "order preserved")
			assert.Equal(t, files[i], l.File.Name)
			assert.NotEmpty(t, l.Content)
		}
	}

	app := filepath.Join(root, "src", "App.tsx")
	loaded, err := Load(context.Background(), []string{app}, 1)
	require.NoError(t, err)
	imports := loaded[0].File.Imports()
	require.Len(t, imports, 1)
	assert.Equal(t, "react", imports[0].Specifier)
}

func TestLoad_Errors(t *testing.T) {
	root := t.TempDir()

	_, err := Load(context.Background(), []string{filepath.Join(root, "gone.tsx")}, 2)
	assert.ErrorContains(t, err, "gone.tsx")

	testutil.WriteFiles(t, root, map[string]string{"notes.txt": "hello"})
	_, err = Load(context.Background(), []string{filepath.Join(root, "notes.txt"), filepath.Join(root, "gone.tsx")}, 1)
	assert.ErrorContains(t, err, "gone.tsx")
}

func TestLoad_SkipsUnsupportedContent(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFiles(t, root, map[string]string{
		"src/Button.tsx": "export const Button = () => <button />;\n",
		"i18n/app_de.ts": "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE TS>\n<TS version=\"2.1\" language=\"de_DE\">\n</TS>\n",
		"notes.txt":      "hello",
	})
	paths := []string{
		filepath.Join(root, "i18n", "app_de.ts"),
		filepath.Join(root, "notes.txt"),
		filepath.Join(root, "src", "Button.tsx"),
	}

	loaded, err := New(testutil.NewTestLogger(t)).Load(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.True(t, loaded[0].Skipped())
	assert.True(t, loaded[1].Skipped())
	assert.NotEmpty(t, loaded[0].Content)
	require.False(t, loaded[2].Skipped())
	assert.Equal(t, "tsx", loaded[2].File.Language)
}
