package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/reactlint/internal/cli/commands"
	"github.com/leapstack-labs/reactlint/internal/cli/output"
	"github.com/leapstack-labs/reactlint/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "reactlint", cmd.Use)
	for _, flag := range []string{"config", "verbose", "output", "project-dir", "cache", "cache-path"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"lint", "rules", "init", "cache", "version", "completion"})
}

func TestRoot_LintUsesProjectConfig(t *testing.T) {
	root := testutil.SetupTestProject(t)
	t.Chdir(root)

	out, _, err := executeRoot(t, "lint", "-o", "json")
	require.ErrorIs(t, err, commands.ErrLintIssues)

	var got output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got.Summary.FilesAnalyzed)
	assert.Equal(t, 2, got.Summary.Errors)
}

func TestRoot_ConfigFileDisablesRule(t *testing.T) {
	root := testutil.SetupTestProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "reactlint.yaml"),
		[]byte("include: [src]\nlint:\n  disabled: [jsx-imports-react]\n"), 0600))

	out, _, err := executeRoot(t, "lint", "--project-dir", root, "--output", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "No lint issues found in 5 files")
}

func TestRoot_CacheFlag(t *testing.T) {
	root := testutil.SetupTestProject(t)
	cachePath := filepath.Join(t.TempDir(), "lint.db")

	for range 2 {
		_, _, err := executeRoot(t, "lint", "--project-dir", root, "-o", "json", "--cache", "--cache-path", cachePath)
		require.ErrorIs(t, err, commands.ErrLintIssues)
	}
	assert.FileExists(t, cachePath)

	out, _, err := executeRoot(t, "cache", "info", "--project-dir", root, "-o", "json", "--cache", "--cache-path", cachePath)
	require.NoError(t, err)

	var info commands.CacheInfoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, 5, info.Entries)
	require.Len(t, info.Runs, 2)
	assert.Equal(t, 5, info.Runs[0].Cached)
}

func TestRoot_InvalidOutput(t *testing.T) {
	root := testutil.SetupTestProject(t)

	_, _, err := executeRoot(t, "rules", "--project-dir", root, "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	root := testutil.SetupTestProject(t)

	_, errOut, err := executeRoot(t, "lint", "--project-dir", root, "-o", "json", "-v")
	require.ErrorIs(t, err, commands.ErrLintIssues)
	assert.Contains(t, errOut, "lint completed")
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := executeRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "reactlint")

	_, _, err = executeRoot(t, "completion", "tcsh")
	assert.Error(t, err)
}
