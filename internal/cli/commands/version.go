package commands

import (
	"fmt"

	"github.com/leapstack-labs/reactlint/pkg/lint"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display reactlint version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reactlint v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Linter for React sources built with Go and tree-sitter (%d rules)\n", lint.Count())
		},
	}
}
