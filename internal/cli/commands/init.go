package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/reactlint/internal/cli/config"
	"github.com/leapstack-labs/reactlint/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configHeader is written above the generated settings.
const configHeader = `# reactlint configuration
# Environment variables (REACTLINT_OUTPUT, REACTLINT_CACHE__ENABLED, ...)
# and command line flags override these values.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a reactlint.yaml configuration",
		Long: `Write a reactlint.yaml holding the default configuration.

The file lists every setting with its default value, ready to be edited.`,
		Example: `  # Initialize in current directory
  reactlint init

  # Initialize in another directory
  reactlint init web/

  # Overwrite an existing config
  reactlint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			r := NewCommandContextWithoutEngine(cmd).Renderer
			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileName)
	}

	content, err := defaultConfigYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.StatusLine(configPath, "success", "")
	r.Println("")
	r.Success("reactlint initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust include/exclude in " + config.ConfigFileName)
	r.Println("  2. Run 'reactlint rules' to see the available rules")
	r.Println("  3. Run 'reactlint lint' to check your sources")

	return nil
}

// defaultConfigYAML renders the default configuration.
func defaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.Default()); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
