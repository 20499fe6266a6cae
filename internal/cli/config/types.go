// Package config provides configuration management for the reactlint CLI.
//
// The shared configuration types (LintConfig, RuleOptions) are defined in
// pkg/core and re-exported here via type aliases.
package config

import "github.com/leapstack-labs/reactlint/pkg/core"

// LintConfig is an alias for the shared lint configuration.
// This allows CLI code to use config.LintConfig without importing pkg/core.
type LintConfig = core.LintConfig

// CacheConfig controls the on-disk lint result cache.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled" yaml:"enabled"`
	Path    string `koanf:"path" yaml:"path"`
}

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	// Include lists the paths linted when none are given on the command line
	Include []string `koanf:"include" yaml:"include"`
	// Exclude holds doublestar patterns skipped during discovery
	Exclude      []string     `koanf:"exclude" yaml:"exclude"`
	Concurrency  int          `koanf:"concurrency" yaml:"concurrency"`
	Verbose      bool         `koanf:"verbose" yaml:"verbose"`
	OutputFormat string       `koanf:"output" yaml:"output"`
	Cache        *CacheConfig `koanf:"cache" yaml:"cache"`
	Lint         *LintConfig  `koanf:"lint" yaml:"lint"`

	// ProjectRoot is the directory relative paths resolve against
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Default configuration values.
const (
	ConfigFileName   = "reactlint.yaml"
	DefaultCachePath = ".reactlint/cache.db"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix        = "REACTLINT_"
)

// OutputFormats are the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Include:      []string{"."},
		Exclude:      []string{},
		Concurrency:  0,
		OutputFormat: DefaultOutput,
		Cache: &CacheConfig{
			Enabled: false,
			Path:    DefaultCachePath,
		},
		Lint: &LintConfig{
			Disabled: []string{},
			Severity: map[string]string{},
			Rules:    map[string]RuleOptions{},
		},
	}
}
