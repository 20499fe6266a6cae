package core

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled" yaml:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity" yaml:"severity,omitempty"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules" yaml:"rules,omitempty"`

	// DocsBaseURL overrides where rule documentation links point to
	DocsBaseURL string `koanf:"docs_base_url" yaml:"docs_base_url,omitempty"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any
