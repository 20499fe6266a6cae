package core

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a lint rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	Rationale       string   `json:"rationale,omitempty"`
	DefaultSeverity Severity `json:"default_severity"`

	// Options
	OptionsDescription string   `json:"options_description,omitempty"`
	OptionExamples     []string `json:"option_examples,omitempty"`
	ConfigKeys         []string `json:"config_keys,omitempty"`

	// HasFix is true when the rule can rewrite the offending source.
	HasFix bool `json:"has_fix"`
	// TypeScriptOnly is true when the rule only applies to .ts/.tsx sources.
	TypeScriptOnly bool `json:"typescript_only"`

	// Documentation fields
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}
