package lint

import (
	"github.com/leapstack-labs/reactlint/pkg/core"
	"github.com/leapstack-labs/reactlint/pkg/source"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "jsx-imports-react"
	Name        string        // Human-readable name
	Group       string        // Category, e.g., "functionality", "style"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)

	OptionsDescription string   // Prose description of the accepted options
	OptionExamples     []string // Example configuration values
	HasFix             bool     // Whether the rule can rewrite source
	TypeScriptOnly     bool     // Restrict to .ts/.tsx sources

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a file and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
// Implementations must not modify file.
type CheckFunc func(file *source.File, opts map[string]any) []Diagnostic

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string        `json:"rule_id"`
	Severity core.Severity `json:"severity"`
	Message  string        `json:"message"`
	FilePath string        `json:"file"`    // Set by the Analyzer
	Pos      int           `json:"pos"`     // Start byte offset
	EndPos   int           `json:"end_pos"` // End byte offset; equal to Pos for point diagnostics

	DocumentationURL string `json:"documentation_url,omitempty"` // URL to rule documentation, when configured
}

// =============================================================================
// Rule Interfaces
// =============================================================================

// Rule is the base interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "jsx-imports-react"
	ID() string

	// Name returns the human-readable name
	Name() string

	// Group returns the category, e.g., "functionality"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Capability flags
	HasFix() bool
	TypeScriptOnly() bool

	// Options documentation
	OptionsDescription() string
	OptionExamples() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// FileRule analyzes one parsed source file.
type FileRule interface {
	Rule

	// CheckFile analyzes a file and returns diagnostics.
	CheckFile(file *source.File, opts map[string]any) []Diagnostic
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:                 r.ID(),
		Name:               r.Name(),
		Group:              r.Group(),
		Description:        r.Description(),
		Rationale:          r.Rationale(),
		DefaultSeverity:    r.DefaultSeverity(),
		OptionsDescription: r.OptionsDescription(),
		OptionExamples:     r.OptionExamples(),
		ConfigKeys:         r.ConfigKeys(),
		HasFix:             r.HasFix(),
		TypeScriptOnly:     r.TypeScriptOnly(),
		BadExample:         r.BadExample(),
		GoodExample:        r.GoodExample(),
		Fix:                r.Fix(),
	}
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement FileRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the FileRule interface.
func WrapRuleDef(def RuleDef) FileRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) HasFix() bool                   { return w.def.HasFix }
func (w *wrappedRuleDef) TypeScriptOnly() bool           { return w.def.TypeScriptOnly }
func (w *wrappedRuleDef) OptionsDescription() string     { return w.def.OptionsDescription }
func (w *wrappedRuleDef) OptionExamples() []string       { return w.def.OptionExamples }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) CheckFile(file *source.File, opts map[string]any) []Diagnostic {
	if w.def.Check == nil {
		return nil
	}
	return w.def.Check(file, opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
