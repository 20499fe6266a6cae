package lint

import (
	"strings"

	"github.com/leapstack-labs/reactlint/pkg/core"
)

// Config controls which rules are enabled, their severity, and their options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// EnabledOnly restricts analysis to these rule IDs when non-empty
	EnabledOnly map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]core.RuleOptions
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		EnabledOnly:       make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]core.RuleOptions),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if len(c.EnabledOnly) > 0 && !c.EnabledOnly[ruleID] {
		return true
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	ruleID = strings.TrimSpace(ruleID)
	if ruleID != "" {
		c.DisabledRules[ruleID] = true
	}
	return c
}

// EnableOnly restricts analysis to the given rule IDs.
func (c *Config) EnableOnly(ruleIDs ...string) *Config {
	for _, id := range ruleIDs {
		if id = strings.TrimSpace(id); id != "" {
			c.EnabledOnly[id] = true
		}
	}
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts core.RuleOptions) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// FromLintConfig builds a Config from the file/env configuration section.
// Invalid severity names are returned so callers can warn about them.
func FromLintConfig(lc *core.LintConfig) (*Config, []string) {
	cfg := NewConfig()
	if lc == nil {
		return cfg, nil
	}

	for _, id := range lc.Disabled {
		cfg.Disable(id)
	}

	var invalid []string
	for id, name := range lc.Severity {
		sev, ok := core.ParseSeverity(name)
		if !ok {
			invalid = append(invalid, id+"="+name)
			continue
		}
		cfg.SetSeverity(id, sev)
	}

	for id, opts := range lc.Rules {
		cfg.SetRuleOptions(id, opts)
	}

	return cfg, invalid
}
