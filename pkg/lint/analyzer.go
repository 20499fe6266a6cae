package lint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/leapstack-labs/reactlint/pkg/source"
)

// Analyzer runs lint rules against parsed source files.
type Analyzer struct {
	config   *Config
	registry *Registry
}

// NewAnalyzer creates a new analyzer over the global registry.
func NewAnalyzer(config *Config) *Analyzer {
	return NewAnalyzerWithRegistry(config, globalRegistry)
}

// NewAnalyzerWithRegistry creates an analyzer that draws rules from registry.
func NewAnalyzerWithRegistry(config *Config, registry *Registry) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if registry == nil {
		registry = globalRegistry
	}
	return &Analyzer{
		config:   config,
		registry: registry,
	}
}

// ActiveRules returns the rules the analyzer will run, sorted by ID.
func (a *Analyzer) ActiveRules() []FileRule {
	var active []FileRule
	for _, rule := range a.registry.All() {
		if a.config.IsDisabled(rule.ID()) {
			continue
		}
		active = append(active, rule)
	}
	return active
}

// Analyze runs all active rules against the file.
// Diagnostics are sorted by position, then rule ID.
func (a *Analyzer) Analyze(file *source.File) []Diagnostic {
	if file == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range a.ActiveRules() {
		if rule.TypeScriptOnly() && !file.HasExtension(".ts", ".tsx") {
			continue
		}

		diags := rule.CheckFile(file, a.config.GetRuleOptions(rule.ID()))

		for i := range diags {
			if diags[i].RuleID == "" {
				diags[i].RuleID = rule.ID()
			}
			diags[i].FilePath = file.Name
			diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
			if diags[i].DocumentationURL == "" {
				diags[i].DocumentationURL = BuildDocURL(rule.ID())
			}
		}

		diagnostics = append(diagnostics, diags...)
	}

	SortDiagnostics(diagnostics)
	return diagnostics
}

// Fingerprint identifies the active rule set, including severities,
// options and the documentation base URL stamped on diagnostics. Cached
// results are only valid for an identical fingerprint.
func (a *Analyzer) Fingerprint() string {
	type entry struct {
		ID       string         `json:"id"`
		Severity string         `json:"severity"`
		Options  map[string]any `json:"options,omitempty"`
	}
	type fingerprint struct {
		DocsBaseURL string  `json:"docs_base_url"`
		Rules       []entry `json:"rules"`
	}

	rules := a.ActiveRules()
	entries := make([]entry, 0, len(rules))
	for _, rule := range rules {
		entries = append(entries, entry{
			ID:       rule.ID(),
			Severity: a.config.GetSeverity(rule.ID(), rule.DefaultSeverity()).String(),
			Options:  a.config.GetRuleOptions(rule.ID()),
		})
	}

	// encoding/json sorts map keys, so options hash deterministically.
	data, err := json.Marshal(fingerprint{DocsBaseURL: DocsBaseURL(), Rules: entries})
	if err != nil {
		data = []byte(err.Error())
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SortDiagnostics orders diagnostics by file, position, then rule ID.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].FilePath != diags[j].FilePath {
			return diags[i].FilePath < diags[j].FilePath
		}
		if diags[i].Pos != diags[j].Pos {
			return diags[i].Pos < diags[j].Pos
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
