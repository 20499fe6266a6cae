package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/reactlint/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = NewRegistry()

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]FileRule // keyed by ID
}

// NewRegistry creates an empty registry. Most callers use the global
// registry through the package-level functions.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]FileRule)}
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.Add(WrapRuleDef(rule))
}

// RegisterRule adds a rule implementation to the global registry.
func RegisterRule(rule FileRule) {
	globalRegistry.Add(rule)
}

// Add registers rule, replacing any rule with the same ID.
func (r *Registry) Add(rule FileRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
}

// All returns all registered rules sorted by ID.
func (r *Registry) All() []FileRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]FileRule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// Get returns a rule by its ID.
func (r *Registry) Get(id string) (FileRule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// Group returns all rules in a specific group, sorted by ID.
func (r *Registry) Group(group string) []FileRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []FileRule
	for _, rule := range r.rules {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// Infos returns metadata for all registered rules, sorted by ID.
func (r *Registry) Infos() []core.RuleInfo {
	rules := r.All()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Reset removes all registered rules.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = make(map[string]FileRule)
}

func sortRules(rules []FileRule) {
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
}

// GetAll returns all globally registered rules.
func GetAll() []FileRule {
	return globalRegistry.All()
}

// GetByID returns a globally registered rule by its ID.
func GetByID(id string) (FileRule, bool) {
	return globalRegistry.Get(id)
}

// GetByGroup returns all globally registered rules in a group.
func GetByGroup(group string) []FileRule {
	return globalRegistry.Group(group)
}

// AllRules returns metadata for all globally registered rules.
func AllRules() []core.RuleInfo {
	return globalRegistry.Infos()
}

// Count returns the number of globally registered rules.
func Count() int {
	return globalRegistry.Len()
}

// Clear removes all globally registered rules. Intended for tests.
func Clear() {
	globalRegistry.Reset()
}
