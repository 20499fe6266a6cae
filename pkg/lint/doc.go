// Package lint provides the rule framework for reactlint.
//
// # Architecture
//
//  1. Root package (pkg/lint/): rule contracts, the registry, configuration,
//     and the Analyzer that runs rules over a parsed source.File
//  2. Rule packages (pkg/lint/rules/...): concrete rules, registered from init()
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/reactlint/pkg/lint/rules"
//
// # Using the Registry
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetByID("jsx-imports-react")
//	group := lint.GetByGroup("functionality")
//
// # Configuration
//
//	config := lint.NewConfig()
//	config.Disable("jsx-imports-react")
//	config.SetSeverity("jsx-imports-react", core.SeverityWarning)
//
// # Creating Custom Rules
//
// Most rules are data-driven RuleDefs:
//
//	var MyRule = lint.RuleDef{
//		ID:          "my-rule",
//		Name:        "my-rule",
//		Group:       "style",
//		Description: "My custom rule description",
//		Severity:    core.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// Types that need more control implement FileRule directly and register
// with RegisterRule.
package lint
