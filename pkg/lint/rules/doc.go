// Package rules provides the lint rule implementations for reactlint.
//
// Rules are organized by the library or concern they check:
//   - react: rules about React usage in JSX/TSX sources
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/reactlint/pkg/lint/rules"
//
// Individual rule packages can also be imported:
//
//	import _ "github.com/leapstack-labs/reactlint/pkg/lint/rules/react"
package rules
