// Package core defines the shared language of the reactlint system.
//
// This package contains:
//   - Diagnostic severities
//   - Rule metadata (RuleInfo)
//   - Configuration types shared by the CLI and the lint framework
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
