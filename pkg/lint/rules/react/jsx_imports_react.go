package react

import (
	"github.com/leapstack-labs/reactlint/pkg/core"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	"github.com/leapstack-labs/reactlint/pkg/source"
)

func init() {
	lint.Register(JSXImportsReact)
}

// JSXImportsReactID is the rule identifier.
const JSXImportsReactID = "jsx-imports-react"

// FailureString is the message reported for a JSX file without a React import.
const FailureString = "TSX files must import React"

// librarySpecifier is the module specifier a JSX file has to import.
const librarySpecifier = "react"

// jsxExtensions are the file name suffixes the rule applies to.
var jsxExtensions = []string{".tsx", ".jsx"}

// JSXImportsReact requires files with a JSX extension to import React.
var JSXImportsReact = lint.RuleDef{
	ID:                 JSXImportsReactID,
	Name:               JSXImportsReactID,
	Group:              "functionality",
	Description:        "Enforces a consistent file naming convention",
	Rationale:          "All TSX files should import React, otherwise they should be TS files",
	Severity:           core.SeverityError,
	Check:              checkJSXImportsReact,
	OptionsDescription: "",
	OptionExamples:     []string{"true"},
	HasFix:             false,
	TypeScriptOnly:     false,
	BadExample: `// Button.tsx
export const Button = () => <button />;`,
	GoodExample: `// Button.tsx
import React from "react";

export const Button = () => <button />;`,
	Fix: "Import React, or rename the file to .ts/.js if it contains no JSX.",
}

func checkJSXImportsReact(file *source.File, _ map[string]any) []lint.Diagnostic {
	if isValid(file) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   JSXImportsReactID,
		Severity: core.SeverityError,
		Message:  FailureString,
		Pos:      0,
		EndPos:   0,
	}}
}

func isValid(file *source.File) bool {
	return !isReactFileExtension(file) || importsReact(file)
}

// isReactFileExtension matches literal, case-sensitive suffixes only.
func isReactFileExtension(file *source.File) bool {
	return file.HasExtension(jsxExtensions...)
}

// importsReact reports whether a top-level import declaration names "react"
// through a string literal. Re-exports, require calls and dynamic imports
// are not import declarations and never match.
func importsReact(file *source.File) bool {
	for _, stmt := range file.Statements {
		switch s := stmt.(type) {
		case *source.ImportDeclaration:
			if s.IsLiteral(librarySpecifier) {
				return true
			}
		case *source.OtherStatement:
			continue
		}
	}
	return false
}
