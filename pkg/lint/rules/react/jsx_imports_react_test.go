package react_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/reactlint/pkg/core"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	"github.com/leapstack-labs/reactlint/pkg/lint/rules/react"
	"github.com/leapstack-labs/reactlint/pkg/parser"
	"github.com/leapstack-labs/reactlint/pkg/source"
)

func check(file *source.File) []lint.Diagnostic {
	return lint.WrapRuleDef(react.JSXImportsReact).CheckFile(file, nil)
}

func TestJSXImportsReact_Statements(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		stmts    []source.Statement
		wantDiag bool
	}{
		{
			name:     "tsx importing react",
			fileName: "Button.tsx",
			stmts:    []source.Statement{source.Import("react")},
		},
		{
			name:     "tsx without imports",
			fileName: "Widget.tsx",
			wantDiag: true,
		},
		{
			name:     "tsx with only react",
			fileName: "Widget.tsx",
			stmts:    []source.Statement{source.Import("react")},
		},
		{
			name:     "ts without imports",
			fileName: "util.ts",
		},
		{
			name:     "jsx importing react-dom only",
			fileName: "Widget.jsx",
			stmts:    []source.Statement{source.Import("react-dom")},
			wantDiag: true,
		},
		{
			name:     "react after another import",
			fileName: "Widget.tsx",
			stmts:    []source.Statement{source.Import("lodash"), source.Import("react")},
		},
		{
			name:     "tsx importing something else",
			fileName: "Button.tsx",
			stmts:    []source.Statement{source.Import("lodash")},
			wantDiag: true,
		},
		{
			name:     "ts file never checked",
			fileName: "util.ts",
			stmts:    []source.Statement{source.Import("lodash")},
		},
		{
			name:     "jsx with no statements",
			fileName: "Empty.jsx",
			wantDiag: true,
		},
		{
			name:     "nested path matches suffix",
			fileName: "a/b/c.tsx",
			stmts: []source.Statement{
				&source.OtherStatement{Kind: "lexical_declaration"},
				source.Import("react"),
			},
		},
		{
			name:     "suffix must be exact",
			fileName: "foo.jsxx",
		},
		{
			name:     "suffix is case sensitive",
			fileName: "Button.TSX",
		},
		{
			name:     "extensionless name",
			fileName: "Makefile",
		},
		{
			name:     "specifier match is exact",
			fileName: "Button.tsx",
			stmts: []source.Statement{
				source.Import("react-dom"),
				source.Import("React"),
				source.Import("preact"),
			},
			wantDiag: true,
		},
		{
			name:     "non-literal specifier does not count",
			fileName: "Button.tsx",
			stmts: []source.Statement{
				&source.ImportDeclaration{Specifier: "react", Literal: false},
			},
			wantDiag: true,
		},
		{
			name:     "type-only import counts",
			fileName: "Props.tsx",
			stmts: []source.Statement{
				&source.ImportDeclaration{Specifier: "react", Literal: true, TypeOnly: true},
			},
		},
		{
			name:     "re-export statement does not count",
			fileName: "index.tsx",
			stmts: []source.Statement{
				&source.OtherStatement{Kind: "export_statement"},
			},
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := check(source.NewFile(tt.fileName, nil, tt.stmts...))
			if !tt.wantDiag {
				assert.Empty(t, diags)
				return
			}
			require.Len(t, diags, 1)
			assert.Equal(t, react.JSXImportsReactID, diags[0].RuleID)
			assert.Equal(t, react.FailureString, diags[0].Message)
			assert.Equal(t, 0, diags[0].Pos)
			assert.Equal(t, 0, diags[0].EndPos)
		})
	}
}

func TestJSXImportsReact_Parsed(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		src      string
		wantDiag bool
	}{
		{
			name:     "default import",
			fileName: "Button.tsx",
			src:      "import React from \"react\";\n\nexport const Button = () => <button />;\n",
		},
		{
			name:     "named import in jsx",
			fileName: "Counter.jsx",
			src:      "import { useState } from 'react';\nexport function Counter() { const [n] = useState(0); return <b>{n}</b>; }\n",
		},
		{
			name:     "import after other statements",
			fileName: "Late.tsx",
			src:      "// header\nconst x = 1;\nimport * as React from \"react\";\n",
		},
		{
			name:     "missing import",
			fileName: "Button.tsx",
			src:      "export const Button = () => <button />;\n",
			wantDiag: true,
		},
		{
			name:     "re-export from react",
			fileName: "index.tsx",
			src:      "export { default } from \"react\";\n",
			wantDiag: true,
		},
		{
			name:     "require call",
			fileName: "legacy.jsx",
			src:      "const React = require(\"react\");\n",
			wantDiag: true,
		},
		{
			name:     "dynamic import",
			fileName: "Lazy.tsx",
			src:      "const mod = import(\"react\");\n",
			wantDiag: true,
		},
		{
			name:     "empty tsx",
			fileName: "Empty.tsx",
			src:      "",
			wantDiag: true,
		},
		{
			name:     "plain typescript without react",
			fileName: "util.ts",
			src:      "export const add = (a: number, b: number) => a + b;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.Parse(tt.fileName, []byte(tt.src))
			require.NoError(t, err)

			diags := check(file)
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, react.FailureString, diags[0].Message)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestJSXImportsReact_Idempotent(t *testing.T) {
	file := source.NewFile("Button.tsx", nil, source.Import("lodash"))
	first := check(file)
	second := check(file)
	assert.Equal(t, first, second)
	require.Len(t, file.Statements, 1, "file must not be modified")
}

func TestJSXImportsReact_Metadata(t *testing.T) {
	rule, ok := lint.GetByID(react.JSXImportsReactID)
	require.True(t, ok, "rule should self-register")

	info := lint.GetRuleInfo(rule)
	assert.Equal(t, "jsx-imports-react", info.Name)
	assert.Equal(t, "functionality", info.Group)
	assert.Equal(t, "Enforces a consistent file naming convention", info.Description)
	assert.Equal(t, "All TSX files should import React, otherwise they should be TS files", info.Rationale)
	assert.Empty(t, info.OptionsDescription)
	assert.Equal(t, []string{"true"}, info.OptionExamples)
	assert.False(t, info.HasFix)
	assert.False(t, info.TypeScriptOnly)
	assert.Equal(t, core.SeverityError, info.DefaultSeverity)
}

func TestJSXImportsReact_ThroughAnalyzer(t *testing.T) {
	file := source.NewFile("src/App.tsx", nil)

	cfg := lint.NewConfig().SetSeverity(react.JSXImportsReactID, core.SeverityWarning)
	diags := lint.NewAnalyzer(cfg).Analyze(file)
	require.Len(t, diags, 1)
	assert.Equal(t, "src/App.tsx", diags[0].FilePath)
	assert.Equal(t, core.SeverityWarning, diags[0].Severity)

	cfg = lint.NewConfig().Disable(react.JSXImportsReactID)
	assert.Empty(t, lint.NewAnalyzer(cfg).Analyze(file))
}
