package source

// Statement is a top-level statement of a source file.
// The set of implementations is closed: *ImportDeclaration and *OtherStatement.
type Statement interface {
	// Span returns the byte range of the statement.
	Span() Span
	statement()
}

// ImportDeclaration is an ES module import statement such as
// `import React from "react"` or `import "./styles.css"`.
//
// `import x = require("m")` and `export … from "m"` are not import
// declarations; they are reported as OtherStatement.
type ImportDeclaration struct {
	// Specifier is the module specifier text with quotes removed and
	// escape sequences decoded.
	Specifier string
	// Literal is true when the specifier is a plain string literal.
	Literal bool
	// TypeOnly marks `import type … from "m"`.
	TypeOnly bool
	Range    Span
}

// Span implements Statement.
func (d *ImportDeclaration) Span() Span { return d.Range }

func (*ImportDeclaration) statement() {}

// IsLiteral reports whether the declaration imports exactly the given
// module specifier through a string literal.
func (d *ImportDeclaration) IsLiteral(specifier string) bool {
	return d != nil && d.Literal && d.Specifier == specifier
}

// OtherStatement is any top-level statement that is not an import declaration.
type OtherStatement struct {
	// Kind is the syntax node kind, e.g. "export_statement".
	Kind  string
	Range Span
}

// Span implements Statement.
func (s *OtherStatement) Span() Span { return s.Range }

func (*OtherStatement) statement() {}

// Import is a convenience constructor for a literal import declaration.
func Import(specifier string) *ImportDeclaration {
	return &ImportDeclaration{Specifier: specifier, Literal: true}
}
