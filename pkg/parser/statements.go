package parser

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/leapstack-labs/reactlint/pkg/source"
)

// Node kinds that carry no statement semantics at the top level.
var skippedKinds = map[string]bool{
	"comment":        true,
	"hash_bang_line": true,
}

// topLevelStatements converts the named children of the program node.
func topLevelStatements(root sitter.Node, content []byte) []source.Statement {
	count := root.NamedChildCount()
	stmts := make([]source.Statement, 0, count)

	for idx := range count {
		child := root.NamedChild(idx)
		if child.IsNull() || skippedKinds[child.Type()] {
			continue
		}

		if child.Type() == "import_statement" {
			stmts = append(stmts, convertImport(child, content))
			continue
		}

		stmts = append(stmts, &source.OtherStatement{
			Kind:  child.Type(),
			Range: nodeSpan(child),
		})
	}

	return stmts
}

// convertImport builds an ImportDeclaration from an import_statement node.
// TypeScript's `import x = require("m")` shares the node kind but has its
// source nested in an import_require_clause; it stays an OtherStatement.
func convertImport(node sitter.Node, content []byte) source.Statement {
	src := node.ChildByFieldName("source")
	if src.IsNull() {
		return &source.OtherStatement{
			Kind:  importRequireKind,
			Range: nodeSpan(node),
		}
	}

	decl := &source.ImportDeclaration{
		Range:    nodeSpan(node),
		TypeOnly: hasKeyword(node, "type"),
	}

	if src.Type() == "string" {
		decl.Specifier = stringValue(src, content)
		decl.Literal = true
	} else {
		decl.Specifier = nodeText(src, content)
	}

	return decl
}

// importRequireKind is the statement kind reported for `import x = require("m")`.
const importRequireKind = "import_require_statement"

// hasKeyword reports whether node has an anonymous child token equal to kw.
func hasKeyword(node sitter.Node, kw string) bool {
	for idx := range node.ChildCount() {
		child := node.Child(idx)
		if child.IsNull() || child.IsNamed() {
			continue
		}
		if child.Type() == kw {
			return true
		}
	}
	return false
}

func nodeSpan(node sitter.Node) source.Span {
	return source.Span{
		Start: int(node.StartByte()),
		End:   int(node.EndByte()),
	}
}

func nodeText(node sitter.Node, content []byte) string {
	start, end := int(node.StartByte()), int(node.EndByte())
	if start < 0 || end > len(content) || start > end {
		return ""
	}
	return string(content[start:end])
}
