package source

import "strings"

// File is a parsed source file.
type File struct {
	// Name is the file name or path exactly as supplied by the host.
	Name string
	// Text is the raw file content.
	Text []byte
	// Statements are the top-level statements in source order.
	Statements []Statement
	// Language is the grammar the file was parsed with (tsx, typescript, javascript).
	Language string
	// HasErrors is set when the parser had to recover from syntax errors.
	HasErrors bool
}

// NewFile builds a File from already-parsed statements.
func NewFile(name string, text []byte, stmts ...Statement) *File {
	return &File{Name: name, Text: text, Statements: stmts}
}

// Imports returns the import declarations among the top-level statements,
// preserving order.
func (f *File) Imports() []*ImportDeclaration {
	if f == nil {
		return nil
	}
	var imports []*ImportDeclaration
	for _, stmt := range f.Statements {
		if imp, ok := stmt.(*ImportDeclaration); ok {
			imports = append(imports, imp)
		}
	}
	return imports
}

// HasExtension reports whether the file name ends with one of exts.
// Matching is a literal, case-sensitive suffix comparison.
func (f *File) HasExtension(exts ...string) bool {
	if f == nil {
		return false
	}
	for _, ext := range exts {
		if strings.HasSuffix(f.Name, ext) {
			return true
		}
	}
	return false
}

// Position converts a byte offset into a line/column position.
// Callers converting many offsets should build a LineIndex once instead.
func (f *File) Position(offset int) Position {
	return NewLineIndex(f.Text).Position(offset)
}
