// Package source holds the parsed representation of one JavaScript or
// TypeScript file as seen by lint rules.
//
// A File carries the file name, its raw text, and the ordered list of
// top-level statements. Statements are a closed set of variants:
//
//	*ImportDeclaration  import … from "module"
//	*OtherStatement     anything else at the top level
//
// Rules select the variants they care about with a type switch. Files are
// produced by pkg/parser and must be treated as read-only by consumers.
package source
