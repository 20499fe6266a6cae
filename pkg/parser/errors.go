package parser

import "errors"

// ErrUnsupportedLanguage is returned for files no grammar is registered for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var (
	errPoolType   = errors.New("parser pool returned unexpected type")
	errNoRootNode = errors.New("syntax tree has no root node")
)
