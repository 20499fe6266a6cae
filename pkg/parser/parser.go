// Package parser turns JavaScript and TypeScript source text into a
// source.File.
//
// # Usage
//
//	file, err := parser.Parse("src/Widget.tsx", content)
//	if err != nil {
//	    // handle error
//	}
//	for _, imp := range file.Imports() {
//	    fmt.Println(imp.Specifier)
//	}
//
// Parsing is done with tree-sitter. The grammar is picked from the file
// name (see languages.go). Only the top level of the syntax tree is
// converted: import statements become *source.ImportDeclaration and every
// other named node (comments aside) becomes *source.OtherStatement.
//
// Syntax errors never fail a parse. Tree-sitter recovers and the resulting
// file has HasErrors set.
package parser

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/leapstack-labs/reactlint/pkg/source"
)

// Parser parses source files. A Parser is safe for concurrent use; the
// underlying tree-sitter parsers are pooled per grammar.
type Parser struct {
	mu    sync.Mutex
	pools map[Language]*sync.Pool
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{pools: make(map[Language]*sync.Pool)}
}

var defaultParser = New()

// Parse parses content using a shared default Parser.
func Parse(name string, content []byte) (*source.File, error) {
	return defaultParser.Parse(context.Background(), name, content)
}

// Parse parses content as the language implied by name.
func (p *Parser) Parse(ctx context.Context, name string, content []byte) (*source.File, error) {
	lang, err := DetectLanguage(name, content)
	if err != nil {
		return nil, err
	}
	return p.ParseAs(ctx, lang, name, content)
}

// ParseAs parses content with an explicit grammar.
func (p *Parser) ParseAs(ctx context.Context, lang Language, name string, content []byte) (*source.File, error) {
	pool, err := p.pool(lang)
	if err != nil {
		return nil, err
	}

	tsParser, ok := pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}
	defer pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("parse %s: %w", name, errNoRootNode)
	}

	return &source.File{
		Name:       name,
		Text:       content,
		Language:   string(lang),
		Statements: topLevelStatements(root, content),
		HasErrors:  root.HasError(),
	}, nil
}

// pool returns the parser pool for lang, creating it on first use.
func (p *Parser) pool(lang Language) (*sync.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pool, ok := p.pools[lang]; ok {
		return pool, nil
	}

	grammar := grammarFor(lang)
	if grammar == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	pool := &sync.Pool{
		New: func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(grammar)
			return tsParser
		},
	}
	p.pools[lang] = pool
	return pool, nil
}
