package parser

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/src-d/enry/v2"
)

// Language identifies a tree-sitter grammar.
type Language string

// Supported grammars.
const (
	LanguageTSX        Language = "tsx"
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// grammarFuncs maps languages to their tree-sitter GetLanguage functions.
var grammarFuncs = map[Language]func() unsafe.Pointer{
	LanguageTSX:        tsx.GetLanguage,
	LanguageTypeScript: typescript.GetLanguage,
	LanguageJavaScript: javascript.GetLanguage,
}

// extensionLanguages maps file extensions to grammars.
// The javascript grammar understands JSX.
var extensionLanguages = map[string]Language{
	".tsx": LanguageTSX,
	".ts":  LanguageTypeScript,
	".mts": LanguageTypeScript,
	".cts": LanguageTypeScript,
	".jsx": LanguageJavaScript,
	".js":  LanguageJavaScript,
	".mjs": LanguageJavaScript,
	".cjs": LanguageJavaScript,
}

// enryLanguages maps linguist language names to grammars.
var enryLanguages = map[string]Language{
	"TSX":        LanguageTSX,
	"TypeScript": LanguageTypeScript,
	"JavaScript": LanguageJavaScript,
	"JSX":        LanguageJavaScript,
}

var grammarCache sync.Map

// grammarFor returns the tree-sitter grammar for lang, or nil if unsupported.
func grammarFor(lang Language) *sitter.Language {
	if cached, ok := grammarCache.Load(lang); ok {
		if grammar, castOK := cached.(*sitter.Language); castOK {
			return grammar
		}
	}

	fn, ok := grammarFuncs[lang]
	if !ok {
		return nil
	}

	grammar := sitter.NewLanguage(fn())
	grammarCache.Store(lang, grammar)
	return grammar
}

// Extensions returns the file extensions the parser accepts, sorted.
func Extensions() []string {
	return []string{".cjs", ".cts", ".js", ".jsx", ".mjs", ".mts", ".ts", ".tsx"}
}

// IsSupported reports whether name has an extension the parser accepts.
func IsSupported(name string) bool {
	_, ok := extensionLanguages[filepath.Ext(name)]
	return ok
}

// DetectLanguage picks the grammar for a file. The extension decides when
// it is one of ours; enry only vetoes Qt Linguist translation files, which
// share the .ts extension but are XML. Files without a known extension
// (node scripts with a shebang, for instance) are classified by enry.
func DetectLanguage(name string, content []byte) (Language, error) {
	base := filepath.Base(name)

	if lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(base))]; ok {
		if lang == LanguageTypeScript && enry.GetLanguage(base, content) == "XML" {
			return "", fmt.Errorf("%w: %s (XML)", ErrUnsupportedLanguage, name)
		}
		return lang, nil
	}

	if lang, ok := enryLanguages[enry.GetLanguage(base, content)]; ok {
		return lang, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, name)
}
