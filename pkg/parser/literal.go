package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// stringValue returns the cooked value of a string literal node: the text
// between the quotes with escape sequences decoded.
func stringValue(node sitter.Node, content []byte) string {
	var b strings.Builder

	for idx := range node.NamedChildCount() {
		child := node.NamedChild(idx)
		if child.IsNull() {
			continue
		}
		text := nodeText(child, content)
		if child.Type() == "escape_sequence" {
			b.WriteString(decodeEscape(text))
		} else {
			b.WriteString(text)
		}
	}

	return b.String()
}

// decodeEscape decodes one JavaScript escape sequence, including its
// leading backslash. Unknown escapes decode to the escaped character, as in
// non-strict JavaScript.
func decodeEscape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}

	body := seq[1:]
	switch body[0] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		if len(body) == 1 {
			return "\x00"
		}
	case '\n', '\r':
		// Line continuation.
		return ""
	case 'x':
		if r, ok := parseHexRune(body[1:]); ok {
			return string(r)
		}
	case 'u':
		hex := strings.TrimSuffix(strings.TrimPrefix(body[1:], "{"), "}")
		if r, ok := parseHexRune(hex); ok {
			return string(r)
		}
	}

	r, _ := utf8.DecodeRuneInString(body)
	if r == '\u2028' || r == '\u2029' {
		return ""
	}
	return string(r)
}

func parseHexRune(hex string) (rune, bool) {
	if hex == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, false
	}
	return rune(n), true
}
