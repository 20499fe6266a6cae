package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEscape(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{`\n`, "\n"},
		{`\t`, "\t"},
		{`\\`, `\`},
		{`\"`, `"`},
		{`\'`, `'`},
		{`\0`, "\x00"},
		{`\x41`, "A"},
		{`\u0041`, "A"},
		{`\u{1F600}`, "\U0001F600"},
		{"\\\n", ""},
		{`\q`, "q"},
		{`\xZZ`, "x"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeEscape(tt.seq))
		})
	}
}
