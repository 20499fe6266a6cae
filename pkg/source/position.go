package source

import (
	"fmt"
	"sort"
)

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number (in bytes)
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a byte range in source code. End is exclusive.
type Span struct {
	Start int
	End   int
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// LineIndex maps byte offsets to line/column positions.
type LineIndex struct {
	starts []int
	size   int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text []byte) *LineIndex {
	starts := []int{0}
	for i, b := range text {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(text)}
}

// Position returns the position of offset. Offsets outside the text are
// clamped to its bounds.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > li.size {
		offset = li.size
	}
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
	return Position{
		Line:   line + 1,
		Column: offset - li.starts[line] + 1,
		Offset: offset,
	}
}

// LineCount returns the number of lines in the indexed text.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}
