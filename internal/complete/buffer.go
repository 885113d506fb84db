package complete

import (
	"tagwise/internal/lexer"
	"tagwise/internal/source"
)

// TextBuffer is an in-memory Buffer.
type TextBuffer struct {
	path   string
	text   string
	cursor uint32
	edits  int
}

func NewTextBuffer(path, text string, cursor uint32) *TextBuffer {
	b := &TextBuffer{path: path, text: text}
	b.SetCursor(cursor)
	return b
}

func (b *TextBuffer) String() string { return b.text }

func (b *TextBuffer) Cursor() uint32 { return b.cursor }

// Edits counts Replace calls.
func (b *TextBuffer) Edits() int { return b.edits }

func (b *TextBuffer) SetCursor(off uint32) {
	b.cursor = min(off, textLen(b.text))
}

func (b *TextBuffer) Replace(start, end uint32, text string) {
	n := textLen(b.text)
	start, end = min(start, n), min(end, n)
	if end < start {
		start, end = end, start
	}
	b.text = b.text[:start] + text + b.text[end:]
	b.cursor = min(b.cursor, textLen(b.text))
	b.edits++
}

// Navigator lexes the current text and positions a navigator at the cursor.
// The text is lexed as is so token offsets stay buffer offsets.
func (b *TextBuffer) Navigator() *StreamNavigator {
	file := source.NewFile(b.path, []byte(b.text), source.FileVirtual)
	return NewStreamNavigator(lexer.Tokenize(file), b.cursor)
}
