package lexer

import (
	"bytes"

	"tagwise/internal/source"
)

// Cursor представляет собой позицию в документе
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a new cursor for the provided document.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f}
}

// EOF проверяет, достигнут ли конец документа
func (c *Cursor) EOF() bool {
	return c.Off >= c.File.Len()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt reads the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.File.Len() {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// HasPrefix reports whether the remaining input starts with p.
func (c *Cursor) HasPrefix(p string) bool {
	if c.EOF() {
		return false
	}
	return bytes.HasPrefix(c.File.Content[c.Off:], []byte(p))
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Skip advances n bytes, stopping at the end of input.
func (c *Cursor) Skip(n uint32) {
	c.Off = min(c.Off+n, c.File.Len())
}

// SkipPast advances until just after the first occurrence of terminator, or to EOF.
// It reports whether the terminator was found.
func (c *Cursor) SkipPast(terminator string) bool {
	if c.EOF() {
		return false
	}
	idx := bytes.Index(c.File.Content[c.Off:], []byte(terminator))
	if idx < 0 {
		c.Off = c.File.Len()
		return false
	}
	c.Skip(uint32(idx + len(terminator))) // #nosec G115 -- bounded by content length
	return true
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
