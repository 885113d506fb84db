package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// NewFile builds a File from already normalized bytes, computing LineIdx and Hash.
func NewFile(path string, content []byte, flags FileFlags) *File {
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// FromString wraps an in-memory buffer (for example an open editor document).
func FromString(path, text string) *File {
	content, hadCRLF := normalizeCRLF([]byte(text))
	flags := FileVirtual
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return NewFile(path, content, flags)
}

// Load reads a document from disk, normalizes CRLF/BOM, and calls NewFile.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return NewFile(path, content, flags), nil
}

// Len returns the content length in bytes.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// Text returns the content in [span.Start, span.End), clamped to the document.
func (f *File) Text(span Span) string {
	end := min(span.End, f.Len())
	if span.Start >= end {
		return ""
	}
	return string(f.Content[span.Start:end])
}

// Resolve converts a span into line and column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Position converts a byte offset into a 1-based line/column pair.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, min(off, f.Len()))
}

// Offset converts a 1-based line and a 1-based byte column into an offset.
// Columns past the end of the line are clamped to the line end.
func (f *File) Offset(line, col uint32) uint32 {
	if line == 0 {
		return 0
	}
	start := f.lineStart(line)
	end := f.lineEnd(line)
	if col == 0 {
		return start
	}
	off := start + col - 1
	if off > end {
		return end
	}
	return off
}

// GetLine возвращает строку с заданным номером (1-based) без перевода строки.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.LineIdx)+1 {
		return ""
	}
	start := f.lineStart(lineNum)
	end := f.lineEnd(lineNum)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// LineCount returns the number of lines, counting a trailing partial line.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

func (f *File) lineStart(line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := int(line) - 2
	if idx < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return f.Len()
}

func (f *File) lineEnd(line uint32) uint32 {
	idx := int(line) - 1
	if idx >= 0 && idx < len(f.LineIdx) {
		return f.LineIdx[idx]
	}
	return f.Len()
}
