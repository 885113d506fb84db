package source

// FileFlags encodes metadata about a document.
type FileFlags uint8 // метаданные

const (
	// FileVirtual indicates the document was added from memory (editor buffer, stdin, test).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	FileNormalizedCRLF
)

// File captures the content of one markup document together with its line index.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a document.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
