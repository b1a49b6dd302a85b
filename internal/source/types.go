package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileTranscodedUTF16 indicates the on-disk bytes were UTF-16 and were
	// converted to UTF-8 on load.
	FileTranscodedUTF16
)

// File captures metadata and content for a single source file.
//
// Content is always UTF-8 after loading. LineIdx holds the byte offset of
// every '\n'; CharIdx holds the byte offset of every character, so that
// character-unit spans can be resolved back to bytes, lines and columns.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	CharIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
// Col counts characters, not bytes.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
