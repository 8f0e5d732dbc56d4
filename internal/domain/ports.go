package domain

// Package is an opened OPC container (DOCX) exposing its parts by name.
type Package interface {
	// ReadPart returns the raw bytes of the named part, or ErrPartNotFound.
	ReadPart(name string) ([]byte, error)
}

// PackageOpener opens a DOCX container from memory.
type PackageOpener interface {
	Open(data []byte) (Package, error)
}

// PDFInfo holds the document information dictionary fields the checks use.
type PDFInfo struct {
	Title        string
	Author       string
	CreationDate string
}

// StructNode is one element of a tagged PDF logical structure tree.
// Children is always a slice, never a single element.
type StructNode struct {
	Role string
	Alt  string
	// Attributes holds the string entries of the element's attribute
	// dictionary, nil when the element has none.
	Attributes map[string]string
	Children   []*StructNode
}

// PDFDocument is a loaded PDF as seen by the checks.
type PDFDocument interface {
	Info() PDFInfo
	// XMPMetadata returns the catalog metadata stream, nil when absent.
	XMPMetadata() ([]byte, error)
	HasOutline() bool
	PageCount() int
	// PageText returns the text shown on the 1-based page.
	PageText(page int) (string, error)
	// StructTree returns the root of the structure tree, nil when untagged.
	StructTree() (*StructNode, error)
}

// PDFLoader opens a PDF from memory.
type PDFLoader interface {
	Load(data []byte) (PDFDocument, error)
}

// TypeDetector resolves the MIME type of an input when the caller did not
// declare a usable one.
type TypeDetector interface {
	Detect(fileName string, data []byte) string
	Resolve(declared, fileName string, data []byte) string
}

// Logger is the structured logger the analyzers report degradations to.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// ConfigLoader loads the analyzer configuration.
type ConfigLoader interface {
	Load(path string) (AnalyzerConfig, error)
}

// ReportCache stores reports keyed by a digest of the analyzed content and
// configuration. dir is the directory holding the .wcag state folder.
type ReportCache interface {
	Load(dir, key string) (*Report, error)
	Save(dir, key string, report *Report) error
	Invalidate(dir string) error
}

// ScoreHistory persists one entry per recorded analysis.
type ScoreHistory interface {
	Save(dir string, entries ...ScoreEntry) error
	Load(dir string) ([]ScoreEntry, error)
}

// GitInfo reads version-control state of the directory documents live in.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// DocumentScanner lists the documents below a directory.
type DocumentScanner interface {
	Scan(root string, excludePaths ...string) ([]string, error)
}
