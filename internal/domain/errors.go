package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedType is returned before analysis when the declared MIME
	// type is neither DOCX nor PDF.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrCorruptContainer is returned when the archive or PDF cannot be opened at all.
	ErrCorruptContainer = errors.New("corrupt document container")

	// ErrPartNotFound is returned by a Package for a missing entry.
	ErrPartNotFound = errors.New("part not found")
)

// ParseFileType maps a declared MIME type to a FileType. Parameters such as
// "; charset=binary" are ignored.
func ParseFileType(mime string) (FileType, error) {
	base, _, _ := strings.Cut(mime, ";")
	switch strings.ToLower(strings.TrimSpace(base)) {
	case MIMETypePDF:
		return FileTypePDF, nil
	case MIMETypeDOCX:
		return FileTypeDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mime)
	}
}
