// Package mimesniff resolves the MIME type of an input document.
package mimesniff

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

var byExtension = map[string]string{
	".pdf":  domain.MIMETypePDF,
	".docx": domain.MIMETypeDOCX,
}

// Detector implements domain.TypeDetector.
type Detector struct{}

func New() *Detector { return &Detector{} }

// Detect trusts a .pdf or .docx extension, then falls back to content
// sniffing. Unsupported content is returned as sniffed so the caller can
// report it.
func (d *Detector) Detect(fileName string, data []byte) string {
	if mime, ok := byExtension[strings.ToLower(filepath.Ext(fileName))]; ok {
		return mime
	}

	sniffed := mimetype.Detect(data)
	for m := sniffed; m != nil; m = m.Parent() {
		if m.Is(domain.MIMETypePDF) || m.Is(domain.MIMETypeDOCX) {
			return m.String()
		}
	}
	return sniffed.String()
}

// Resolve picks the declared type when it is meaningful and detects it
// otherwise. Browsers and curl often send application/octet-stream.
func (d *Detector) Resolve(declared, fileName string, data []byte) string {
	base, _, _ := strings.Cut(declared, ";")
	switch strings.ToLower(strings.TrimSpace(base)) {
	case "", "application/octet-stream", "binary/octet-stream", "application/zip", "application/x-zip-compressed":
		return d.Detect(fileName, data)
	}
	return declared
}
