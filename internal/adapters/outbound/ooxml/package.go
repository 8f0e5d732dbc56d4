// Package ooxml opens Office Open XML containers held in memory.
package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// DefaultMaxPartSize caps the decompressed size of a single part.
const DefaultMaxPartSize int64 = 64 << 20

// Opener implements domain.PackageOpener over archive/zip.
type Opener struct {
	MaxPartSize int64
}

// New creates an Opener with DefaultMaxPartSize.
func New() *Opener { return &Opener{MaxPartSize: DefaultMaxPartSize} }

// Open reads the zip central directory. Parts are decompressed on demand.
func (o *Opener) Open(data []byte) (domain.Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptContainer, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		// Part names are case-insensitive in OPC.
		files[strings.ToLower(strings.TrimPrefix(f.Name, "/"))] = f
	}

	limit := o.MaxPartSize
	if limit <= 0 {
		limit = DefaultMaxPartSize
	}
	return &Package{files: files, limit: limit}, nil
}

// Package is an opened OPC container.
type Package struct {
	files map[string]*zip.File
	limit int64
}

// ReadPart returns the decompressed bytes of the named part.
func (p *Package) ReadPart(name string) ([]byte, error) {
	f, ok := p.files[strings.ToLower(strings.TrimPrefix(name, "/"))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPartNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, p.limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if int64(len(data)) > p.limit {
		return nil, fmt.Errorf("reading %s: part exceeds %d bytes", name, p.limit)
	}
	return data, nil
}

// Parts lists the part names in the container, sorted.
func (p *Package) Parts() []string {
	names := make([]string, 0, len(p.files))
	for _, f := range p.files {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
