// Package pdfengine loads PDFs with pdfcpu and exposes them as
// domain.PDFDocument.
package pdfengine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// NewConfiguration returns the pdfcpu configuration used for analysis.
// Validation is relaxed because the checks only read.
func NewConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Loader implements domain.PDFLoader. The configuration is built once and
// shared; each Load works on a shallow copy.
type Loader struct {
	conf *model.Configuration
}

func New(conf *model.Configuration) *Loader {
	if conf == nil {
		conf = NewConfiguration()
	}
	return &Loader{conf: conf}
}

// Load parses the cross-reference table and catalog. Any failure here makes
// the whole document unreadable.
func (l *Loader) Load(data []byte) (doc domain.PDFDocument, err error) {
	defer recoverAs(&err, domain.ErrCorruptContainer)

	conf := *l.conf
	ctx, err := api.ReadContext(bytes.NewReader(data), &conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptContainer, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptContainer, err)
	}
	catalog, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptContainer, err)
	}
	return &Document{ctx: ctx, catalog: catalog}, nil
}

// Document is a PDF loaded into a pdfcpu context.
type Document struct {
	ctx     *model.Context
	catalog types.Dict
}

func (d *Document) PageCount() int { return d.ctx.PageCount }

// Info reads Title, Author and CreationDate from the information dictionary.
func (d *Document) Info() domain.PDFInfo {
	if d.ctx.Info == nil {
		return domain.PDFInfo{}
	}
	info, err := d.ctx.DereferenceDict(*d.ctx.Info)
	if err != nil || info == nil {
		return domain.PDFInfo{}
	}
	return domain.PDFInfo{
		Title:        d.text(info, "Title"),
		Author:       d.text(info, "Author"),
		CreationDate: d.text(info, "CreationDate"),
	}
}

// XMPMetadata returns the decoded catalog metadata stream.
func (d *Document) XMPMetadata() ([]byte, error) {
	ref, ok := d.catalog.Find("Metadata")
	if !ok {
		return nil, nil
	}
	obj, err := d.ctx.Dereference(ref)
	if err != nil {
		return nil, fmt.Errorf("resolving metadata: %w", err)
	}
	sd, ok := obj.(types.StreamDict)
	if !ok {
		return nil, fmt.Errorf("metadata is %T, not a stream", obj)
	}
	if err := sd.Decode(); err != nil {
		if len(sd.FilterPipeline) == 0 && len(sd.Raw) > 0 {
			return sd.Raw, nil
		}
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	if len(sd.Content) == 0 {
		return sd.Raw, nil
	}
	return sd.Content, nil
}

// HasOutline reports whether the catalog has an outline with at least one item.
func (d *Document) HasOutline() bool {
	ref, ok := d.catalog.Find("Outlines")
	if !ok {
		return false
	}
	outlines, err := d.ctx.DereferenceDict(ref)
	if err != nil || outlines == nil {
		return false
	}
	_, ok = outlines.Find("First")
	return ok
}

// PageText returns the text shown by the page's content streams.
func (d *Document) PageText(page int) (text string, err error) {
	defer recoverAs(&err, nil)

	r, err := pdfcpu.ExtractPageContent(d.ctx, page)
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", page, err)
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading page %d: %w", page, err)
	}
	return ExtractText(data), nil
}

func (d *Document) text(dict types.Dict, key string) string {
	obj, ok := dict.Find(key)
	if !ok {
		return ""
	}
	obj, err := d.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	return decodeString(obj)
}

// decodeString turns a PDF text object into UTF-8. Names are returned as-is.
func decodeString(obj types.Object) string {
	switch v := obj.(type) {
	case types.StringLiteral:
		s, err := types.StringLiteralToString(v)
		if err != nil {
			return string(v)
		}
		return s
	case types.HexLiteral:
		s, err := types.HexLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	case types.Name:
		return string(v)
	}
	return ""
}

// recoverAs turns a pdfcpu panic on malformed input into an error.
func recoverAs(err *error, sentinel error) {
	r := recover()
	if r == nil {
		return
	}
	if sentinel != nil {
		*err = fmt.Errorf("%w: %v", sentinel, r)
		return
	}
	*err = fmt.Errorf("pdf engine: %v", r)
}
