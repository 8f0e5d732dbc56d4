// Package fixtures builds small but well-formed DOCX and PDF documents for
// tests.
package fixtures

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// DOCX describes a Word document to generate.
type DOCX struct {
	Title string
	Lang  string
	// Headings lists heading levels in body order.
	Headings []int
	// Images lists the alt text of each image; empty means none.
	Images []string
	// Omit names package parts to leave out.
	Omit []string
}

const nsDecl = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"`

// Build returns the zipped package.
func (d DOCX) Build() []byte {
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"docProps/core.xml":   d.core(),
		"word/styles.xml":     d.styles(),
		"word/document.xml":   d.document(),
	}
	for _, name := range d.Omit {
		delete(parts, name)
	}
	return Zip(parts)
}

func (d DOCX) core() string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/">` +
		`<dc:title>` + d.Title + `</dc:title><dc:creator>Test Author</dc:creator>` +
		`<dcterms:created>2024-05-06T07:08:09Z</dcterms:created></cp:coreProperties>`
}

func (d DOCX) styles() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:styles ` + nsDecl + `>`)
	if d.Lang != "" {
		b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr><w:lang w:val="` + d.Lang + `"/></w:rPr></w:rPrDefault></w:docDefaults>`)
	}
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="Heading%d"><w:name w:val="heading %d"/><w:basedOn w:val="Normal"/></w:style>`, i, i)
	}
	b.WriteString(`</w:styles>`)
	return b.String()
}

func (d DOCX) document() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document ` + nsDecl + `><w:body>`)
	for i, lvl := range d.Headings {
		fmt.Fprintf(&b, `<w:p><w:pPr><w:pStyle w:val="Heading%d"/></w:pPr><w:r><w:t>Section %d</w:t></w:r></w:p>`, lvl, i+1)
		b.WriteString(`<w:p><w:r><w:t>Body text.</w:t></w:r></w:p>`)
	}
	for i, alt := range d.Images {
		fmt.Fprintf(&b, `<w:p><w:r><w:drawing><wp:inline><wp:docPr id="%d" name="Picture %d" descr="%s"/></wp:inline></w:drawing></w:r></w:p>`, i+1, i+1, alt)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// AccessibleDOCX passes every DOCX check.
func AccessibleDOCX() []byte {
	return DOCX{Title: "Quarterly Report", Lang: "en-US", Headings: []int{1, 2, 2, 3}, Images: []string{"Revenue chart"}}.Build()
}

// Zip writes parts into an archive in name order.
func Zip(parts map[string]string) []byte {
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
