package fixtures

import (
	"fmt"
	"strings"
)

// PDF describes a single-page PDF to generate.
type PDF struct {
	Title string
	// Lang is written as XMP dc:language when set.
	Lang     string
	Text     string
	Outline  bool
	Tagged   bool
	// FigureAlts lists the Alt of each Figure element of a tagged PDF.
	FigureAlts []string
}

// Build lays the objects out with a classic cross-reference table.
func (p PDF) Build() []byte {
	objs := []string{"", // catalog, filled in below
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		stream("", "BT\n/F1 12 Tf\n72 720 Td\n("+escape(p.Text)+") Tj\nET"),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	add := func(body string) int {
		objs = append(objs, body)
		return len(objs)
	}

	catalog := "<< /Type /Catalog /Pages 2 0 R"
	if p.Outline {
		outlines := len(objs) + 1
		add(fmt.Sprintf("<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count 1 >>", outlines+1, outlines+1))
		add(fmt.Sprintf("<< /Title (Start) /Parent %d 0 R /Dest [3 0 R /Fit] >>", outlines))
		catalog += fmt.Sprintf(" /Outlines %d 0 R", outlines)
	}
	if p.Lang != "" {
		xmp := `<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` +
			`<rdf:Description rdf:about="" xmlns:dc="http://purl.org/dc/elements/1.1/">` +
			`<dc:language><rdf:Bag><rdf:li>` + p.Lang + `</rdf:li></rdf:Bag></dc:language>` +
			`</rdf:Description></rdf:RDF></x:xmpmeta>`
		catalog += fmt.Sprintf(" /Metadata %d 0 R", add(stream("/Type /Metadata /Subtype /XML", xmp)))
	}
	if p.Tagged {
		root := len(objs) + 1
		doc := root + 1
		first := doc + 1
		kids := make([]string, len(p.FigureAlts))
		for i := range p.FigureAlts {
			kids[i] = fmt.Sprintf("%d 0 R", first+i)
		}
		add(fmt.Sprintf("<< /Type /StructTreeRoot /K %d 0 R >>", doc))
		add(fmt.Sprintf("<< /Type /StructElem /S /Document /P %d 0 R /K [%s] >>", root, strings.Join(kids, " ")))
		for i, alt := range p.FigureAlts {
			entry := ""
			if alt != "" {
				entry = " /Alt (" + escape(alt) + ")"
			}
			add(fmt.Sprintf("<< /Type /StructElem /S /Figure /P %d 0 R%s /K %d >>", doc, entry, i))
		}
		catalog += fmt.Sprintf(" /StructTreeRoot %d 0 R /MarkInfo << /Marked true >>", root)
	}
	objs[0] = catalog + " >>"

	info := 0
	if p.Title != "" {
		info = add("<< /Title (" + escape(p.Title) + ") /Author (Test Author) /CreationDate (D:20240506070809Z) >>")
	}
	return layout(objs, info)
}

// AccessiblePDF passes every PDF check.
func AccessiblePDF() []byte {
	return PDF{
		Title:      "Annual Report",
		Lang:       "en-US",
		Text:       strings.Repeat("Accessible documents have real text. ", 3),
		Outline:    true,
		Tagged:     true,
		FigureAlts: []string{"Revenue chart"},
	}.Build()
}

// ScannedPDF has no text, metadata or tags.
func ScannedPDF() []byte {
	return PDF{}.Build()
}

func layout(objects []string, info int) []byte {
	var b strings.Builder
	b.WriteString("%PDF-1.7\n")

	offsets := make([]int, len(objects)+1)
	for i, body := range objects {
		offsets[i+1] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objects)+1)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R", len(objects)+1)
	if info > 0 {
		fmt.Fprintf(&b, " /Info %d 0 R", info)
	}
	fmt.Fprintf(&b, " >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return []byte(b.String())
}

func stream(dict, content string) string {
	return fmt.Sprintf("<< %s /Length %d >>\nstream\n%s\nendstream", dict, len(content), content)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	return strings.ReplaceAll(s, ")", `\)`)
}
