package docx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/docx"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

const (
	nsW  = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`
	nsWP = `xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"`
)

// memPackage is an in-memory OPC package.
type memPackage map[string]string

func (m memPackage) ReadPart(name string) ([]byte, error) {
	s, ok := m[name]
	if !ok {
		return nil, domain.ErrPartNotFound
	}
	return []byte(s), nil
}

func coreXML(title string) string {
	return `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/">` +
		`<dc:title>` + title + `</dc:title><dc:creator>Jane Doe</dc:creator>` +
		`<dcterms:created>2024-03-01T10:00:00Z</dcterms:created></cp:coreProperties>`
}

func stylesXML(lang string, extra ...string) string {
	var b strings.Builder
	b.WriteString(`<w:styles ` + nsW + `>`)
	if lang != "" {
		b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr><w:lang w:val="` + lang + `"/></w:rPr></w:rPrDefault></w:docDefaults>`)
	}
	b.WriteString(`<w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)
	for i := 1; i <= 3; i++ {
		n := string(rune('0' + i))
		b.WriteString(`<w:style w:type="paragraph" w:styleId="Heading` + n + `"><w:name w:val="heading ` + n + `"/><w:basedOn w:val="Normal"/></w:style>`)
	}
	for _, e := range extra {
		b.WriteString(e)
	}
	b.WriteString(`</w:styles>`)
	return b.String()
}

func documentXML(paras ...string) string {
	return `<w:document ` + nsW + ` ` + nsWP + `><w:body>` + strings.Join(paras, "") + `</w:body></w:document>`
}

func para(style, text string) string {
	ppr := ""
	if style != "" {
		ppr = `<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`
	}
	return `<w:p>` + ppr + `<w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func image(descr, title string) string {
	return `<w:p><w:r><w:drawing><wp:inline><wp:docPr id="1" name="Picture 1" descr="` + descr +
		`" title="` + title + `"/></wp:inline></w:drawing></w:r></w:p>`
}

func compliantPackage() memPackage {
	return memPackage{
		docx.PartCoreProps: coreXML("Quarterly Report"),
		docx.PartStyles:    stylesXML("en-US"),
		docx.PartDocument: documentXML(
			para("Heading1", "Intro"),
			para("", "Body text"),
			para("Heading2", "Details"),
			image("A bar chart of revenue", ""),
		),
	}
}

func analyze(t *testing.T, pkg memPackage) ([]domain.Violation, []rules.Result, domain.Metadata) {
	t.Helper()
	results, meta := docx.Analyze(pkg, domain.DefaultConfig())
	return rules.Collect(nil, results...), results, meta
}

func byID(findings []domain.Violation, id string) []domain.Violation {
	var out []domain.Violation
	for _, f := range findings {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

func only(t *testing.T, findings []domain.Violation, id string) domain.Violation {
	t.Helper()
	got := byID(findings, id)
	require.Len(t, got, 1, "findings for %s", id)
	return got[0]
}

func TestAnalyze_CompliantDocument(t *testing.T) {
	findings, results, meta := analyze(t, compliantPackage())

	ids := make([]string, len(findings))
	for i, f := range findings {
		ids[i] = f.ID
		assert.Equal(t, domain.StatusPass, f.Status, f.ID)
	}
	assert.Equal(t, []string{"meta-title", "meta-lang", "headings-present", "heading-order", "images-alt"}, ids)
	for _, r := range results {
		assert.Nil(t, r.Skip, r.Rule.ID)
	}

	assert.Equal(t, "Quarterly Report", only(t, findings, "meta-title").Details)
	assert.Equal(t, "en-US", only(t, findings, "meta-lang").Details)
	assert.Equal(t, domain.Metadata{
		Title:     "Quarterly Report",
		Author:    "Jane Doe",
		CreatedAt: "2024-03-01T10:00:00Z",
		Language:  "en-US",
	}, meta)
}

func TestAnalyze_FindingsCarryRuleFields(t *testing.T) {
	findings, _, _ := analyze(t, compliantPackage())
	f := only(t, findings, "images-alt")
	assert.Equal(t, "1.1.1", f.WCAGCriterion)
	assert.Equal(t, domain.ImpactCritical, f.Impact)
	assert.NotEmpty(t, f.Help)
}

func TestAnalyze_Title(t *testing.T) {
	t.Run("blank title fails", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartCoreProps] = coreXML("   ")
		findings, _, _ := analyze(t, pkg)
		assert.Equal(t, domain.StatusFail, only(t, findings, "meta-title").Status)
	})

	t.Run("missing core part fails and degrades", func(t *testing.T) {
		pkg := compliantPackage()
		delete(pkg, docx.PartCoreProps)
		findings, results, meta := analyze(t, pkg)
		assert.Equal(t, domain.StatusFail, only(t, findings, "meta-title").Status)
		require.NotNil(t, results[0].Skip)
		assert.ErrorIs(t, results[0].Skip, domain.ErrPartNotFound)
		assert.Empty(t, meta.Title)
	})

	t.Run("unparsable core part fails", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartCoreProps] = `<cp:coreProperties><dc:title>broken`
		findings, _, _ := analyze(t, pkg)
		assert.Equal(t, domain.StatusFail, only(t, findings, "meta-title").Status)
	})
}

func TestAnalyze_Language(t *testing.T) {
	t.Run("no marker warns", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartStyles] = stylesXML("")
		findings, _, meta := analyze(t, pkg)
		assert.Equal(t, domain.StatusWarning, only(t, findings, "meta-lang").Status)
		assert.Empty(t, meta.Language)
	})

	t.Run("unparsable styles fall back to pattern", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartStyles] = `<w:styles><w:lang w:val="pl-PL"/><w:style>`
		findings, results, _ := analyze(t, pkg)
		lang := only(t, findings, "meta-lang")
		assert.Equal(t, domain.StatusPass, lang.Status)
		assert.Equal(t, "pl-PL", lang.Details)
		assert.NotNil(t, results[1].Skip)
	})

	t.Run("missing styles warns", func(t *testing.T) {
		pkg := compliantPackage()
		delete(pkg, docx.PartStyles)
		findings, _, _ := analyze(t, pkg)
		assert.Equal(t, domain.StatusWarning, only(t, findings, "meta-lang").Status)
	})
}

func TestAnalyze_Headings(t *testing.T) {
	t.Run("skip is reported as warning", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartDocument] = documentXML(para("Heading1", "Intro"), para("Heading3", "Deep"))
		findings, _, _ := analyze(t, pkg)

		assert.Equal(t, domain.StatusPass, only(t, findings, "headings-present").Status)
		order := only(t, findings, "heading-order")
		assert.Equal(t, domain.StatusWarning, order.Status)
		assert.Equal(t, domain.ImpactModerate, order.Impact)
		assert.Contains(t, order.Details, "H3 follows H1")
		assert.Contains(t, order.Details, `"Deep"`)
	})

	t.Run("no headings fails without order record", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartDocument] = documentXML(para("", "just text"), para("Normal", "more"))
		findings, _, _ := analyze(t, pkg)

		assert.Equal(t, domain.StatusFail, only(t, findings, "headings-present").Status)
		assert.Empty(t, byID(findings, "heading-order"))
	})

	t.Run("missing styles falls back to style references", func(t *testing.T) {
		pkg := compliantPackage()
		delete(pkg, docx.PartStyles)
		findings, results, _ := analyze(t, pkg)

		assert.Equal(t, domain.StatusPass, only(t, findings, "headings-present").Status)
		assert.Equal(t, domain.StatusPass, only(t, findings, "heading-order").Status)
		assert.NotNil(t, results[2].Skip)
	})

	t.Run("unreadable body fails", func(t *testing.T) {
		pkg := compliantPackage()
		delete(pkg, docx.PartDocument)
		findings, _, _ := analyze(t, pkg)

		assert.Equal(t, domain.StatusFail, only(t, findings, "headings-present").Status)
		assert.Empty(t, byID(findings, "heading-order"))
	})

	t.Run("listed skips are capped", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartDocument] = documentXML(
			para("Heading1", "a"), para("Heading3", "b"),
			para("Heading1", "c"), para("Heading3", "d"),
			para("Heading1", "e"), para("Heading3", "f"),
		)
		cfg := domain.DefaultConfig()
		cfg.Headings.MaxListedViolations = 2
		results, _ := docx.Analyze(pkg, cfg)
		order := only(t, rules.Collect(nil, results...), "heading-order")
		assert.Equal(t, 2, strings.Count(order.Details, "follows"))
		assert.Contains(t, order.Details, "(1 more)")
	})
}

func TestAnalyze_Images(t *testing.T) {
	tests := []struct {
		name        string
		images      []string
		wantStatus  domain.Status
		wantDetails string
	}{
		{"no images", nil, domain.StatusPass, ""},
		{"all described", []string{image("logo", ""), image("", "Company logo")}, domain.StatusPass, "2 of 2 images have alternative text"},
		{"some missing", []string{image("chart", ""), image("", ""), image("  ", "")}, domain.StatusFail, "2 of 3 images missing alternative text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := compliantPackage()
			pkg[docx.PartDocument] = documentXML(append([]string{para("Heading1", "x")}, tt.images...)...)
			findings, _, _ := analyze(t, pkg)
			img := only(t, findings, "images-alt")
			assert.Equal(t, tt.wantStatus, img.Status)
			assert.Equal(t, tt.wantDetails, img.Details)
		})
	}

	t.Run("unparsable body counts descriptors by pattern", func(t *testing.T) {
		pkg := compliantPackage()
		pkg[docx.PartDocument] = `<w:document><w:body>` +
			`<w:pPr><w:pStyle w:val="Heading1"/></w:pPr>` +
			`<wp:docPr id="1" name="a" descr="chart"/><wp:docPr id="2" name="b"/>`
		findings, results, _ := analyze(t, pkg)

		img := only(t, findings, "images-alt")
		assert.Equal(t, domain.StatusFail, img.Status)
		assert.Equal(t, "1 of 2 images missing alternative text", img.Details)
		assert.NotNil(t, results[3].Skip)
		assert.Equal(t, domain.StatusPass, only(t, findings, "headings-present").Status)
	})

	t.Run("unreadable body warns", func(t *testing.T) {
		pkg := compliantPackage()
		delete(pkg, docx.PartDocument)
		findings, _, _ := analyze(t, pkg)
		assert.Equal(t, domain.StatusWarning, only(t, findings, "images-alt").Status)
	})
}

func TestAnalyze_IndentedParts(t *testing.T) {
	pkg := memPackage{
		docx.PartCoreProps: `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Quarterly Report</dc:title>
  <dc:creator>Jane Doe</dc:creator>
</cp:coreProperties>`,
		docx.PartStyles: `<w:styles ` + nsW + `>
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:lang w:val="en-US"/>
      </w:rPr>
    </w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
  </w:style>
</w:styles>`,
		docx.PartDocument: `<w:document ` + nsW + ` ` + nsWP + `>
  <w:body>
    <w:p>
      <w:pPr>
        <w:pStyle w:val="Heading1"/>
      </w:pPr>
      <w:r>
        <w:t>Intro</w:t>
      </w:r>
    </w:p>
  </w:body>
</w:document>`,
	}

	findings, results, meta := analyze(t, pkg)
	for _, r := range results {
		assert.Nil(t, r.Skip, r.Rule.ID)
	}
	for _, f := range findings {
		assert.Equal(t, domain.StatusPass, f.Status, f.ID)
	}
	assert.Equal(t, "Quarterly Report", meta.Title)
	assert.Equal(t, "Jane Doe", meta.Author)
	assert.Equal(t, "en-US", meta.Language)
}
