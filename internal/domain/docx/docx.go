// Package docx runs the accessibility checks for Word documents over the
// parts of an opened OPC package.
package docx

import (
	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/markup"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

// Package part names read by the checks.
const (
	PartCoreProps = "docProps/core.xml"
	PartStyles    = "word/styles.xml"
	PartDocument  = "word/document.xml"
)

// DrawingML paragraphs share the local name "p" with body paragraphs.
const drawingNS = "http://schemas.openxmlformats.org/drawingml/2006/main"

// Analyze runs every DOCX check in order. Missing or unparsable parts
// degrade the affected checks and are reported through Result.Skip.
func Analyze(pkg domain.Package, cfg domain.AnalyzerConfig) ([]rules.Result, domain.Metadata) {
	core := loadPart(pkg, PartCoreProps)
	styles := loadPart(pkg, PartStyles)
	document := loadPart(pkg, PartDocument)

	titleResult, props := checkTitle(core)
	langResult, lang := checkLanguage(styles)
	headingResult := checkHeadings(styles, document, cfg.Headings.MaxListedViolations)
	imageResult := checkImages(document)

	meta := domain.Metadata{
		Title:     props.Title,
		Author:    props.Creator,
		CreatedAt: props.Created,
		Language:  props.Language,
	}
	if meta.Language == "" {
		meta.Language = lang
	}

	return []rules.Result{titleResult, langResult, headingResult, imageResult}, meta
}

// part is one package entry, read and parsed once per run.
type part struct {
	name     string
	raw      []byte
	tree     *markup.Element
	readErr  error
	parseErr error
}

func loadPart(pkg domain.Package, name string) *part {
	p := &part{name: name}
	p.raw, p.readErr = pkg.ReadPart(name)
	if p.readErr != nil {
		return p
	}
	p.tree, p.parseErr = markup.Parse(p.raw)
	return p
}

// err returns the first failure reading or parsing the part.
func (p *part) err() error {
	if p.readErr != nil {
		return p.readErr
	}
	return p.parseErr
}

// readable reports whether raw bytes are available, even if unparsable.
func (p *part) readable() bool { return p.readErr == nil }
