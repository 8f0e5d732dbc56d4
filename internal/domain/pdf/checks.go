package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

// Part names used in skip reasons.
const (
	partXMP        = "Metadata"
	partPageText   = "Contents"
	partStructTree = "StructTreeRoot"
)

func checkTitle(info domain.PDFInfo, cfg domain.AnalyzerConfig) rules.Result {
	r := rules.PDFTitle
	title := strings.TrimSpace(info.Title)
	switch {
	case title == "":
		return rules.Found(r, r.Fail("PDF title is missing", ""))
	case cfg.IsPlaceholderTitle(title):
		return rules.Found(r, r.Fail("PDF title is a placeholder", title))
	}
	return rules.Found(r, r.Pass("", title))
}

func checkLanguage(doc domain.PDFDocument) (rules.Result, string) {
	r := rules.PDFLang
	missing := r.Warn("No document language declared in XMP metadata", "")

	xmp, err := doc.XMPMetadata()
	if err != nil {
		return rules.Degraded(r, partXMP, err, missing), ""
	}
	lang, err := XMPLanguage(xmp)
	if err != nil {
		if lang == "" {
			return rules.Degraded(r, partXMP, err, missing), ""
		}
		return rules.Degraded(r, partXMP, err, r.Pass("", lang)), lang
	}
	if lang == "" {
		return rules.Found(r, missing), ""
	}
	return rules.Found(r, r.Pass("", lang)), lang
}

// checkBookmarks only records a pass. A missing outline produces no finding.
func checkBookmarks(doc domain.PDFDocument) rules.Result {
	r := rules.PDFBookmarks
	if !doc.HasOutline() {
		return rules.Found(r)
	}
	return rules.Found(r, r.Pass("", ""))
}

// checkTextLayer samples the first pages and warns when they carry almost no
// text, which usually means a scan without OCR.
func checkTextLayer(doc domain.PDFDocument, cfg domain.PDFConfig) rules.Result {
	r := rules.PDFTextLayer
	pages := min(cfg.TextSamplePages, doc.PageCount())

	var (
		b        strings.Builder
		firstErr error
	)
	for page := 1; page <= pages; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("page %d: %w", page, err)
			}
			continue
		}
		b.WriteString(text)
	}

	chars := utf8.RuneCountInString(strings.TrimSpace(b.String()))
	details := fmt.Sprintf("%d characters of text in the first %d pages", chars, pages)

	finding := r.Pass("", details)
	if chars < cfg.MinTextChars {
		finding = r.Warn("PDF may be a scan without a text layer", details)
	}
	if firstErr != nil {
		return rules.Degraded(r, partPageText, firstErr, finding)
	}
	return rules.Found(r, finding)
}

// checkStructure emits the structure-tags record and the figure alt-text
// record. Untagged documents fail both.
func checkStructure(doc domain.PDFDocument) []rules.Result {
	tags, figs := rules.StructureTags, rules.PDFImagesAlt

	root, err := doc.StructTree()
	if err != nil || root == nil {
		tagsFail := tags.Fail("PDF has no structure tags", "")
		figsFail := figs.Fail("Figures cannot be checked in an untagged PDF", "")
		if err != nil {
			return []rules.Result{
				rules.Degraded(tags, partStructTree, err, tagsFail),
				rules.Degraded(figs, partStructTree, err, figsFail),
			}
		}
		return []rules.Result{rules.Found(tags, tagsFail), rules.Found(figs, figsFail)}
	}

	return []rules.Result{
		rules.Found(tags, tags.Pass("", "")),
		rules.Found(figs, figureFinding(CountFigures(root))),
	}
}

func figureFinding(c FigureCount) domain.Violation {
	r := rules.PDFImagesAlt
	switch {
	case c.Total == 0:
		return r.Warn("No tagged figures found", "")
	case c.Missing > 0:
		return r.Fail("Figures are missing alternative text",
			fmt.Sprintf("%d of %d figures missing alternative text", c.Missing, c.Total))
	default:
		return r.Pass("", fmt.Sprintf("%d of %d figures have alternative text", c.Total, c.Total))
	}
}
