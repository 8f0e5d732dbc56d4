// Package pdf runs the accessibility checks for PDF documents against a
// loaded domain.PDFDocument.
package pdf

import (
	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

// Analyze runs every PDF check in order.
func Analyze(doc domain.PDFDocument, cfg domain.AnalyzerConfig) ([]rules.Result, domain.Metadata) {
	info := doc.Info()

	langResult, lang := checkLanguage(doc)
	results := []rules.Result{
		checkTitle(info, cfg),
		langResult,
		checkBookmarks(doc),
		checkTextLayer(doc, cfg.PDF),
	}
	results = append(results, checkStructure(doc)...)

	meta := domain.Metadata{
		Title:     info.Title,
		Author:    info.Author,
		CreatedAt: FormatDate(info.CreationDate),
		Language:  lang,
		PageCount: doc.PageCount(),
	}
	return results, meta
}
