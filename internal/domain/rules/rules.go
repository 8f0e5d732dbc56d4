// Package rules is the catalog of accessibility checks and the helpers that
// turn a check outcome into a normalized finding.
package rules

import (
	"fmt"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// Rule describes one check. Impact is fixed per rule.
type Rule struct {
	ID          string          `json:"id"`
	Criterion   string          `json:"wcagCriterion"`
	Impact      domain.Impact   `json:"impact"`
	FileType    domain.FileType `json:"fileType"`
	Description string          `json:"description"`
	Help        string          `json:"help"`
}

// DOCX rules.
var (
	MetaTitle = Rule{
		ID: "meta-title", Criterion: "2.4.2", Impact: domain.ImpactSerious, FileType: domain.FileTypeDOCX,
		Description: "Document has a title in its core properties",
		Help:        "Set the title in File > Info > Properties so assistive technology can announce it.",
	}
	MetaLang = Rule{
		ID: "meta-lang", Criterion: "3.1.1", Impact: domain.ImpactSerious, FileType: domain.FileTypeDOCX,
		Description: "Document declares a language",
		Help:        "Set the proofing language (Review > Language) so screen readers pick the right pronunciation.",
	}
	HeadingsPresent = Rule{
		ID: "headings-present", Criterion: "1.3.1", Impact: domain.ImpactSerious, FileType: domain.FileTypeDOCX,
		Description: "Document uses heading styles",
		Help:        "Apply the built-in Heading 1-6 styles to section titles instead of manual formatting.",
	}
	HeadingOrder = Rule{
		ID: "heading-order", Criterion: "1.3.1", Impact: domain.ImpactModerate, FileType: domain.FileTypeDOCX,
		Description: "Heading levels do not skip when going deeper",
		Help:        "Nest headings one level at a time, e.g. Heading 1 followed by Heading 2, not Heading 3.",
	}
	ImagesAlt = Rule{
		ID: "images-alt", Criterion: "1.1.1", Impact: domain.ImpactCritical, FileType: domain.FileTypeDOCX,
		Description: "Images have alternative text",
		Help:        "Right-click each image, choose Edit Alt Text and describe what it conveys.",
	}
)

// PDF rules.
var (
	PDFTitle = Rule{
		ID: "pdf-title", Criterion: "2.4.2", Impact: domain.ImpactSerious, FileType: domain.FileTypePDF,
		Description: "PDF has a document title",
		Help:        "Set the title in the authoring tool's document properties before exporting to PDF.",
	}
	PDFLang = Rule{
		ID: "pdf-lang", Criterion: "3.1.1", Impact: domain.ImpactSerious, FileType: domain.FileTypePDF,
		Description: "PDF declares a language in its metadata",
		Help:        "Set the document language in the authoring tool or in Acrobat under Document Properties > Advanced.",
	}
	PDFBookmarks = Rule{
		ID: "pdf-bookmarks", Criterion: "2.4.5", Impact: domain.ImpactMinor, FileType: domain.FileTypePDF,
		Description: "PDF provides bookmarks for navigation",
		Help:        "Export headings as bookmarks so long documents can be navigated.",
	}
	PDFTextLayer = Rule{
		ID: "pdf-ocr", Criterion: "1.4.5", Impact: domain.ImpactSerious, FileType: domain.FileTypePDF,
		Description: "PDF contains real text rather than images of text",
		Help:        "Run OCR on scanned documents or export from the source file so text is selectable.",
	}
	StructureTags = Rule{
		ID: "structure-tags", Criterion: "1.3.1", Impact: domain.ImpactCritical, FileType: domain.FileTypePDF,
		Description: "PDF is tagged with a logical structure",
		Help:        "Export as a tagged PDF (enable \"Document structure tags for accessibility\").",
	}
	PDFImagesAlt = Rule{
		ID: "pdf-images-alt", Criterion: "1.1.1", Impact: domain.ImpactCritical, FileType: domain.FileTypePDF,
		Description: "Tagged figures have alternative text",
		Help:        "Add alternative text to every Figure tag, e.g. with Acrobat's Reading Order tool.",
	}
)

// All lists every rule in execution order, DOCX first.
func All() []Rule {
	return []Rule{
		MetaTitle, MetaLang, HeadingsPresent, HeadingOrder, ImagesAlt,
		PDFTitle, PDFLang, PDFBookmarks, PDFTextLayer, StructureTags, PDFImagesAlt,
	}
}

// ForType lists the rules that apply to ft.
func ForType(ft domain.FileType) []Rule {
	var out []Rule
	for _, r := range All() {
		if r.FileType == ft {
			out = append(out, r)
		}
	}
	return out
}

// Pass returns a passing finding. An empty description falls back to the
// rule's own.
func (r Rule) Pass(description, details string) domain.Violation {
	return r.finding(domain.StatusPass, description, details)
}

// Fail returns a failing finding with a specific description.
func (r Rule) Fail(description, details string) domain.Violation {
	return r.finding(domain.StatusFail, description, details)
}

// Warn returns a warning finding with a specific description.
func (r Rule) Warn(description, details string) domain.Violation {
	return r.finding(domain.StatusWarning, description, details)
}

// Manual returns a finding that needs human review.
func (r Rule) Manual(description, details string) domain.Violation {
	return r.finding(domain.StatusManual, description, details)
}

func (r Rule) finding(status domain.Status, description, details string) domain.Violation {
	if description == "" {
		description = r.Description
	}
	return domain.Violation{
		ID:            r.ID,
		WCAGCriterion: r.Criterion,
		Description:   description,
		Help:          r.Help,
		Impact:        r.Impact,
		Status:        status,
		Details:       details,
	}
}

// SkipReason records why a check could not inspect the part it needed.
type SkipReason struct {
	Part string
	Err  error
}

func (s *SkipReason) Error() string {
	return fmt.Sprintf("%s: %v", s.Part, s.Err)
}

func (s *SkipReason) Unwrap() error { return s.Err }

// Result is what one check produces. Findings are always present; Skip is
// set when the check degraded because its part was missing or unreadable.
type Result struct {
	Rule     Rule
	Findings []domain.Violation
	Skip     *SkipReason
}

// Found wraps findings of a check that ran normally.
func Found(rule Rule, findings ...domain.Violation) Result {
	return Result{Rule: rule, Findings: findings}
}

// Degraded wraps the fallback findings of a check that could not read part.
func Degraded(rule Rule, part string, err error, findings ...domain.Violation) Result {
	return Result{Rule: rule, Findings: findings, Skip: &SkipReason{Part: part, Err: err}}
}

// Collect flattens results in order, reporting each skip to onSkip.
func Collect(onSkip func(Result), results ...Result) []domain.Violation {
	out := make([]domain.Violation, 0, len(results))
	for _, r := range results {
		if r.Skip != nil && onSkip != nil {
			onSkip(r)
		}
		out = append(out, r.Findings...)
	}
	return out
}
