package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/tui"
	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

func sampleReport() *domain.Report {
	findings := []domain.Violation{
		rules.MetaTitle.Pass("", "Quarterly Report"),
		rules.MetaLang.Warn("No document language declared", ""),
		rules.HeadingsPresent.Pass("", "3 headings found"),
		rules.HeadingOrder.Warn("1 heading level skips found", "H3 follows H1 (Heading 3)"),
		rules.ImagesAlt.Fail("Images are missing alternative text", "2 of 3 images missing alternative text"),
	}
	return domain.NewReport("q3.docx", domain.FileTypeDOCX, findings, domain.Metadata{
		Title:  "Quarterly Report",
		Author: "Jane Doe",
	})
}

func TestRenderReport_ContainsScore(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "40 / 100")
	assert.Contains(t, output, "F")
	assert.Contains(t, output, "2 of 5 checks passed")
}

func TestRenderReport_ContainsFileAndMetadata(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "q3.docx")
	assert.Contains(t, output, "DOCX")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Language")
}

func TestRenderReport_ShowsFindings(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "images-alt")
	assert.Contains(t, output, "1.1.1")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "2 of 3 images missing alternative text")
	assert.Contains(t, output, "H3 follows H1")
}

func TestRenderReport_HelpOnlyForNonPassing(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, rules.ImagesAlt.Help)
	assert.NotContains(t, output, rules.MetaTitle.Help)
}

func TestRenderReport_FailuresBeforeWarningsBeforePasses(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	failIdx := strings.Index(output, "images-alt")
	warnIdx := strings.Index(output, "meta-lang")
	passIdx := strings.Index(output, "meta-title")
	assert.True(t, failIdx < warnIdx, "failures should appear before warnings")
	assert.True(t, warnIdx < passIdx, "warnings should appear before passes")
}

func TestRenderReport_SummaryCounts(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "1 failed")
	assert.Contains(t, output, "2 warnings")
	assert.Contains(t, output, "2 passed")
}

func TestRenderReport_EmptyReport(t *testing.T) {
	output := tui.RenderReport(domain.NewReport("empty.pdf", domain.FileTypePDF, nil, domain.Metadata{}))
	assert.Contains(t, output, "100 / 100")
	assert.Contains(t, output, "No checks ran.")
}
