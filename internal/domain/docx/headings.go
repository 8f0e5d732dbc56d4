package docx

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/WojciechSzmit/wcag/internal/domain/headings"
	"github.com/WojciechSzmit/wcag/internal/domain/markup"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

const maxLabelText = 40

var pStyleRe = regexp.MustCompile(`(?i)<w:pStyle\s+w:val="((?:heading|nag[łl]?[óo]?wek)\s*([1-6])|title|tytu[łl])"`)

// ScanHeadings walks body paragraphs in document order and returns those
// whose paragraph style maps to a heading level.
func ScanHeadings(document *markup.Element, styles HeadingStyleMap) []headings.Heading {
	var hs []headings.Heading
	document.Walk(func(el *markup.Element) bool {
		if el.Name != "p" || el.Space == drawingNS {
			return true
		}
		styleID := el.Child("pPr").ChildAttr("pStyle", "val")
		if lvl := styles.Level(styleID); lvl > 0 {
			hs = append(hs, headings.Heading{Level: lvl, Label: headingLabel(styleID, el.InnerText())})
		}
		// Paragraphs can nest inside text boxes, so keep descending.
		return true
	})
	return hs
}

// scanHeadingsRaw matches literal heading style references in the body
// markup. It is used when the style map yields nothing.
func scanHeadingsRaw(raw []byte) []headings.Heading {
	var hs []headings.Heading
	for _, m := range pStyleRe.FindAllSubmatch(raw, -1) {
		lvl := 1
		if len(m[2]) > 0 {
			lvl = int(m[2][0] - '0')
		}
		hs = append(hs, headings.Heading{Level: lvl, Label: StyleLabel(string(m[1]))})
	}
	return hs
}

func headingLabel(styleID, text string) string {
	label := StyleLabel(styleID)
	text = strings.TrimSpace(text)
	if text == "" {
		return label
	}
	if utf8.RuneCountInString(text) > maxLabelText {
		text = string([]rune(text)[:maxLabelText]) + "…"
	}
	return fmt.Sprintf("%s %q", label, text)
}

// checkHeadings emits the headings-present record and, when headings exist,
// the heading-order record.
func checkHeadings(styles, document *part, maxListed int) rules.Result {
	present := rules.HeadingsPresent

	if !document.readable() {
		return rules.Degraded(present, document.name, document.err(),
			present.Fail("Document body could not be read", ""))
	}

	var (
		hs   []headings.Heading
		skip *rules.SkipReason
	)
	if err := styles.err(); err != nil {
		skip = &rules.SkipReason{Part: styles.name, Err: err}
	} else if document.parseErr == nil {
		hs = ScanHeadings(document.tree, BuildHeadingStyleMap(styles.tree))
	}
	if document.parseErr != nil {
		skip = &rules.SkipReason{Part: document.name, Err: document.parseErr}
	}
	if len(hs) == 0 {
		hs = scanHeadingsRaw(document.raw)
	}

	result := rules.Result{Rule: present, Skip: skip}
	if len(hs) == 0 {
		result.Findings = append(result.Findings, present.Fail("No heading styles are used", ""))
		return result
	}

	result.Findings = append(result.Findings, present.Pass("", fmt.Sprintf("%d headings found", len(hs))))

	order := rules.HeadingOrder
	skips := headings.Validate(hs)
	if len(skips) == 0 {
		result.Findings = append(result.Findings, order.Pass("", ""))
	} else {
		result.Findings = append(result.Findings,
			order.Warn(fmt.Sprintf("%d heading level skips found", len(skips)), headings.Summarize(skips, maxListed)))
	}
	return result
}
