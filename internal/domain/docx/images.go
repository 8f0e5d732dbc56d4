package docx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/markup"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

var (
	docPrTagRe = regexp.MustCompile(`<wp:docPr\b[^>]*>`)
	docPrAltRe = regexp.MustCompile(`\s(?:descr|title)="\s*[^"\s][^"]*"`)
)

// ImageCount is the number of drawing objects and how many lack alt text.
type ImageCount struct {
	Total   int
	Missing int
}

// CountImages inspects the descriptor of every inline and floating drawing.
// A drawing has alt text when its description or title is non-blank.
func CountImages(document *markup.Element) ImageCount {
	var c ImageCount
	for _, pr := range document.FindAll("docPr") {
		c.Total++
		if strings.TrimSpace(pr.Attr("descr")) == "" && strings.TrimSpace(pr.Attr("title")) == "" {
			c.Missing++
		}
	}
	return c
}

func countImagesRaw(raw []byte) ImageCount {
	var c ImageCount
	for _, tag := range docPrTagRe.FindAll(raw, -1) {
		c.Total++
		if !docPrAltRe.Match(tag) {
			c.Missing++
		}
	}
	return c
}

// checkImages fails when any drawing lacks alternative text.
func checkImages(document *part) rules.Result {
	r := rules.ImagesAlt

	if !document.readable() {
		return rules.Degraded(r, document.name, document.err(),
			r.Warn("Images could not be inspected", ""))
	}

	var c ImageCount
	if document.parseErr != nil {
		c = countImagesRaw(document.raw)
	} else {
		c = CountImages(document.tree)
	}

	finding := imageFinding(c)
	if document.parseErr != nil {
		return rules.Degraded(r, document.name, document.parseErr, finding)
	}
	return rules.Found(r, finding)
}

func imageFinding(c ImageCount) domain.Violation {
	r := rules.ImagesAlt
	switch {
	case c.Total == 0:
		return r.Pass("No images found (0 images)", "")
	case c.Missing == 0:
		return r.Pass("", fmt.Sprintf("%d of %d images have alternative text", c.Total, c.Total))
	default:
		return r.Fail("Images are missing alternative text",
			fmt.Sprintf("%d of %d images missing alternative text", c.Missing, c.Total))
	}
}
