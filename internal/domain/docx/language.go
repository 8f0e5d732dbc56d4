package docx

import (
	"regexp"

	"github.com/WojciechSzmit/wcag/internal/domain/markup"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

var (
	langMarkerRe = regexp.MustCompile(`<w:lang\b[^>]*>`)
	langValueRe  = regexp.MustCompile(`w:(?:val|eastAsia|bidi)="([^"]+)"`)
)

// FindLanguageMarker reports whether any language marker exists in the
// stylesheet and returns the first declared value. It does not check which
// style or run the marker applies to.
func FindLanguageMarker(styles *markup.Element) (string, bool) {
	found := false
	value := ""
	styles.Walk(func(el *markup.Element) bool {
		if el.Name != "lang" {
			return true
		}
		found = true
		if value == "" {
			value = firstNonEmpty(el.Attr("val"), el.Attr("eastAsia"), el.Attr("bidi"))
		}
		return value == ""
	})
	return value, found
}

// findLanguageMarkerRaw is the regex fallback for unparsable styles.
func findLanguageMarkerRaw(raw []byte) (string, bool) {
	tag := langMarkerRe.Find(raw)
	if tag == nil {
		return "", false
	}
	if m := langValueRe.FindSubmatch(tag); m != nil {
		return string(m[1]), true
	}
	return "", true
}

// checkLanguage passes when the stylesheet carries a language marker and
// warns otherwise.
func checkLanguage(styles *part) (rules.Result, string) {
	r := rules.MetaLang
	missing := r.Warn("No document language declared", "")

	switch {
	case !styles.readable():
		return rules.Degraded(r, styles.name, styles.err(), missing), ""
	case styles.parseErr != nil:
		value, ok := findLanguageMarkerRaw(styles.raw)
		if !ok {
			return rules.Degraded(r, styles.name, styles.parseErr, missing), ""
		}
		return rules.Degraded(r, styles.name, styles.parseErr, r.Pass("", value)), value
	}

	value, ok := FindLanguageMarker(styles.tree)
	if !ok {
		return rules.Found(r, missing), ""
	}
	return rules.Found(r, r.Pass("", value)), value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
