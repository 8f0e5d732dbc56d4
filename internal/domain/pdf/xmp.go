package pdf

import (
	"regexp"
	"strings"
	"time"

	"github.com/WojciechSzmit/wcag/internal/domain/markup"
)

var xmpLanguageRe = regexp.MustCompile(`(?s)<dc:language\b.*?<rdf:li\b[^>]*>\s*([^<]*?)\s*</rdf:li>`)

// XMPLanguage returns the first dc:language entry of an XMP packet. When the
// packet is not well-formed it falls back to a pattern match and returns the
// parse error alongside whatever it found.
func XMPLanguage(xmp []byte) (string, error) {
	if len(xmp) == 0 {
		return "", nil
	}
	root, err := markup.Parse(xmp)
	if err != nil {
		if m := xmpLanguageRe.FindSubmatch(xmp); m != nil {
			return string(m[1]), err
		}
		return "", err
	}
	for _, lang := range root.FindAll("language") {
		for _, li := range lang.FindAll("li") {
			if v := strings.TrimSpace(li.InnerText()); v != "" {
				return v, nil
			}
		}
		if v := strings.TrimSpace(lang.Text); v != "" {
			return v, nil
		}
	}
	return "", nil
}

var pdfDateLayouts = []string{
	"20060102150405-0700",
	"20060102150405Z",
	"20060102150405",
	"200601021504",
	"2006010215",
	"20060102",
	"200601",
	"2006",
}

// FormatDate converts a PDF date string (D:YYYYMMDDHHmmSSOHH'mm') to
// RFC 3339. Values it cannot parse are returned unchanged.
func FormatDate(raw string) string {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "D:")
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "'", "")
	if strings.HasSuffix(s, "Z00") || strings.HasSuffix(s, "Z0000") {
		s = s[:strings.IndexByte(s, 'Z')+1]
	}
	for _, layout := range pdfDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return raw
}
