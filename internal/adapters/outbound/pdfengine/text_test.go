package pdfengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/pdfengine"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"simple Tj", "BT\n/F1 12 Tf\n72 720 Td\n(Hello) Tj\nET", "Hello"},
		{"operators on one line", "BT /F1 12 Tf (Hello) Tj 0 -14 Td (World) Tj ET", "Hello World"},
		{"TJ array with kerning", "BT [(Acc) -250 (essible)] TJ ET", "Accessible"},
		{"escaped parens", `BT (a\(b\)) Tj ET`, "a(b)"},
		{"octal escape", `BT (caf\351) Tj ET`, "caf�"},
		{"printable hex", "BT <48656C6C6F> Tj ET", "Hello"},
		{"composite font hex", "BT <00410042> Tj ET", "··"},
		{"quote operator", "BT (one) Tj T* (two) ' ET", "one two"},
		{"balanced parens", "BT (Revenue (net) for the quarter) Tj ET", "Revenue (net) for the quarter"},
		{"nested parens in TJ", "BT [(f\\(x\\) = (a (b))) -120 (!)] TJ ET", "f(x) = (a (b))!"},
		{"dictionary operand ignored", "/Span <</ActualText (skip)>> BDC BT (kept) Tj ET EMC", "kept"},
		{"inline image data skipped", "BI /W 1 /H 1 ID (x) Tj EI BT (after) Tj ET", "after"},
		{"unterminated string", "BT (dangling Tj", ""},
		{"no text", "q 1 0 0 1 0 0 cm /Im0 Do Q", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pdfengine.ExtractText([]byte(tt.content)))
		})
	}
}
