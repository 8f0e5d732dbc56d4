package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderCatalog lists the checks grouped by file type.
func RenderCatalog(catalog []rules.Rule) string {
	var b strings.Builder

	for _, ft := range []domain.FileType{domain.FileTypeDOCX, domain.FileTypePDF} {
		var section []rules.Rule
		for _, r := range catalog {
			if r.FileType == ft {
				section = append(section, r)
			}
		}
		renderCatalogSection(&b, strings.ToUpper(string(ft)), section)
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Scores count every emitted finding; only passes add to the score."))
	b.WriteString("\n")
	return b.String()
}

func renderCatalogSection(b *strings.Builder, title string, section []rules.Rule) {
	if len(section) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(section))),
	)
	for _, r := range section {
		fmt.Fprintf(b, "    %s %s %s  %s\n",
			padRight(r.ID, 18),
			dimStyle.Render(padRight(r.Criterion, 6)),
			impactTag(r.Impact),
			r.Description,
		)
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(r.Help))
	}
}
