package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// RenderHistory lists recorded scores oldest first. The arrow compares each
// entry with the previous one for the same file.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No score history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Score History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	width := 12
	for _, e := range entries {
		width = max(width, min(len(e.File), 40))
	}

	last := make(map[string]int, len(entries))
	for _, e := range entries {
		digest := e.Digest
		if len(digest) > 7 {
			digest = digest[:7]
		}
		if digest == "" {
			digest = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%d/100", e.Score))

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(datePart(e.Timestamp)),
			padRight(truncate(e.File, 40), width),
			faintStyle.Render(digest),
			scoreStyled,
			e.Grade,
		)

		if len(e.CommitHash) >= 7 {
			line += "  " + faintStyle.Render("@"+e.CommitHash[:7])
		}

		if prev, ok := last[e.File]; ok {
			diff := e.Score - prev
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}
		last[e.File] = e.Score

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return padRight(ts, 10)
}
