package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// BatchEntry is one row of a batch summary.
type BatchEntry struct {
	Name   string
	Report *domain.Report
	Err    error
}

// RenderBatch formats a one-line-per-file overview followed by the mean score.
func RenderBatch(entries []BatchEntry, average int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Batch Summary") + "  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d files", len(entries))))
	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")

	width := 24
	for _, e := range entries {
		width = max(width, min(len(e.Name), 40))
	}

	for _, e := range entries {
		name := padRight(truncate(e.Name, 40), width)
		if e.Err != nil {
			fmt.Fprintf(&b, "  %s %s  %s\n", failStyle.Render("✗"), name, failStyle.Render(e.Err.Error()))
			continue
		}
		r := e.Report
		grade := r.Grade()
		fails := r.Counts()[domain.StatusFail]
		fmt.Fprintf(&b, "  %s %s %s %s %s  %s\n",
			statusIcon(statusForScore(r.ComplianceScore)),
			name,
			coloredBar(r.ComplianceScore, 20),
			lipglossScore(r.ComplianceScore),
			gradeStyle(grade),
			dimStyle.Render(fmt.Sprintf("%d failed", fails)),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("Average"), lipglossScore(average))
	return b.String()
}

func statusForScore(score int) domain.Status {
	switch {
	case score >= 90:
		return domain.StatusPass
	case score >= 50:
		return domain.StatusWarning
	default:
		return domain.StatusFail
	}
}

func lipglossScore(score int) string {
	return lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%3d", score))
}

func gradeStyle(grade string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(gradeColor(grade)).Render(padRight(grade, 2))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n+1:]
}
