package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// ── Warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	manualStyle   = lipgloss.NewStyle().Foreground(info)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats one analysis report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("wcag")
	subtitle := dimStyle.Render(fmt.Sprintf("Accessibility Report · %s · %s", report.FileName, strings.ToUpper(string(report.FileType))))
	scoreLine := fmt.Sprintf("%d / 100", report.ComplianceScore)
	color := gradeColor(grade)
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(scoreLine)
	gradeStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(grade)
	passed := dimStyle.Render(fmt.Sprintf("%d of %d checks passed", report.PassedChecks, report.TotalChecks))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled + "\n" + passed))
	b.WriteString("\n\n")

	renderMetadata(&b, report.Metadata)

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Findings ──
	findings := sortByStatus(report.Violations)
	counts := report.Counts()
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Checks"))
	b.WriteString("  ")
	if n := counts[domain.StatusFail]; n > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d failed", n)) + "  ")
	}
	if n := counts[domain.StatusWarning]; n > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", n)) + "  ")
	}
	if n := counts[domain.StatusManual]; n > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d manual", n)) + "  ")
	}
	if n := counts[domain.StatusPass]; n > 0 {
		b.WriteString(passStyle.Render(fmt.Sprintf("%d passed", n)))
	}
	b.WriteString("\n\n")

	if len(findings) == 0 {
		b.WriteString("  " + dimStyle.Render("No checks ran.") + "\n")
	}
	for _, v := range findings {
		renderFinding(&b, v)
	}

	b.WriteString("\n")
	return b.String()
}

func renderMetadata(b *strings.Builder, m domain.Metadata) {
	rows := [][2]string{
		{"Title", m.Title},
		{"Author", m.Author},
		{"Created", m.CreatedAt},
		{"Language", m.Language},
	}
	if m.PageCount > 0 {
		rows = append(rows, [2]string{"Pages", fmt.Sprintf("%d", m.PageCount)})
	}
	for _, r := range rows {
		value := r[1]
		if value == "" {
			value = faintStyle.Render("—")
		}
		fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(padRight(r[0], 10)), value)
	}
	b.WriteString("\n")
}

func renderFinding(b *strings.Builder, v domain.Violation) {
	icon := statusIcon(v.Status)
	id := padRight(v.ID, 18)
	crit := dimStyle.Render(padRight(v.WCAGCriterion, 6))
	impact := impactTag(v.Impact)

	fmt.Fprintf(b, "    %s %s %s %s  %s\n", icon, id, crit, impact, v.Description)
	if v.Details != "" {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(v.Details))
	}
	if v.Status != domain.StatusPass && v.Help != "" {
		fmt.Fprintf(b, "      %s\n", dimStyle.Render("→ "+v.Help))
	}
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusPass:
		return passStyle.Render("●")
	case domain.StatusFail:
		return failStyle.Render("●")
	case domain.StatusWarning:
		return warnStyle.Render("●")
	default:
		return manualStyle.Render("○")
	}
}

func impactTag(impact domain.Impact) string {
	label := padRight(string(impact), 8)
	switch impact {
	case domain.ImpactCritical:
		return errorTagStyle.Render(label)
	case domain.ImpactSerious:
		return failStyle.Render(label)
	case domain.ImpactModerate:
		return warnTagStyle.Render(label)
	default:
		return infoTagStyle.Render(label)
	}
}

// sortByStatus orders findings fail, warning, manual, pass and keeps check
// order within a status.
func sortByStatus(findings []domain.Violation) []domain.Violation {
	order := map[domain.Status]int{
		domain.StatusFail:    0,
		domain.StatusWarning: 1,
		domain.StatusManual:  2,
		domain.StatusPass:    3,
	}
	out := append([]domain.Violation(nil), findings...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && order[out[j].Status] < order[out[j-1].Status]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
