package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smellhound/smellhound/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	caution = lipgloss.Color("#FACC15") // yellow
	success = lipgloss.Color("#22C55E") // green
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	highStyle     = lipgloss.NewStyle().Bold(true).Foreground(warning)
	mediumStyle   = lipgloss.NewStyle().Bold(true).Foreground(caution)
)

var bandStyles = map[string]lipgloss.Style{
	domain.SeverityCritical: criticalStyle,
	domain.SeverityHigh:     highStyle,
	domain.SeverityMedium:   mediumStyle,
}

var bandOrder = []string{domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium}

// RenderAlerts renders the merged alert list grouped into severity bands.
// Alerts keep their production order inside each band.
func RenderAlerts(alerts []domain.Alert) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("smellhound"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d issues\n\n", len(alerts))))

	if len(alerts) == 0 {
		b.WriteString(passStyle.Render("No issues found.") + "\n")
		return b.String()
	}

	buckets := make(map[string][]domain.Alert, len(bandOrder))
	for _, a := range alerts {
		band := domain.SeverityBand(a.Severity)
		buckets[band] = append(buckets[band], a)
	}

	for _, band := range bandOrder {
		group := buckets[band]
		if len(group) == 0 {
			continue
		}
		style := bandStyles[band]
		b.WriteString(style.Render(fmt.Sprintf("%s (%d issues):", strings.ToUpper(band), len(group))))
		b.WriteString("\n")
		for _, a := range group {
			renderAlert(&b, a)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderAlert(b *strings.Builder, a domain.Alert) {
	firstLine, _, _ := strings.Cut(a.Snippet, "\n")
	fmt.Fprintf(b, "  %s at line %d\n", titleStyle.Render(a.Category.String()), a.Location.Line)
	fmt.Fprintf(b, "    %s\n", dimStyle.Render(firstLine))
	fmt.Fprintf(b, "    Why: %s\n", a.Why)
	fmt.Fprintf(b, "    Fix: %s\n", a.Suggestion)
	fmt.Fprintf(b, "    Confidence: %.0f%%\n", a.Confidence*100)
}
