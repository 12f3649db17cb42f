package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/smellhound/smellhound/internal/domain"
)

// RenderMarkdownReport renders the per-file magic-number report as markdown
// suitable for checking into a repository or pasting into an issue.
func RenderMarkdownReport(report *domain.MagicReport) string {
	var b strings.Builder

	b.WriteString("# Magic Number Detection Report\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format(time.RFC3339)))
	if report.CommitHash != "" {
		b.WriteString(fmt.Sprintf("Commit: %s\n", report.CommitHash))
	}
	b.WriteString("\n")

	b.WriteString("## Summary\n")
	b.WriteString(fmt.Sprintf("- Files scanned: %d\n", len(report.Files)))
	b.WriteString(fmt.Sprintf("- Total magic numbers found: %d\n\n", report.TotalAlerts()))

	b.WriteString("## Files with Magic Numbers\n\n")
	for _, f := range report.Files {
		if len(f.Alerts) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("### %s\n\n", f.Path))
		b.WriteString(fmt.Sprintf("Found %d magic numbers:\n\n", len(f.Alerts)))

		for i, a := range f.Alerts {
			b.WriteString(fmt.Sprintf("%d. **%s** at line %d:%d\n", i+1, a.Category, a.Location.Line, a.Location.Column))
			b.WriteString(fmt.Sprintf("   - **Why**: %s\n", a.Why))
			b.WriteString(fmt.Sprintf("   - **Suggestion**: %s\n", a.Suggestion))
			b.WriteString(fmt.Sprintf("   - **Confidence**: %.2f\n", a.Confidence))
			b.WriteString(fmt.Sprintf("   - **Code**: `%s`\n\n", a.Snippet))
		}
	}

	b.WriteString("\n## Next Steps\n\n")
	b.WriteString("1. Review each magic number and decide if it belongs in config\n")
	b.WriteString("2. Add appropriate fields to the runtime configuration\n")
	b.WriteString("3. Replace hardcoded values with config reads\n")
	b.WriteString("4. Add tests to verify config-driven behavior\n")

	return b.String()
}
