package detect

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/smellhound/smellhound/internal/domain"
)

// assignmentPatterns match a binding statement anchored at line start, with
// or without a leading declaration keyword. Group 1 is the bound name,
// group 2 the literal (optionally carrying a numeric-width suffix).
var assignmentPatterns = []string{
	`(?m)^\s*let\s+(\w+)\s*=\s*(\d+\.?\d*(?:[eE][+-]?\d+)?(?:f32|f64)?)\s*;`,
	`(?m)^\s*(\w+)\s*=\s*(\d+\.?\d*(?:[eE][+-]?\d+)?(?:f32|f64)?)\s*;`,
}

// nameKeywords are bound-name fragments that suggest the value belongs in
// configuration.
var nameKeywords = []string{
	"threshold", "limit", "bound", "weight", "ratio", "factor",
	"radius", "width", "height", "size", "count", "max", "min",
	"alpha", "beta", "gamma", "epsilon", "delta",
}

// scanAssignmentLiterals flags numeric literals bound to suggestively named
// variables. Literals whose exact textual form is whitelisted are skipped.
func scanAssignmentLiterals(code string, cfg domain.MagicNumberConfig) ([]domain.Alert, error) {
	var alerts []domain.Alert

	for _, expr := range assignmentPatterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", expr, err)
		}

		for _, m := range re.FindAllStringSubmatchIndex(code, -1) {
			name := code[m[2]:m[3]]
			value := code[m[4]:m[5]]

			if cfg.WhitelistValues[value] {
				continue
			}

			pos := m[4]
			line := rawEnclosingLine(code, pos)
			snippet := strings.TrimSpace(line)

			confidence := assignmentConfidence(name, value, line)
			if confidence <= 0.6 {
				continue
			}

			alerts = append(alerts, domain.Alert{
				Category:   domain.MagicNumber,
				Confidence: confidence,
				Location:   resolveLocation(code, pos),
				Snippet:    snippet,
				Why:        fmt.Sprintf("Magic number %s assigned to %s - should be in config", value, name),
				Suggestion: fmt.Sprintf("Add %s to RuntimeConfig and initialize from config", configFieldName(name)),
				Severity:   confidence,
			})
		}
	}

	return alerts, nil
}

// assignmentConfidence starts at 0.4 and adds 0.25 per keyword hit in the
// bound name, 0.15 for an explicit numeric-width suffix, and 0.15 when the
// line is indented (a function-body binding rather than a top-level one),
// capped at 0.95.
func assignmentConfidence(name, value, line string) float64 {
	confidence := 0.4

	lower := strings.ToLower(name)
	for _, kw := range nameKeywords {
		if strings.Contains(lower, kw) {
			confidence += 0.25
		}
	}

	if strings.HasSuffix(value, "f32") || strings.HasSuffix(value, "f64") {
		confidence += 0.15
	}

	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		confidence += 0.15
	}

	return math.Min(confidence, 0.95)
}

// configFieldName normalizes a bound name into a snake_case config field
// name. Snake-case names pass through unchanged.
func configFieldName(name string) string {
	var words []string
	for _, w := range camelcase.Split(name) {
		w = strings.Trim(strings.ToLower(w), "_")
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, "_")
}
