package detect

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/smellhound/smellhound/internal/domain"
)

// conditionalPatterns match a numeric literal compared against something at
// the start of a conditional line: a leading if/while, a trailing else-if
// continuation, and a match-arm guard clause. The literal is always the last
// capture group.
var conditionalPatterns = []string{
	`(?m)^\s*(if|while)\s+.*?\s*([<>=!]+)\s*(\d+\.?\d*(?:[eE][+-]?\d+)?)`,
	`(?m)^\s*}\s*else\s+if\s+.*?\s*([<>=!]+)\s*(\d+\.?\d*(?:[eE][+-]?\d+)?)`,
	`(?m)^\s*\|\s*\w+\s+if\s+.*?\s*([<>=!]+)\s*(\d+\.?\d*(?:[eE][+-]?\d+)?)`,
}

// thresholdKeywords are domain signals that a compared literal is a
// behavioral threshold rather than incidental arithmetic.
var thresholdKeywords = []string{
	"threshold", "limit", "bound", "min", "max", "tolerance",
	"entropy", "yawn", "healing", "spectral", "knot", "persistence",
	"quality", "gate", "circuit", "similarity", "cosine",
}

// configNameChain is checked in priority order to name the config field a
// suggestion proposes.
var configNameChain = []string{
	"entropy", "yawn", "healing", "knot",
	"spectral", "persistence", "quality", "similarity",
}

// scanConditionalThresholds flags numeric literals compared inside
// conditional constructs.
func scanConditionalThresholds(code string) ([]domain.Alert, error) {
	var alerts []domain.Alert

	for _, expr := range conditionalPatterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", expr, err)
		}

		for _, m := range re.FindAllStringSubmatchIndex(code, -1) {
			start, end := m[len(m)-2], m[len(m)-1]
			if start < 0 {
				continue
			}
			value := code[start:end]
			snippet := enclosingLine(code, start)

			confidence := thresholdConfidence(snippet, value)
			if confidence <= 0.5 {
				continue
			}

			alerts = append(alerts, domain.Alert{
				Category:   domain.HardcodedThreshold,
				Confidence: confidence,
				Location:   resolveLocation(code, start),
				Snippet:    snippet,
				Why:        fmt.Sprintf("Hardcoded threshold %s in conditional - should be in RuntimeConfig", value),
				Suggestion: fmt.Sprintf("Move %s to config and use self.config.%s_threshold", value, inferConfigName(snippet)),
				Severity:   confidence,
			})
		}
	}

	return alerts, nil
}

// thresholdConfidence starts at 0.5 and adds 0.15 per keyword hit in the
// snippet and 0.2 when the literal is a float strictly between 0 and 1,
// capped at 0.95.
func thresholdConfidence(snippet, value string) float64 {
	confidence := 0.5

	lower := strings.ToLower(snippet)
	for _, kw := range thresholdKeywords {
		if strings.Contains(lower, kw) {
			confidence += 0.15
		}
	}

	if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 && v < 1 {
		confidence += 0.2
	}

	return math.Min(confidence, 0.95)
}

// inferConfigName derives a config field name from the snippet, falling back
// to a generic label when no domain signal matches.
func inferConfigName(snippet string) string {
	lower := strings.ToLower(snippet)
	for _, name := range configNameChain {
		if strings.Contains(lower, name) {
			return name
		}
	}
	return "behavioral"
}
