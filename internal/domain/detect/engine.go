package detect

import (
	"fmt"
	"regexp"

	"github.com/smellhound/smellhound/internal/domain"
)

// Scan runs the generic smell catalog over code and returns every match at
// or above the configured confidence threshold. The only failure mode is a
// pattern that does not compile; in that case no partial results are
// returned. Scanning produces no alerts, never an error, on well-formed text
// without matches.
func Scan(code string, cfg domain.DetectConfig) ([]domain.Alert, error) {
	var alerts []domain.Alert

	for _, p := range smellCatalog {
		re, err := regexp.Compile(p.expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", p.expr, err)
		}

		if p.confidence < cfg.ConfidenceThreshold {
			continue
		}

		for _, m := range re.FindAllStringIndex(code, -1) {
			alerts = append(alerts, domain.Alert{
				Category:   p.category,
				Confidence: p.confidence,
				Location:   resolveLocation(code, m[0]),
				Snippet:    extractWindow(code, m[0], m[1], cfg.MaxSnippetLength),
				Why:        fmt.Sprintf("Pattern match: %s", p.expr),
				Suggestion: p.category.Suggestion(),
				Severity:   p.confidence,
			})
		}
	}

	return alerts, nil
}

// ScanMagicNumbers runs the three literal scanners over code, unless
// filePath is whitelisted, and returns the merged alerts at or above the
// configured confidence threshold.
func ScanMagicNumbers(code, filePath string, cfg domain.MagicNumberConfig) ([]domain.Alert, error) {
	if pathWhitelisted(filePath, cfg) {
		return nil, nil
	}

	var alerts []domain.Alert

	conditional, err := scanConditionalThresholds(code)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, conditional...)

	assignments, err := scanAssignmentLiterals(code, cfg)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, assignments...)

	funcArgs, err := scanFunctionArgLiterals(code, cfg)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, funcArgs...)

	var kept []domain.Alert
	for _, a := range alerts {
		if a.Confidence >= cfg.ConfidenceThreshold {
			kept = append(kept, a)
		}
	}
	return kept, nil
}
