package detect

import (
	"fmt"
	"regexp"

	"github.com/smellhound/smellhound/internal/domain"
)

// funcArgConfidence is fixed: two or more literal arguments is a strong
// signal on its own, with no further heuristics.
const funcArgConfidence = 0.75

const (
	// callPattern matches name(arguments) where the argument text contains
	// at least one numeric literal. Known limitation: the [^)] argument
	// scope mis-handles nested and multi-line calls.
	callPattern = `(\w+)\s*\(\s*([^)]*?(\d+\.?\d*(?:[eE][+-]?\d+)?(?:f32|f64)?)[^)]*?)\s*\)`

	literalPattern = `\d+\.?\d*(?:[eE][+-]?\d+)?(?:f32|f64)?`
)

// scanFunctionArgLiterals flags calls whose argument list carries two or
// more non-whitelisted numeric literals.
func scanFunctionArgLiterals(code string, cfg domain.MagicNumberConfig) ([]domain.Alert, error) {
	callRe, err := regexp.Compile(callPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", callPattern, err)
	}
	litRe, err := regexp.Compile(literalPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", literalPattern, err)
	}

	var alerts []domain.Alert

	for _, m := range callRe.FindAllStringSubmatchIndex(code, -1) {
		funcName := code[m[2]:m[3]]
		argsStart := m[4]
		args := code[argsStart:m[5]]

		var count int
		for _, lit := range litRe.FindAllString(args, -1) {
			if !cfg.WhitelistValues[lit] {
				count++
			}
		}
		if count < 2 {
			continue
		}

		alerts = append(alerts, domain.Alert{
			Category:   domain.MagicNumber,
			Confidence: funcArgConfidence,
			Location:   resolveLocation(code, argsStart),
			Snippet:    enclosingLine(code, argsStart),
			Why:        fmt.Sprintf("Function %s called with %d hardcoded numeric arguments", funcName, count),
			Suggestion: "Pass config values instead of hardcoded literals",
			Severity:   funcArgConfidence,
		})
	}

	return alerts, nil
}
