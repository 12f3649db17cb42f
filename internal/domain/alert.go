package domain

import (
	"encoding/json"
	"fmt"
)

// Category classifies an alert. The set is closed; both the display name and
// the remediation hint live in parallel tables so adding a category is a
// single edit in each.
type Category int

const (
	FakeComplexity Category = iota
	CargoCult
	OverEngineering
	ConcurrencyWrapperAbuse
	LockAbuse
	DelayAbuse
	UnhandledResultAbuse
	PolymorphismAbuse
	DuplicationAbuse
	MutexAbuse
	MagicNumber
	HardcodedThreshold
)

var categoryNames = [...]string{
	FakeComplexity:          "FakeComplexity",
	CargoCult:               "CargoCult",
	OverEngineering:         "OverEngineering",
	ConcurrencyWrapperAbuse: "ConcurrencyWrapperAbuse",
	LockAbuse:               "LockAbuse",
	DelayAbuse:              "DelayAbuse",
	UnhandledResultAbuse:    "UnhandledResultAbuse",
	PolymorphismAbuse:       "PolymorphismAbuse",
	DuplicationAbuse:        "DuplicationAbuse",
	MutexAbuse:              "MutexAbuse",
	MagicNumber:             "MagicNumber",
	HardcodedThreshold:      "HardcodedThreshold",
}

var categorySuggestions = [...]string{
	FakeComplexity:          "Break down into smaller, focused functions",
	CargoCult:               "Import only what you actually use",
	OverEngineering:         "Simplify with owned types or references",
	ConcurrencyWrapperAbuse: "Use shared-ownership wrappers only when state crosses threads",
	LockAbuse:               "Consider if read/write locks are necessary",
	DelayAbuse:              "Use async delays or remove blocking sleeps",
	UnhandledResultAbuse:    "Handle errors properly instead of unwrapping",
	PolymorphismAbuse:       "Use concrete types when possible",
	DuplicationAbuse:        "Avoid unnecessary cloning of data",
	MutexAbuse:              "Consider if a mutex is needed for this use case",
	MagicNumber:             "Extract to constant or config",
	HardcodedThreshold:      "Move to configuration struct",
}

// Categories enumerates the full closed set in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

func (c Category) valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Suggestion returns the generic remediation hint for the category.
func (c Category) Suggestion() string {
	if !c.valid() {
		return ""
	}
	return categorySuggestions[c]
}

// MarshalJSON encodes the category by name.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return json.Marshal(categoryNames[c])
}

// UnmarshalJSON decodes a category from its name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range categoryNames {
		if n == name {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", name)
}

// Location is a 1-based (line, column) position in the scanned text.
// Columns count codepoints, not bytes.
type Location struct {
	Line   int
	Column int
}

// MarshalJSON encodes the location as a two-element [line, column] array.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{l.Line, l.Column})
}

// UnmarshalJSON decodes a [line, column] array.
func (l *Location) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	l.Line, l.Column = pair[0], pair[1]
	return nil
}

// Alert is a single confidence-scored finding. Alerts are constructed with
// the confidence already computed and are never mutated afterwards, except
// for the caller-side path prefix on the snippet.
type Alert struct {
	Category   Category `json:"issue_type"`
	Confidence float64  `json:"confidence"`
	Location   Location `json:"location"`
	Snippet    string   `json:"context_snippet"`
	Why        string   `json:"why_bs"`
	Suggestion string   `json:"sug"`
	Severity   float64  `json:"severity"`
}

// FileAlerts pairs a scanned file path with the alerts it produced.
type FileAlerts struct {
	Path   string  `json:"path"`
	Alerts []Alert `json:"alerts"`
}

// Severity bands used by report rendering.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// SeverityBand buckets a severity value: critical >= 0.9, high in
// [0.75, 0.9), medium below.
func SeverityBand(severity float64) string {
	switch {
	case severity >= 0.9:
		return SeverityCritical
	case severity >= 0.75:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
