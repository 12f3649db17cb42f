// Package detect implements the smell and magic-number detection engine:
// a fixed pattern catalog plus three specialized literal scanners, all
// operating on a single in-memory text buffer with no I/O of their own.
package detect

import "github.com/smellhound/smellhound/internal/domain"

// smellPattern ties a regular expression to the category and base confidence
// it reports.
type smellPattern struct {
	expr       string
	category   domain.Category
	confidence float64
}

// smellCatalog is the fixed generic-scan catalog. It is an ordered slice, not
// a map: alert order must be reproducible run to run, so catalog iteration
// order is part of the contract.
//
// Overlapping matches from different patterns are all reported; the catalog
// does not deduplicate by position.
var smellCatalog = []smellPattern{
	{`Arc<RwLock<.*>>`, domain.OverEngineering, 0.8},
	{`Mutex<HashMap<.*>>`, domain.OverEngineering, 0.8},
	{`std::thread::sleep`, domain.DelayAbuse, 0.75},
	{`tokio::time::sleep`, domain.DelayAbuse, 0.75},
	{`\.unwrap\(\)`, domain.UnhandledResultAbuse, 0.7},
	{`\.clone\(\)`, domain.DuplicationAbuse, 0.7},

	// Conditional comparison against a float in [0.3, 1.0) is almost always
	// a hardcoded behavioral threshold.
	{`if\s+.*\s*[<>=]+\s*0\.[3-9][0-9]*`, domain.MagicNumber, 0.9},

	// A duration built from a literal of two or more digits.
	{`Duration::from_secs\(\d{2,}\)`, domain.HardcodedThreshold, 0.85},
}
