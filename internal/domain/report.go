package domain

import "time"

// MagicReport holds per-file magic-number results plus metadata for report
// rendering.
type MagicReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	CommitHash  string       `json:"commit_hash,omitempty"`
	Files       []FileAlerts `json:"files"`
}

// TotalAlerts counts alerts across all files.
func (r *MagicReport) TotalAlerts() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Alerts)
	}
	return total
}
