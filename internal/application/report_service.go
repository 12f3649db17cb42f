package application

import (
	"time"

	"github.com/smellhound/smellhound/internal/domain"
)

// ReportService assembles the per-file magic-number report, stamped with the
// scan time and, when the root is a git repository, the current commit.
type ReportService struct {
	scans   *ScanService
	gitInfo domain.GitInfo
}

func NewReportService(scans *ScanService, gitInfo domain.GitInfo) *ReportService {
	return &ReportService{scans: scans, gitInfo: gitInfo}
}

// BuildReport scans root and returns the grouped results with metadata.
func (r *ReportService) BuildReport(root string, cfg domain.ScanConfig) (*domain.MagicReport, error) {
	files, err := r.scans.ScanMagicByFile(root, cfg)
	if err != nil {
		return nil, err
	}

	report := &domain.MagicReport{
		GeneratedAt: time.Now().UTC(),
		Files:       files,
	}

	if r.gitInfo != nil && r.gitInfo.IsGitRepo(root) {
		if hash, err := r.gitInfo.CommitHash(root); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}
