package application

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/smellhound/smellhound/internal/domain"
	"github.com/smellhound/smellhound/internal/domain/detect"
)

// ScanService orchestrates the scan pipeline:
// load config → discover files → read → run the engine → merge.
// Each file scan is independent; only the immutable config is shared.
type ScanService struct {
	scanner domain.SourceScanner
	loader  domain.ConfigLoader
	log     *zap.SugaredLogger
}

func NewScanService(scanner domain.SourceScanner, loader domain.ConfigLoader, log *zap.SugaredLogger) *ScanService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ScanService{scanner: scanner, loader: loader, log: log}
}

// Config loads the effective scan configuration for root.
func (s *ScanService) Config(root string) (domain.ScanConfig, error) {
	cfg, err := s.loader.Load(root)
	if err != nil {
		return domain.ScanConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// ScanSmells runs the generic smell scan over every discovered file and
// returns the merged alerts, each snippet prefixed with its file path.
func (s *ScanService) ScanSmells(root string, cfg domain.ScanConfig) ([]domain.Alert, error) {
	return s.scanFiles(root, cfg, func(code, _ string) ([]domain.Alert, error) {
		return detect.Scan(code, cfg.Detect)
	})
}

// ScanMagic runs the magic-number scan over every discovered file and
// returns the merged alerts, each snippet prefixed with its file path.
func (s *ScanService) ScanMagic(root string, cfg domain.ScanConfig) ([]domain.Alert, error) {
	return s.scanFiles(root, cfg, func(code, relPath string) ([]domain.Alert, error) {
		return detect.ScanMagicNumbers(code, relPath, cfg.Magic)
	})
}

// ScanMagicByFile runs the magic-number scan and keeps alerts grouped per
// file, in discovery order, for report generation. Snippets are left
// unprefixed.
func (s *ScanService) ScanMagicByFile(root string, cfg domain.ScanConfig) ([]domain.FileAlerts, error) {
	scan, err := s.scanner.Scan(root, cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	results := make([]domain.FileAlerts, 0, len(scan.Files))
	for _, rel := range scan.Files {
		code, err := os.ReadFile(filepath.Join(scan.RootPath, rel))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		alerts, err := detect.ScanMagicNumbers(string(code), rel, cfg.Magic)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", rel, err)
		}
		s.log.Debugw("scanned file", "path", rel, "alerts", len(alerts))
		results = append(results, domain.FileAlerts{Path: rel, Alerts: alerts})
	}
	return results, nil
}

// scanFiles discovers files, applies fn per file, and merges the alerts with
// path-prefixed snippets. Prefixing is a presentation concern applied here,
// after the engine has finished; the engine never sees file paths in
// snippets.
func (s *ScanService) scanFiles(root string, cfg domain.ScanConfig, fn func(code, relPath string) ([]domain.Alert, error)) ([]domain.Alert, error) {
	scan, err := s.scanner.Scan(root, cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	s.log.Debugw("discovered files", "root", scan.RootPath, "count", len(scan.Files))

	var merged []domain.Alert
	for _, rel := range scan.Files {
		code, err := os.ReadFile(filepath.Join(scan.RootPath, rel))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}

		alerts, err := fn(string(code), rel)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", rel, err)
		}

		for i := range alerts {
			alerts[i].Snippet = fmt.Sprintf("%s:%s", rel, alerts[i].Snippet)
		}
		merged = append(merged, alerts...)
	}

	return merged, nil
}
