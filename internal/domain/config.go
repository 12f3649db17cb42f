package domain

import "fmt"

// DetectConfig tunes the generic smell scan. Built once by the caller and
// passed into every scan; the engine never mutates it.
type DetectConfig struct {
	// ConfidenceThreshold drops alerts scored below it.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" json:"confidence_threshold"`

	// MaxSnippetLength bounds the context snippet of generic-scan alerts.
	MaxSnippetLength int `yaml:"max_snippet_length" json:"max_snippet_length"`
}

// DefaultDetectConfig returns the stock generic-scan tuning.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{
		ConfidenceThreshold: 0.618, // golden ratio inverse
		MaxSnippetLength:    500,
	}
}

// Validate checks the config for out-of-range values.
func (c DetectConfig) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold %.3f out of range [0,1]", c.ConfidenceThreshold)
	}
	if c.MaxSnippetLength <= 0 {
		return fmt.Errorf("max_snippet_length must be > 0 (got %d)", c.MaxSnippetLength)
	}
	return nil
}

// MagicNumberConfig tunes the magic-number scan.
type MagicNumberConfig struct {
	// WhitelistPaths lists path substrings that exempt a file entirely.
	WhitelistPaths []string `json:"whitelist_paths"`

	// WhitelistValues holds literal value strings exempt from reporting.
	// Matching is exact textual, not numeric: "0.50" and "0.5" are distinct.
	WhitelistValues map[string]bool `json:"whitelist_values"`

	// ConfidenceThreshold drops alerts scored below it.
	ConfidenceThreshold float64 `json:"confidence_threshold"`

	// ScanConfigFiles, when true, skips whitelist entries that reference
	// configuration files, re-enabling scanning of them.
	ScanConfigFiles bool `json:"scan_config_files"`
}

// DefaultMagicNumberConfig returns the stock magic-number tuning.
func DefaultMagicNumberConfig() MagicNumberConfig {
	return MagicNumberConfig{
		WhitelistPaths: []string{"src/config.rs", "tests/", "benches/"},
		WhitelistValues: map[string]bool{
			"0":     true,
			"1":     true,
			"2":     true,
			"100":   true, // common percentage base
			"1000":  true, // common millisecond base
			"1e-10": true, // common epsilon
		},
		ConfidenceThreshold: 0.7,
		ScanConfigFiles:     false,
	}
}

// Validate checks the config for out-of-range values.
func (c MagicNumberConfig) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold %.3f out of range [0,1]", c.ConfidenceThreshold)
	}
	return nil
}

// ScanConfig bundles engine configs with file-discovery settings. It is what
// the configuration loader hands the application layer.
type ScanConfig struct {
	Detect  DetectConfig
	Magic   MagicNumberConfig
	Include string // doublestar glob selecting files to scan
}

// DefaultScanConfig returns defaults for both engines and discovery.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Detect:  DefaultDetectConfig(),
		Magic:   DefaultMagicNumberConfig(),
		Include: "**/*.rs",
	}
}

// Validate checks both engine configs and the include pattern.
func (c ScanConfig) Validate() error {
	if err := c.Detect.Validate(); err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	if err := c.Magic.Validate(); err != nil {
		return fmt.Errorf("magic: %w", err)
	}
	if c.Include == "" {
		return fmt.Errorf("include pattern must not be empty")
	}
	return nil
}
