package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smellhound/smellhound/internal/domain"
)

const fileName = ".smellhound.yaml"

// Environment entries override file configuration. All ambient reads happen
// here, once per Load; the detection engine only ever sees the built config.
const (
	envWhitelistPaths  = "SMELLHOUND_MAGIC_WHITELIST_PATHS"
	envWhitelistValues = "SMELLHOUND_MAGIC_WHITELIST_VALUES"
	envThreshold       = "SMELLHOUND_MAGIC_CONFIDENCE_THRESHOLD"
	envScanConfigFiles = "SMELLHOUND_MAGIC_SCAN_CONFIG_FILES"
)

// fileConfig mirrors the .smellhound.yaml schema. Pointer fields distinguish
// "not specified" from zero values.
type fileConfig struct {
	Include             string   `yaml:"include"`
	ConfidenceThreshold *float64 `yaml:"confidence_threshold"`
	MaxSnippetLength    *int     `yaml:"max_snippet_length"`

	Magic struct {
		WhitelistPaths      []string `yaml:"whitelist_paths"`
		WhitelistValues     []string `yaml:"whitelist_values"`
		ConfidenceThreshold *float64 `yaml:"confidence_threshold"`
		ScanConfigFiles     *bool    `yaml:"scan_config_files"`
	} `yaml:"magic"`
}

// Loader implements domain.ConfigLoader: defaults, overlaid by
// .smellhound.yaml at the scan root, overlaid by SMELLHOUND_MAGIC_*
// environment entries.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load builds the effective configuration for root. A missing file is not an
// error; a malformed or invalid one is.
func (l *Loader) Load(root string) (domain.ScanConfig, error) {
	cfg := domain.DefaultScanConfig()

	data, err := os.ReadFile(filepath.Join(root, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	case err != nil:
		return domain.ScanConfig{}, err
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return domain.ScanConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		applyFile(&cfg, fc)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.ScanConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFile(cfg *domain.ScanConfig, fc fileConfig) {
	if fc.Include != "" {
		cfg.Include = fc.Include
	}
	if fc.ConfidenceThreshold != nil {
		cfg.Detect.ConfidenceThreshold = *fc.ConfidenceThreshold
	}
	if fc.MaxSnippetLength != nil {
		cfg.Detect.MaxSnippetLength = *fc.MaxSnippetLength
	}
	if len(fc.Magic.WhitelistPaths) > 0 {
		cfg.Magic.WhitelistPaths = fc.Magic.WhitelistPaths
	}
	if len(fc.Magic.WhitelistValues) > 0 {
		cfg.Magic.WhitelistValues = toSet(fc.Magic.WhitelistValues)
	}
	if fc.Magic.ConfidenceThreshold != nil {
		cfg.Magic.ConfidenceThreshold = *fc.Magic.ConfidenceThreshold
	}
	if fc.Magic.ScanConfigFiles != nil {
		cfg.Magic.ScanConfigFiles = *fc.Magic.ScanConfigFiles
	}
}

func applyEnv(cfg *domain.ScanConfig) {
	if v, ok := os.LookupEnv(envWhitelistPaths); ok {
		if paths := splitList(v); len(paths) > 0 {
			cfg.Magic.WhitelistPaths = paths
		}
	}

	if v, ok := os.LookupEnv(envWhitelistValues); ok {
		if values := splitList(v); len(values) > 0 {
			cfg.Magic.WhitelistValues = toSet(values)
		}
	}

	if v, ok := os.LookupEnv(envThreshold); ok {
		if threshold, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.Magic.ConfidenceThreshold = clamp(threshold, 0, 1)
		}
	}

	if v, ok := os.LookupEnv(envScanConfigFiles); ok {
		cfg.Magic.ScanConfigFiles = truthy(v)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
