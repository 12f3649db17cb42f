package detect

import (
	"strings"

	"github.com/smellhound/smellhound/internal/domain"
)

// pathWhitelisted reports whether filePath is exempt from the magic-number
// scan. A path is exempt when it contains any whitelist entry as a literal
// substring. When ScanConfigFiles is set, entries that reference
// configuration files are skipped, which re-enables scanning of them.
func pathWhitelisted(filePath string, cfg domain.MagicNumberConfig) bool {
	for _, entry := range cfg.WhitelistPaths {
		if cfg.ScanConfigFiles && referencesConfigFile(entry) {
			continue
		}
		if strings.Contains(filePath, entry) {
			return true
		}
	}
	return false
}

func referencesConfigFile(entry string) bool {
	return strings.Contains(entry, "config.rs") || strings.Contains(entry, "config/")
}
