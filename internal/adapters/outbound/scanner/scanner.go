package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/smellhound/smellhound/internal/domain"
)

// Build output and test trees never hold configuration-worthy literals.
var skipDirs = map[string]bool{
	"target":       true,
	"tests":        true,
	"benches":      true,
	"node_modules": true,
	"vendor":       true,
	".git":         true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks root and collects files matching the include glob, relative to
// root and sorted for deterministic scan order. A root that is itself a file
// yields exactly that file.
func (s *FileScanner) Scan(root, include string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return &domain.ScanResult{
			RootPath: filepath.Dir(absPath),
			Files:    []string{filepath.Base(absPath)},
		}, nil
	}

	if !doublestar.ValidatePattern(include) {
		return nil, fmt.Errorf("invalid include pattern %q", include)
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(absPath, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		ok, err := doublestar.Match(include, relPath)
		if err != nil {
			return err
		}
		if ok && !strings.HasPrefix(d.Name(), ".") {
			result.Files = append(result.Files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.Files)
	return result, nil
}
