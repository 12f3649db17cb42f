package application_test

import (
	"os"
	"path/filepath"
	"testing"

	configloader "github.com/smellhound/smellhound/internal/adapters/outbound/config"
	"github.com/smellhound/smellhound/internal/adapters/outbound/scanner"
	"github.com/smellhound/smellhound/internal/application"
	"github.com/smellhound/smellhound/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *application.ScanService {
	return application.NewScanService(scanner.New(), configloader.New(), nil)
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func scanRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSource(t, root, "detector.rs", "let result = socket.recv().unwrap();\n")
	writeSource(t, root, "tuning.rs", "        let healing_threshold = 0.6;\n")
	return root
}

func TestScanService_Config(t *testing.T) {
	svc := newService()

	cfg, err := svc.Config(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "**/*.rs", cfg.Include)
}

func TestScanService_ScanSmells(t *testing.T) {
	root := scanRoot(t)
	svc := newService()

	cfg, err := svc.Config(root)
	require.NoError(t, err)

	alerts, err := svc.ScanSmells(root, cfg)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, domain.UnhandledResultAbuse, alerts[0].Category)
	assert.Contains(t, alerts[0].Snippet, "detector.rs:")
}

func TestScanService_ScanMagic(t *testing.T) {
	root := scanRoot(t)
	svc := newService()

	cfg, err := svc.Config(root)
	require.NoError(t, err)

	alerts, err := svc.ScanMagic(root, cfg)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, domain.MagicNumber, alerts[0].Category)
	assert.Equal(t, "tuning.rs:let healing_threshold = 0.6;", alerts[0].Snippet)
}

func TestScanService_ScanMagicByFile(t *testing.T) {
	root := scanRoot(t)
	svc := newService()

	cfg, err := svc.Config(root)
	require.NoError(t, err)

	files, err := svc.ScanMagicByFile(root, cfg)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "detector.rs", files[0].Path)
	assert.Empty(t, files[0].Alerts)
	assert.Equal(t, "tuning.rs", files[1].Path)
	require.Len(t, files[1].Alerts, 1)

	// Grouped results keep snippets unprefixed.
	assert.Equal(t, "let healing_threshold = 0.6;", files[1].Alerts[0].Snippet)
}
