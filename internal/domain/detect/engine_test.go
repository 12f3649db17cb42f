package detect_test

import (
	"strings"
	"testing"

	"github.com/smellhound/smellhound/internal/domain"
	"github.com/smellhound/smellhound/internal/domain/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FlagsThresholdComparison(t *testing.T) {
	code := "if confidence > 0.85 {\n    do_something();\n}\n"

	alerts, err := detect.Scan(code, domain.DefaultDetectConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, domain.MagicNumber, alert.Category)
	assert.InDelta(t, 0.9, alert.Confidence, 1e-9)
	assert.Equal(t, alert.Confidence, alert.Severity)
	assert.Equal(t, 1, alert.Location.Line)
	assert.Contains(t, alert.Snippet, "if confidence > 0.85")
}

func TestScan_SingleDigitSleepIsOnlyDelayAbuse(t *testing.T) {
	code := "std::thread::sleep(Duration::from_secs(5));\n"

	alerts, err := detect.Scan(code, domain.DefaultDetectConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, domain.DelayAbuse, alerts[0].Category)
	assert.InDelta(t, 0.75, alerts[0].Confidence, 1e-9)
}

func TestScan_LongSleepDurationIsAlsoFlagged(t *testing.T) {
	code := "tokio::time::sleep(Duration::from_secs(30)).await;\n"

	alerts, err := detect.Scan(code, domain.DefaultDetectConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, domain.DelayAbuse, alerts[0].Category)
	assert.Equal(t, domain.HardcodedThreshold, alerts[1].Category)
	assert.InDelta(t, 0.85, alerts[1].Confidence, 1e-9)
}

func TestScan_CatalogOrderIsStable(t *testing.T) {
	code := "let a = b.unwrap();\nlet c = d.clone();\n"

	alerts, err := detect.Scan(code, domain.DefaultDetectConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, domain.UnhandledResultAbuse, alerts[0].Category)
	assert.Equal(t, domain.DuplicationAbuse, alerts[1].Category)

	again, err := detect.Scan(code, domain.DefaultDetectConfig())
	require.NoError(t, err)
	assert.Equal(t, alerts, again)
}

func TestScan_ThresholdFiltersLowConfidencePatterns(t *testing.T) {
	code := "let state = Arc<RwLock<State>>::new();\nstd::thread::sleep(d);\nx.unwrap();\n"

	cfg := domain.DefaultDetectConfig()
	cfg.ConfidenceThreshold = 0.8

	alerts, err := detect.Scan(code, cfg)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.OverEngineering, alerts[0].Category)
}

func TestScan_EveryAlertMeetsThreshold(t *testing.T) {
	code := strings.Join([]string{
		"let shared = Mutex<HashMap<String, u64>>::default();",
		"if score >= 0.75 { accept(); }",
		"let copy = original.clone();",
		"std::thread::sleep(Duration::from_secs(60));",
	}, "\n")

	cfg := domain.DefaultDetectConfig()
	alerts, err := detect.Scan(code, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, alerts)

	for _, a := range alerts {
		assert.GreaterOrEqual(t, a.Confidence, cfg.ConfidenceThreshold)
		assert.LessOrEqual(t, a.Confidence, 1.0)
		assert.Equal(t, a.Confidence, a.Severity)
	}
}

func TestScanMagicNumbers_ConditionalThreshold(t *testing.T) {
	code := "    if entropy > 0.4 {\n        recalibrate();\n    }\n"

	alerts, err := detect.ScanMagicNumbers(code, "src/lib.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, domain.HardcodedThreshold, alert.Category)
	assert.InDelta(t, 0.85, alert.Confidence, 1e-9)
	assert.Equal(t, "if entropy > 0.4 {", alert.Snippet)
	assert.Contains(t, alert.Why, "0.4")
	assert.Contains(t, alert.Suggestion, "self.config.entropy_threshold")
}

func TestScanMagicNumbers_IndentedNamedAssignment(t *testing.T) {
	code := "fn heal(&mut self) {\n        let healing_threshold = 0.6;\n}\n"

	alerts, err := detect.ScanMagicNumbers(code, "test.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, domain.MagicNumber, alert.Category)
	assert.InDelta(t, 0.8, alert.Confidence, 1e-9)
	assert.Equal(t, "let healing_threshold = 0.6;", alert.Snippet)
	assert.Equal(t, 2, alert.Location.Line)
	assert.Contains(t, alert.Why, "0.6")
	assert.Contains(t, alert.Why, "healing_threshold")
	assert.Contains(t, alert.Suggestion, "healing_threshold")
}

func TestScanMagicNumbers_WhitelistedValuesProduceNoAlerts(t *testing.T) {
	code := "let index = 0;\nlet count = 1;\n"

	alerts, err := detect.ScanMagicNumbers(code, "test.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestScanMagicNumbers_WhitelistedPathSkipsScan(t *testing.T) {
	code := "        let healing_threshold = 0.6;\n"

	alerts, err := detect.ScanMagicNumbers(code, "src/config.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestScanMagicNumbers_ScanConfigFilesOverridesPathWhitelist(t *testing.T) {
	code := "        let healing_threshold = 0.6;\n"

	cfg := domain.DefaultMagicNumberConfig()
	cfg.ScanConfigFiles = true

	alerts, err := detect.ScanMagicNumbers(code, "src/config.rs", cfg)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.MagicNumber, alerts[0].Category)

	// Non-config whitelist entries still apply.
	alerts, err = detect.ScanMagicNumbers(code, "tests/fixtures.rs", cfg)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestScanMagicNumbers_FunctionCallWithTwoLiterals(t *testing.T) {
	code := "    calculate_topology(0.5, 0.8);\n"

	alerts, err := detect.ScanMagicNumbers(code, "src/main.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, domain.MagicNumber, alert.Category)
	assert.InDelta(t, 0.75, alert.Confidence, 1e-9)
	assert.Contains(t, alert.Why, "calculate_topology")
	assert.Contains(t, alert.Why, "2 hardcoded numeric arguments")
}

func TestScanMagicNumbers_SingleOrWhitelistedArgsNotFlagged(t *testing.T) {
	cfg := domain.DefaultMagicNumberConfig()

	alerts, err := detect.ScanMagicNumbers("    resize(0, 1);\n", "src/main.rs", cfg)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	alerts, err = detect.ScanMagicNumbers("    blend(0.3, 1);\n", "src/main.rs", cfg)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestScanMagicNumbers_ScannersMergeInFixedOrder(t *testing.T) {
	code := strings.Join([]string{
		"if entropy > 0.4 {",
		"    let healing_threshold = 0.6;",
		"    blend_topology(0.3, 0.7);",
		"}",
	}, "\n")

	alerts, err := detect.ScanMagicNumbers(code, "src/main.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	assert.Equal(t, domain.HardcodedThreshold, alerts[0].Category)
	assert.Equal(t, domain.MagicNumber, alerts[1].Category)
	assert.Contains(t, alerts[1].Why, "healing_threshold")
	assert.Equal(t, domain.MagicNumber, alerts[2].Category)
	assert.Contains(t, alerts[2].Why, "blend_topology")
}

func TestScanMagicNumbers_AssignmentEmitGate(t *testing.T) {
	cfg := domain.DefaultMagicNumberConfig()
	cfg.ConfidenceThreshold = 0

	// One name keyword, no suffix, no indentation: 0.65 clears the gate.
	alerts, err := detect.ScanMagicNumbers("let max_retries = 7;\n", "src/main.rs", cfg)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.InDelta(t, 0.65, alerts[0].Confidence, 1e-9)

	// No keyword: 0.4 stays below the gate even with no retain threshold.
	alerts, err = detect.ScanMagicNumbers("let retries = 9;\n", "src/main.rs", cfg)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestScanMagicNumbers_AssignmentWithoutLet(t *testing.T) {
	code := "    outer_width = 3.5;\n"

	alerts, err := detect.ScanMagicNumbers(code, "src/main.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.InDelta(t, 0.8, alerts[0].Confidence, 1e-9)
	assert.Contains(t, alerts[0].Why, "outer_width")
}

func TestScanMagicNumbers_ThresholdDropsWeakAssignments(t *testing.T) {
	// Name keyword but no suffix and no indentation: 0.65, below the
	// default 0.7 cut.
	code := "let max_retries = 7;\n"

	alerts, err := detect.ScanMagicNumbers(code, "src/main.rs", domain.DefaultMagicNumberConfig())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
