package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configloader "github.com/smellhound/smellhound/internal/adapters/outbound/config"
	"github.com/smellhound/smellhound/internal/adapters/outbound/logging"
	"github.com/smellhound/smellhound/internal/adapters/outbound/scanner"
	"github.com/smellhound/smellhound/internal/adapters/outbound/tui"
	"github.com/smellhound/smellhound/internal/application"
	"github.com/smellhound/smellhound/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		threshold  float64
		include    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan code for all code smells",
		Long:  "Run the generic smell catalog over every matching file under the given path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			svc, err := newScanService(debug)
			if err != nil {
				return err
			}

			cfg, err := svc.Config(root)
			if err != nil {
				return err
			}
			applyFlags(&cfg, cmd, threshold, include)

			alerts, err := svc.ScanSmells(root, cfg)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			return renderAlerts(cmd, alerts, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output alerts as JSON")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Confidence threshold (0.0-1.0)")
	cmd.Flags().StringVar(&include, "include", "", "Glob selecting files to scan (default from config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

func newScanMagicCmd() *cobra.Command {
	var (
		jsonOutput bool
		threshold  float64
		include    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "scan-magic [path]",
		Short: "Scan code for magic numbers and hardcoded thresholds",
		Long:  "Run the magic-number scanners (conditionals, assignments, function arguments) over every matching file under the given path, honoring the path and value whitelists.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			svc, err := newScanService(debug)
			if err != nil {
				return err
			}

			cfg, err := svc.Config(root)
			if err != nil {
				return err
			}
			applyFlags(&cfg, cmd, threshold, include)

			alerts, err := svc.ScanMagic(root, cfg)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			return renderAlerts(cmd, alerts, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output alerts as JSON")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Confidence threshold (0.0-1.0)")
	cmd.Flags().StringVar(&include, "include", "", "Glob selecting files to scan (default from config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

func resolveRoot(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func newScanService(debug bool) (*application.ScanService, error) {
	log, err := logging.New(debug)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return application.NewScanService(scanner.New(), configloader.New(), log), nil
}

// applyFlags overlays explicitly set CLI flags on the loaded config.
func applyFlags(cfg *domain.ScanConfig, cmd *cobra.Command, threshold float64, include string) {
	if cmd.Flags().Changed("threshold") {
		cfg.Detect.ConfidenceThreshold = threshold
		cfg.Magic.ConfidenceThreshold = threshold
	}
	if include != "" {
		cfg.Include = include
	}
}

func renderAlerts(cmd *cobra.Command, alerts []domain.Alert, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if alerts == nil {
			alerts = []domain.Alert{}
		}
		return enc.Encode(alerts)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderAlerts(alerts))
	return nil
}
