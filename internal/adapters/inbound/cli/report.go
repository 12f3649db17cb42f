package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smellhound/smellhound/internal/adapters/outbound/gitinfo"
	"github.com/smellhound/smellhound/internal/adapters/outbound/tui"
	"github.com/smellhound/smellhound/internal/application"
)

func newReportCmd() *cobra.Command {
	var (
		jsonOutput bool
		include    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Generate a magic-number report",
		Long:  "Scan the given path and render a per-file magic-number report as markdown, stamped with the scan time and current commit when available.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			scans, err := newScanService(debug)
			if err != nil {
				return err
			}
			svc := application.NewReportService(scans, gitinfo.New())

			cfg, err := scans.Config(root)
			if err != nil {
				return err
			}
			if include != "" {
				cfg.Include = include
			}

			report, err := svc.BuildReport(root, cfg)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMarkdownReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&include, "include", "", "Glob selecting files to scan (default from config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
