package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smellhound",
		Short:         "Fast detector for magic numbers and code smells",
		Long:          "Smellhound scans source text for hardcoded numeric literals, hardcoded thresholds, and a fixed catalog of structural anti-patterns, producing confidence-scored alerts with suggested fixes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newScanMagicCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
