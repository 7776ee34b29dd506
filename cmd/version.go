package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pagelens.",
	Long: `Display the release version together with build metadata.

Include this output when reporting a bug so results can be matched
to the exact rule set and scoring tables that produced them.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("pagelens CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
