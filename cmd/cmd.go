// Package cmd defines the command-line interface for pagelens.
package cmd

import (
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("level", string(schema.LevelAA), "WCAG conformance level: A or AA or AAA")
	rootCmd.PersistentFlags().Bool("advanced", true, "Run the structural detection pass")
	rootCmd.PersistentFlags().Bool("semantic", true, "Run the semantic detection pass")
	rootCmd.PersistentFlags().Bool("ai", false, "Include a prose insight summary in the report")
	rootCmd.PersistentFlags().String("tags", "", "Comma-separated extra rule tags to include")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of finding rows to display")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int("history-limit", contract.DefaultHistoryLimit, "Number of scans retained in history")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in console headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
