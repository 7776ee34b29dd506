package contract

import (
	"fmt"
	"os"
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning with its cause.
func LogWarn(msg string, err error) {
	fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// LogWarnf logs a formatted warning.
func LogWarnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "⚠️  "+format+"\n", args...)
}

// LogScanHeader prints a concise, 2-line header for a scan.
func LogScanHeader(cfg *Config, address string) {
	if cfg.UseEmojis {
		fmt.Printf("🔎 Document: %s (Level: %s)\n", address, cfg.Level)
		fmt.Printf("🧪 Passes: advanced=%t semantic=%t insight=%t\n", cfg.IncludeAdvanced, cfg.IncludeSemantic, cfg.IncludeAI)
		return
	}
	fmt.Printf("Document: %s (Level: %s)\n", address, cfg.Level)
	fmt.Printf("Passes: advanced=%t semantic=%t insight=%t\n", cfg.IncludeAdvanced, cfg.IncludeSemantic, cfg.IncludeAI)
}

// LogCompareHeader prints a header for document comparison.
func LogCompareHeader(cfg *Config, base, target string) {
	if cfg.UseEmojis {
		fmt.Printf("📊 Comparing: %s ↔ %s (Level: %s)\n", base, target, cfg.Level)
		return
	}
	fmt.Printf("Comparing: %s <-> %s (Level: %s)\n", base, target, cfg.Level)
}
