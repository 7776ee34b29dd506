// Package contract holds the validated runtime configuration and the
// small shared helpers (labels, console output, file selection) used
// across pagelens.
package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/pagelens/pagelens/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 1
	DefaultHistoryLimit = schema.DefaultHistoryLimit
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// SeverityWeightsRaw holds optional per-severity penalty overrides from
// the YAML config file. Pointers distinguish "absent" from zero.
type SeverityWeightsRaw struct {
	Critical *float64 `mapstructure:"critical"`
	Serious  *float64 `mapstructure:"serious"`
	Moderate *float64 `mapstructure:"moderate"`
	Minor    *float64 `mapstructure:"minor"`
}

// WeightsRawInput holds the custom scoring tables from the config file.
type WeightsRawInput struct {
	Structural *SeverityWeightsRaw `mapstructure:"structural"`
	Semantic   *SeverityWeightsRaw `mapstructure:"semantic"`
}

// Config is the final, validated runtime configuration for a scan.
type Config struct {
	Level           schema.WCAGLevel
	IncludeAdvanced bool
	IncludeSemantic bool
	IncludeAI       bool
	Tags            []string

	Output       schema.OutputMode
	OutputFile   string
	Precision    int
	ResultLimit  int
	Width        int // Terminal width override (0 = auto-detect)
	HistoryLimit int

	UseEmojis bool
	UseColors bool

	// Weights is the scoring policy passed into the aggregator: defaults
	// merged with any config-file overrides.
	Weights schema.ScoringWeights
}

// Clone returns a shallow copy of the configuration with its own weight
// tables, safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Tags = append([]string(nil), c.Tags...)
	clone.Weights = schema.ScoringWeights{
		Structural: c.Weights.Structural.Merged(nil),
		Semantic:   c.Weights.Semantic.Merged(nil),
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Level        string `mapstructure:"level"`
	Advanced     bool   `mapstructure:"advanced"`
	Semantic     bool   `mapstructure:"semantic"`
	AI           bool   `mapstructure:"ai"`
	Tags         string `mapstructure:"tags"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Precision    int    `mapstructure:"precision"`
	Limit        int    `mapstructure:"limit"`
	Width        int    `mapstructure:"width"`
	HistoryLimit int    `mapstructure:"history-limit"`
	Emoji        string `mapstructure:"emoji"`
	Color        string `mapstructure:"color"`

	Weights WeightsRawInput `mapstructure:"weights"`
}

// ProcessAndValidate populates cfg from the raw input, validating every
// field and merging weight overrides onto the default tables.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	level := schema.WCAGLevel(strings.ToUpper(strings.TrimSpace(input.Level)))
	if _, ok := schema.ValidWCAGLevels[level]; !ok {
		return fmt.Errorf("invalid WCAG level %q (want A, AA or AAA)", input.Level)
	}
	cfg.Level = level

	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (want text, json, csv or parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	if input.HistoryLimit < 1 {
		return fmt.Errorf("history-limit must be at least 1, got %d", input.HistoryLimit)
	}
	cfg.HistoryLimit = input.HistoryLimit

	cfg.IncludeAdvanced = input.Advanced
	cfg.IncludeSemantic = input.Semantic
	cfg.IncludeAI = input.AI
	cfg.Tags = splitTags(input.Tags)
	cfg.UseEmojis = parseBoolish(input.Emoji)
	cfg.UseColors = parseBoolish(input.Color)

	cfg.Weights = schema.ScoringWeights{
		Structural: schema.DefaultStructuralWeights().Merged(overrides(input.Weights.Structural)),
		Semantic:   schema.DefaultSemanticWeights().Merged(overrides(input.Weights.Semantic)),
	}
	return nil
}

func overrides(raw *SeverityWeightsRaw) map[schema.Severity]*float64 {
	if raw == nil {
		return nil
	}
	return map[schema.Severity]*float64{
		schema.SeverityCritical: raw.Critical,
		schema.SeveritySerious:  raw.Serious,
		schema.SeverityModerate: raw.Moderate,
		schema.SeverityMinor:    raw.Minor,
	}
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseBoolish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	}
	return false
}
