package config

import "github.com/AndreyAkinshin/gnu-json-result/internal/testparser"

// Default configuration values.
const (
	DefaultAggregateLog = testparser.AutotestLogName
	DefaultExtension    = ".log"
	DefaultTailBytes    = testparser.DefaultTailWindow
	DefaultFormat       = "json"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.AggregateLog == "" {
		cfg.AggregateLog = DefaultAggregateLog
	}
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if cfg.TailBytes == 0 {
		cfg.TailBytes = DefaultTailBytes
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
}
