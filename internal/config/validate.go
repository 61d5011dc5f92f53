package config

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/gnu-json-result/internal/output"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration with defaults applied.
// Flag overrides bypass the schema, so the same rules are enforced here.
func Validate(cfg *Config) error {
	if !strings.HasPrefix(cfg.Extension, ".") || len(cfg.Extension) < 2 {
		return &ValidationError{Field: "extension", Message: `must start with "." and name a suffix`}
	}
	if strings.ContainsAny(cfg.Extension, `/\`) {
		return &ValidationError{Field: "extension", Message: "must not contain path separators"}
	}
	if cfg.AggregateLog == "" || strings.ContainsAny(cfg.AggregateLog, `/\`) {
		return &ValidationError{Field: "aggregate_log", Message: "must be a plain file name"}
	}
	if cfg.TailBytes <= 0 {
		return &ValidationError{Field: "tail_bytes", Message: "must be positive"}
	}
	if _, err := output.ParseFormat(cfg.Format); err != nil {
		return &ValidationError{Field: "format", Message: err.Error()}
	}
	return nil
}
