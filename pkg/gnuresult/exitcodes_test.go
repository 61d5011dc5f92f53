package gnuresult_test

import (
	"testing"

	"github.com/AndreyAkinshin/gnu-json-result/internal/errors"
	"github.com/AndreyAkinshin/gnu-json-result/pkg/gnuresult"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", gnuresult.ExitSuccess, 0},
		{"ExitFailure", gnuresult.ExitFailure, 1},
		{"ExitConfigError", gnuresult.ExitConfigError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("gnuresult.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency keeps the public constants in sync with internal/errors.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", gnuresult.ExitSuccess, errors.ExitSuccess},
		{"Failure", gnuresult.ExitFailure, errors.ExitRuntimeError},
		{"ConfigError", gnuresult.ExitConfigError, errors.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("%s: public = %d, internal = %d", tt.name, tt.public, tt.internal)
			}
		})
	}
}
