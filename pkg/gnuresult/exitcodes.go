// Package gnuresult provides public constants for tools that invoke gnu-json-result.
package gnuresult

// Exit codes returned by the gnu-json-result CLI.
const (
	// ExitSuccess indicates the tree was written. Per-file errors do not change it.
	ExitSuccess = 0

	// ExitFailure indicates a usage error, a missing directory or an interrupted run.
	ExitFailure = 1

	// ExitConfigError indicates an invalid config file or flag value.
	ExitConfigError = 2
)
