// Package cli parses command-line arguments into a validated
// config.Config and maps usage problems to process exit codes.
package cli
