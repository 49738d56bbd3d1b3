// Package config holds the simulation settings: grid size, entity naming,
// prompt and logging. Settings start from Default, may be overlaid by an
// HCL file and are finally overridden by command-line flags.
package config
