// Package cmd provides the flatenv subcommands.
//
//   - export (default): print a shell export statement per pair
//   - browse: pick one pair with an interactive fuzzy finder
//   - init: write the current flag values to the configuration file
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the YAML configuration file.
//
//nolint:gochecknoglobals
var ConfigIdentifier = "config"
