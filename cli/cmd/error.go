package cmd

import "github.com/ardnew/flatenv/pkg"

var (
	ErrYAMLMarshal      = pkg.NewError("marshal YAML")
	ErrWriteConfig      = pkg.NewError("write configuration file")
	ErrFileExists       = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoCommandContext = pkg.NewError("command run outside of a parsed command line")
)
