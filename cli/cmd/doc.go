// Package cmd implements the optexpr subcommands.
//
// Each command reads an options record from its positional argument, a file
// given with -f, or standard input, and writes its result to standard output.
// Commands that evaluate records resolve identifiers against an optional
// scope document (YAML or JSON) and may call the host functions select,
// expr, env and pathlist.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
