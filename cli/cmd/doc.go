// Package cmd implements the lolmd subcommands: build, check, and fmt.
package cmd

// CacheIdentifier is the kong variable identifier containing the path to
// the runtime cache directory.
var CacheIdentifier = "cache"
