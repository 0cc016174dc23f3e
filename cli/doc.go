// Package cli contains the command line interface for lolmd.
//
// # Usage
//
// The CLI exposes the compiler pipeline as subcommands:
//
//	lolmd build page.lol           # compile to page.html
//	lolmd check page.lol           # validate without emitting HTML
//	lolmd fmt ast page.lol         # dump the syntax tree
//	lolmd repl                     # interactive session
//
// # Configuration
//
// Flags may be set persistently in a YAML configuration file located at
// the user config directory (for example ~/.config/lolmd/config.yaml).
// Flag names with hyphens may use underscores in the file:
//
//	log_level: debug
//	log_format: text
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//     (default: ~/.cache/lolmd/pprof)
package cli
