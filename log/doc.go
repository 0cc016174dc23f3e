// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are immutable once created. Configuration is applied at
// creation time with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger writes to standard error and can be
// reconfigured once at startup with [Config]. The package-level
// [Debug], [Info], [Warn], and [Error] functions log through it.
//
// # Output Formats
//
// Two output formats are supported, [FormatText] (default) and
// [FormatJSON]. When pretty printing is enabled (the default for text),
// keys and values are colorized for terminal output.
package log
