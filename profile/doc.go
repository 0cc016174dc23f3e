// Package profile provides optional runtime profiling for the lolmd
// command.
//
// Profiling integrates [github.com/pkg/profile] and must be enabled at
// build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// The supported modes are allocs, block, clock, cpu, goroutine, heap,
// mem, mutex, thread, and trace. Use [Modes] to retrieve the list
// programmatically. Profile files are written to the configured output
// directory with names matching the mode (e.g., cpu.pprof).
//
// Analyze results with the standard tooling:
//
//	go tool pprof ./lolmd ~/.cache/lolmd/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
