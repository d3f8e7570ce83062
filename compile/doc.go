// Package compile defines the vocabulary shared by every target
// architecture's compilation service — settings, statistics, the program
// buffer, the service boundary — and the pipeline orchestrator that drives
// one compilation end to end.
//
// The orchestrator's contract per call:
//
//  1. Optionally preoptimize the network (on by default; every observed
//     usage preoptimizes before compiling).
//  2. Bind a fresh equivalence validator to the network state about to be
//     compiled — after preoptimization, never before, since any structural
//     change invalidates a stale binding.
//  3. Stream the network into the service selected by the caller, together
//     with the settings and the validator.
//  4. Return the service's statistics (and optional program text or
//     rewritten network) unchanged: the orchestrator never post-processes
//     costs or timings.
//
// A validation failure is a result (Statistics.ValidationSuccess == false),
// not an error; errors are reserved for unusable settings and broken
// service implementations.
//
// The network crosses the service boundary only through the logic.Visitor
// streaming protocol, so a service written against this package never holds
// a raw graph handle. Program text crosses the boundary as a *Program, an
// owned buffer the caller must release exactly once (Release is idempotent).
//
// Usage:
//
//	stats, prog, err := compile.Compile(ntk, settings, arch.Ambit())
//	if err != nil { ... }
//	defer prog.Release()
package compile
