// Package memlogic is a logic-network compiler toolkit for
// processing-in-memory architectures: load a benchmark, squeeze the
// network to a size fixed point, and lower it to cell instructions for
// your target array.
//
// 🚀 What is memlogic?
//
//	A compilation pipeline that brings together:
//		• Logic networks: AND-inverter, XOR-AND and majority graphs with
//		  structural hashing and complemented edges
//		• Preoptimization: resubstitution, functional reduction, inverter
//		  minimization and cut rewriting, iterated to a fixed point
//		• SAT validation: every generated program is re-interpreted and
//		  checked equivalent against the network it was compiled from
//		• Targets: imply, plim, felix, ambit and simdram cell arrays
//
// ✨ Why memlogic?
//
//   - Streamed service boundary – backends consume networks gate by gate,
//     never through a shared graph handle
//   - Honest statistics – one record per compilation, byte-for-byte stable
//     TSV rendering for benchmark scripts
//   - Configurable search – greedy or exhaustive candidate placement,
//     optionally guided by operand residency
//
// The subpackages:
//
//	logic/    — network representation, streaming, simulation, CNF export
//	preopt/   — the network preoptimizer
//	validate/ — SAT-backed equivalence checking
//	compile/  — settings, statistics, the service boundary, orchestration
//	arch/     — the five reference target services
//	blif/     — benchmark loading
//	cmd/memc  — the command-line driver
//
// Quick start:
//
//	ntk, _ := blif.ParseFile("adder.blif", logic.MIG)
//	stats, prog, _ := compile.Compile(ntk, compile.Settings{}, arch.Plim())
//	fmt.Println(stats.TSV())
//	prog.Release()
package memlogic
