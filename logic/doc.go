// Package logic provides the mutable combinational logic network that every
// other memlogic package operates on: a strashed DAG of Boolean gates with
// complemented edges, primary inputs, and primary outputs.
//
// A Network comes in one of three flavors, which fixes its primitive gate set:
//
//   - AIG — AND gates only (XOR/MAJ requests are decomposed into ANDs)
//   - XAG — AND and XOR gates
//   - MIG — majority-of-three gates (AND/OR become majorities with a constant)
//
// Key properties:
//
//   - Signals: a Signal packs a node index and a complement bit, so inversion
//     is free and never allocates a node. Signals 0 and 1 always denote the
//     Boolean constants, in every network and every streaming namespace.
//   - Topological storage: nodes are stored in creation order and every gate
//     fanin precedes the gate itself, so a single forward sweep is a valid
//     topological traversal. Acyclicity holds by construction.
//   - Structural hashing: gate constructors normalize operand order, fold
//     constants, apply single-level simplification rules, and return an
//     existing node when one computes the same function structurally.
//   - Views: DepthView and FanoutView annotate the current node set with
//     levels and fanout lists; they are snapshots and must be rebuilt after
//     any mutation.
//   - Rebuilding: CleanupDangling replays the cones of all primary outputs
//     into a fresh network, dropping nodes unreachable from any output.
//     Rewriting passes express node substitution through the same mechanism.
//   - Simulation: 64 input patterns are evaluated per call using word-level
//     bitwise operations (Simulate, NodeValues, OutputTruthTables).
//   - CNF export: Clauses emits Tseitin clauses for selected cones in the
//     integer-literal form consumed by gophersat, for SAT-based equivalence
//     reasoning.
//   - Streaming: Stream replays a network gate by gate into any Visitor, and
//     Builder is the Visitor that reconstructs a Network from such a replay.
//     This pair is the only way a network crosses the compilation-service
//     boundary.
//
// Construction example:
//
//	ntk := logic.NewNetwork(logic.MIG)
//	a, b, c := ntk.AddPI(), ntk.AddPI(), ntk.AddPI()
//	ntk.AddPO(ntk.Maj(a, b, c))
//
// Networks are not safe for concurrent mutation; a network is exclusively
// owned by its calling goroutine for the duration of any pass over it.
package logic
