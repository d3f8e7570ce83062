// Package preopt shrinks a logic network before compilation by driving two
// alternating rounds of local rewriting to a joint fixed point:
//
//  1. Local rewriting — structural resubstitution (a shallow divisor pass
//     followed by an exact single-gate pass), flavor-specific inverter
//     canonicalization on majority networks, and global functional reduction
//     that merges simulation-equivalent nodes after a SAT confirmation.
//  2. Cut-based resynthesis — bounded cut enumeration (cut size 4 by
//     default), NPN canonicalization of each cut function, and replacement
//     with a minimal known subcircuit when that does not grow the network.
//
// The two rounds address different redundancy classes — structural sharing
// versus template-matched restructuring — so the driver alternates them
// while the network keeps shrinking, up to a hard iteration cap
// (WithMaxIterations, default 100000). The cap is a safety valve against
// oscillation, not an expected exit path.
//
// Contract:
//
//   - Preoptimize never fails and never signals errors; a pass that cannot
//     improve the network leaves it unchanged.
//   - The result never has more nodes than the input (every pass is guarded
//     by a size check).
//   - Convergence is judged on node count alone: a round that changes depth
//     or cost while holding size is converged.
//   - Every accepted replacement is confirmed functionally equivalent, by
//     construction (truth-table resynthesis) or by SAT (resubstitution and
//     functional reduction).
//
// Usage:
//
//	ntk = preopt.Preoptimize(ntk)
//	ntk = preopt.Preoptimize(ntk, preopt.WithMaxIterations(10), preopt.WithCutSize(3))
//
// Preoptimize returns the optimized network; the input network is left
// intact for the caller.
package preopt
