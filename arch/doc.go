// Package arch provides the reference compilation services for the
// supported processing-in-memory targets, each implementing the
// compile.Service boundary in process:
//
//   - Imply()   — implication-based cells (IMP / FALSE), AIG networks
//   - Plim()    — resistive majority cells (RM3), MIG networks
//   - Felix()   — in-array AND/OR/XOR cells, XAG networks
//   - Ambit()   — triple-row-activation majority with DCC negation rows,
//     MIG networks; the row layout is configurable via YAML
//   - Simdram() — AP/AAP majority μop sequences, MIG networks
//
// All five share one engine: the streamed network first passes an optional
// rewriting phase (selected by the rewriting strategy and bounded by the
// size factor), is then lowered gate by gate to cell instructions — the
// candidate search honoring the compilation mode (greedy takes the first
// feasible placement, exhaustive keeps the cheapest) and the candidate
// selection mode (network-guided pruning prefers placements whose operands
// are still resident) — and the emitted program is finally re-interpreted
// into a fresh network and judged by the caller's validator. Validation
// works off the instruction list, not the lowering intent, so operand
// mix-ups in emission are caught.
//
// Each service reports the full compile.Statistics record; the program text
// renders one instruction per line in the target's mnemonics.
package arch
