// Package blif reads combinational benchmarks in the Berkeley Logic
// Interchange Format and materializes them as logic networks.
//
// The supported subset is the combinational core: .model, .inputs,
// .outputs, .names cover tables and .end, with backslash line
// continuations and # comments. Cover rows may describe the onset or the
// offset of a net; don't-care positions are honored. Sequential
// constructs (.latch) are rejected.
//
// Networks are built in the caller's flavor, so the same benchmark file
// feeds AND-inverter, XOR-AND and majority targets alike.
package blif
