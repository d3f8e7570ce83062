// Package validate implements the functional-equivalence oracle handed to
// compilation services: a Validator is bound to one reference network at
// construction time and answers whether a candidate realization computes the
// same outputs.
//
// The check is satisfiability-based: reference and candidate are joined into
// a miter over shared primary inputs, each output pair is XORed, and the
// disjunction of the XORs is handed to the gophersat solver. The miter is
// satisfiable exactly where the two networks disagree, so UNSAT proves
// equivalence.
//
// Binding discipline: a Validator snapshots the reference network when
// created, so later structural changes to the original cannot invalidate it.
// The orchestrator must still create the Validator only after all
// preoptimization of the network it intends to compile — a validator bound
// to one network revision must never be used to judge a compilation of a
// different revision.
package validate
