// Package preopt: SAT confirmation of candidate node merges.
package preopt

import (
	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/memlogic/logic"
)

// satEqual proves that signals a and b of n compute the same function: the
// cones of both are encoded as clauses, a XOR b is asserted, and UNSAT means
// equal. A solver hiccup is treated as "not proven" — the merge is simply
// skipped, never applied unverified.
func satEqual(n *logic.Network, a, b logic.Signal) bool {
	la, lb := n.Lit(a), n.Lit(b)
	if la == lb {
		return true
	}
	clauses := n.Clauses(nil, a, b)
	clauses = append(clauses, []int{la, lb}, []int{-la, -lb})
	pb := solver.ParseSlice(clauses)
	return solver.New(pb).Solve() == solver.Unsat
}
