// Package validate: miter construction and the SAT equivalence query.
package validate

import (
	"errors"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/memlogic/logic"
)

// ErrSolver indicates the SAT backend returned no verdict on the miter.
// It never fires for well-formed networks.
var ErrSolver = errors.New("validate: SAT backend returned no verdict")

// Validator is a functional-equivalence oracle bound to a fixed reference
// network. It may be queried any number of times during one compilation.
type Validator struct {
	ref *logic.Network
}

// New binds a Validator to a snapshot of ref taken now.
func New(ref *logic.Network) *Validator {
	return &Validator{ref: ref.Clone()}
}

// Reference returns the bound reference snapshot. Callers must not mutate it.
func (v *Validator) Reference() *logic.Network { return v.ref }

// EquivalentNetwork reports whether cand computes the same function as the
// reference on every primary output. A primary input or output arity
// mismatch is a non-equivalence result, not an error.
func (v *Validator) EquivalentNetwork(cand *logic.Network) (bool, error) {
	return v.EquivalentOutputs(cand, cand.POs())
}

// EquivalentOutputs reports whether the given output signals of cand realize
// the reference outputs, pairwise in order. The candidate's own primary
// output list is ignored.
func (v *Validator) EquivalentOutputs(cand *logic.Network, outputs []logic.Signal) (bool, error) {
	// 1. Shape check: mismatched arity can never be equivalent.
	if cand.NumPIs() != v.ref.NumPIs() || len(outputs) != v.ref.NumPOs() {
		return false, nil
	}
	// 2. Degenerate miter: no outputs means nothing can disagree.
	if len(outputs) == 0 {
		return true, nil
	}

	// 3. Reference cone clauses in its own variable space.
	clauses := v.ref.Clauses(nil, v.ref.POs()...)
	off := v.ref.NumVars()

	// 4. Candidate cone clauses, shifted past the reference variables.
	candClauses := cand.Clauses(nil, outputs...)
	for _, cl := range candClauses {
		shifted := make([]int, len(cl))
		for i, l := range cl {
			shifted[i] = offsetLit(l, off)
		}
		clauses = append(clauses, shifted)
	}

	// 5. Tie the primary inputs of both sides together.
	for i, refPI := range v.ref.PIs() {
		r := int(refPI) + 1
		c := int(cand.PIs()[i]) + 1 + off
		clauses = append(clauses, []int{r, -c}, []int{-r, c})
	}

	// 6. One difference variable per output pair, d <-> (ref XOR cand),
	//    and the disjunction of all difference variables.
	base := off + cand.NumVars()
	any := make([]int, 0, len(outputs))
	for o, refPO := range v.ref.POs() {
		r := v.ref.Lit(refPO)
		c := offsetLit(cand.Lit(outputs[o]), off)
		d := base + o + 1
		clauses = append(clauses,
			[]int{-d, r, c},
			[]int{-d, -r, -c},
			[]int{d, -r, c},
			[]int{d, r, -c},
		)
		any = append(any, d)
	}
	clauses = append(clauses, any)

	// 7. Solve: a model is a disagreeing input assignment.
	pb := solver.ParseSlice(clauses)
	switch solver.New(pb).Solve() {
	case solver.Unsat:
		return true, nil
	case solver.Sat:
		return false, nil
	default:
		return false, ErrSolver
	}
}

// offsetLit shifts a signed literal's variable by off, preserving sign.
func offsetLit(l, off int) int {
	if l < 0 {
		return l - off
	}
	return l + off
}
