// Package preopt: simulation signatures shared by the rewriting passes.
package preopt

import (
	"math/rand"

	"github.com/katalvlaran/memlogic/logic"
)

// signatureSeed fixes the random pattern stream so passes are deterministic
// and preoptimization is idempotent run-to-run.
const signatureSeed = 0x5eed1091c

// signatures returns per-node simulation words, one slice per round, indexed
// by node. Networks narrow enough for exhaustive patterns get a single exact
// round; wider networks get simRounds random rounds. Signature equality is a
// merge candidate only — every merge is confirmed by SAT.
func signatures(n *logic.Network) [][]uint64 {
	if n.NumPIs() <= logic.TruthTableMaxInputs {
		inputs := make([]uint64, n.NumPIs())
		for i := range inputs {
			inputs[i] = logic.TTProjection(i)
		}
		vals, _ := n.NodeValues(inputs)
		return [][]uint64{vals}
	}
	rng := rand.New(rand.NewSource(signatureSeed))
	out := make([][]uint64, 0, simRounds)
	for r := 0; r < simRounds; r++ {
		inputs := make([]uint64, n.NumPIs())
		for i := range inputs {
			inputs[i] = rng.Uint64()
		}
		vals, _ := n.NodeValues(inputs)
		out = append(out, vals)
	}
	return out
}

// sigEqual reports whether nodes i and j agree on every round, either
// plainly (compl false) or complemented (compl true).
func sigEqual(sigs [][]uint64, i, j uint32, compl bool) bool {
	for _, round := range sigs {
		v := round[j]
		if compl {
			v = ^v
		}
		if round[i] != v {
			return false
		}
	}
	return true
}

// sigConstant reports whether node i simulates as the given constant in
// every round.
func sigConstant(sigs [][]uint64, i uint32, one bool) bool {
	want := uint64(0)
	if one {
		want = ^uint64(0)
	}
	for _, round := range sigs {
		if round[i] != want {
			return false
		}
	}
	return true
}
