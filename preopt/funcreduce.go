// Package preopt: global functional reduction — merging nodes that compute
// the same function.
package preopt

import "github.com/katalvlaran/memlogic/logic"

// sigKey is a polarity-normalized signature: word 0's lowest bit is forced
// to zero so a node and its complement land in the same bucket.
type sigKey struct {
	w0, w1, w2, w3 uint64
}

// functionalReduction merges simulation-equivalent gates into their earliest
// representative after a SAT confirmation, then rebuilds. Constant gates are
// folded onto the constant node the same way.
func functionalReduction(n *logic.Network) *logic.Network {
	sigs := signatures(n)
	repl := make(map[uint32]logic.Signal)
	reps := make(map[sigKey]uint32)

	for i := uint32(1); i < uint32(n.Size()); i++ {
		if !n.IsGate(i) {
			// PIs participate as representatives only: a gate equal to an
			// input collapses onto it, never the other way around.
			reps[keyOf(sigs, i)] = i
			continue
		}
		// 1. Constant folding beats any merge.
		if sigConstant(sigs, i, false) && satEqual(n, logic.MakeSignal(i, false), logic.Const0) {
			repl[i] = logic.Const0
			continue
		}
		if sigConstant(sigs, i, true) && satEqual(n, logic.MakeSignal(i, false), logic.Const1) {
			repl[i] = logic.Const1
			continue
		}
		// 2. Bucket lookup; first node with this signature becomes the
		//    representative, later ones try to merge onto it.
		key := keyOf(sigs, i)
		rep, ok := reps[key]
		if !ok {
			reps[key] = i
			continue
		}
		// 3. Decide polarity from the raw signatures, then confirm by SAT.
		compl := !sigEqual(sigs, i, rep, false)
		if compl && !sigEqual(sigs, i, rep, true) {
			continue // hash collision across rounds
		}
		target := logic.MakeSignal(rep, compl)
		if satEqual(n, logic.MakeSignal(i, false), target) {
			repl[i] = target
		}
	}

	if len(repl) == 0 {
		return n.CleanupDangling()
	}
	return n.RebuildWith(repl)
}

// keyOf folds up to four signature rounds into a polarity-normalized bucket
// key.
func keyOf(sigs [][]uint64, i uint32) sigKey {
	var k sigKey
	flip := sigs[0][i]&1 == 1
	words := [4]*uint64{&k.w0, &k.w1, &k.w2, &k.w3}
	for r := 0; r < len(sigs) && r < 4; r++ {
		v := sigs[r][i]
		if flip {
			v = ^v
		}
		*words[r] = v
	}
	return k
}
