// Package preopt: the cut-based resynthesis round.
package preopt

import "github.com/katalvlaran/memlogic/logic"

// cutRewrite enumerates k-feasible cuts at every gate, resynthesizes each
// cut function from the NPN library (Shannon fallback), and reroutes the
// root to the cheapest replacement that strictly shrinks the network. It
// operates on a private clone; tentative subcircuits that lose the gain
// comparison are dropped by the final rebuild.
func cutRewrite(orig *logic.Network, k int) *logic.Network {
	n := orig.Clone()
	if n.NumGates() == 0 {
		return n
	}
	cuts := enumerateCuts(n, k)
	fv := logic.NewFanoutView(n)
	repl := make(map[uint32]logic.Signal)
	limit := uint32(n.Size()) // gates added by synthesis are not roots

	for root := uint32(1); root < limit; root++ {
		if !n.IsGate(root) {
			continue
		}
		bestGain := 0
		var bestSig logic.Signal
		for _, c := range cuts[root] {
			// 1. Skip the trivial cut: it only reproduces the root.
			if len(c.leaves) == 1 && c.leaves[0] == root {
				continue
			}
			// 2. Cut function and exclusive cone of the current structure.
			tt := cutFunction(n, root, c.leaves)
			saved := mffcOfCut(n, fv, root, c.leaves)
			// 3. Tentative resynthesis; strashing reuses shared structure.
			leafSigs := make([]logic.Signal, len(c.leaves))
			for i, l := range c.leaves {
				leafSigs[i] = logic.MakeSignal(l, false)
			}
			before := n.Size()
			sig := synthesize(n, tt, len(c.leaves), leafSigs)
			added := n.Size() - before
			// 4. Keep the strictly improving replacement, best cut wins.
			// A strash hit on an existing node is acceptable only below the
			// root: chains of replacements must strictly descend, or two
			// mutually equivalent roots could reroute to each other.
			if sig.Node() != root && (sig.Node() < root || sig.Node() >= limit) {
				if gain := saved - added; gain > bestGain {
					bestGain = gain
					bestSig = sig
				}
			}
		}
		if bestGain > 0 {
			repl[root] = bestSig
		}
	}

	if len(repl) == 0 {
		return n.CleanupDangling()
	}
	return n.RebuildWith(repl)
}
