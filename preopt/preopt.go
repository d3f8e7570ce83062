// Package preopt: the fixed-point driver alternating local rewriting and
// cut-based resynthesis.
package preopt

import "github.com/katalvlaran/memlogic/logic"

// Preoptimize runs the convergence loop on ntk and returns the optimized
// network. The input network is not modified. It never fails; on a network
// with no gates it converges on the first iteration with zero changes.
func Preoptimize(ntk *logic.Network, opts ...Option) *logic.Network {
	// 1. Resolve options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Force at least one round, then iterate while size strictly drops.
	cur := ntk
	lastSize := cur.Size() + 1
	for i := 0; i < o.maxIter && lastSize > cur.Size(); i++ {
		lastSize = cur.Size()

		// 2a. Local rewriting round.
		cur = accept(cur, resubShallow(cur))
		cur = accept(cur, resubExact(cur))
		if cur.Flavor() == logic.MIG {
			cur = accept(cur, invOptimize(cur))
		}
		cur = accept(cur, functionalReduction(cur))

		// 2b. Cut-based resynthesis round.
		cur = accept(cur, cutRewrite(cur, o.cutSize))
	}
	return cur
}

// accept keeps cand only when it does not grow the network. Every pass
// already returns a dangling-free network, so Size comparisons are exact.
func accept(cur, cand *logic.Network) *logic.Network {
	if cand != nil && cand.Size() <= cur.Size() {
		return cand
	}
	return cur
}
