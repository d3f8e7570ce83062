// Package preopt: inverter handling on majority networks.
package preopt

import "github.com/katalvlaran/memlogic/logic"

// invOptimize is the inverter-placement step of the majority pass order.
// The representation leaves it no residual freedom: complemented edges are
// a bit on the reference, gate construction applies the self-duality rule
// (two or more complemented fanins flip the gate to its complemented
// dual), and both polarities of a function share one strashed node. Every
// stored majority gate therefore carries at most one complemented fanin
// already. What remains for the step is compaction: replaying the cones
// drops gates that earlier rounds left dangling, so the following passes
// scan a minimal node slice.
func invOptimize(n *logic.Network) *logic.Network {
	if n.Flavor() != logic.MIG {
		return n
	}
	return n.CleanupDangling()
}
