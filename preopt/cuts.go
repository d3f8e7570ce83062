// Package preopt: bounded cut enumeration, cut functions, and the exclusive
// cone accounting used by replacement gain decisions.
package preopt

import (
	"sort"

	"github.com/katalvlaran/memlogic/logic"
)

// cut is a set of leaf nodes (sorted, ascending) bounding a cone rooted at
// the node the cut belongs to.
type cut struct {
	leaves []uint32
}

// enumerateCuts returns, per node, its k-feasible cuts: the trivial cut plus
// bounded merges of the fanins' cut sets, capped at cutsPerNode entries.
func enumerateCuts(n *logic.Network, k int) [][]cut {
	cuts := make([][]cut, n.Size())
	cuts[0] = []cut{{leaves: []uint32{0}}}
	for i := uint32(1); i < uint32(n.Size()); i++ {
		if !n.IsGate(i) {
			cuts[i] = []cut{{leaves: []uint32{i}}}
			continue
		}
		fanins := n.Fanins(i)
		merged := []cut{{leaves: []uint32{i}}}
		seen := map[string]bool{cutKey([]uint32{i}): true}

		// Cross-merge the fanin cut sets, keeping k-feasible unions.
		var cross func(fi int, acc []uint32)
		cross = func(fi int, acc []uint32) {
			if len(merged) >= cutsPerNode {
				return
			}
			if fi == len(fanins) {
				leaves := dedupSorted(acc)
				if len(leaves) > k {
					return
				}
				key := cutKey(leaves)
				if !seen[key] {
					seen[key] = true
					merged = append(merged, cut{leaves: leaves})
				}
				return
			}
			for _, c := range cuts[fanins[fi].Node()] {
				next := append(append([]uint32{}, acc...), c.leaves...)
				if countDistinct(next) > k {
					continue
				}
				cross(fi+1, next)
			}
		}
		cross(0, nil)
		cuts[i] = merged
	}
	return cuts
}

func dedupSorted(v []uint32) []uint32 {
	out := append([]uint32{}, v...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	w := out[:0]
	for i, x := range out {
		if i == 0 || x != out[i-1] {
			w = append(w, x)
		}
	}
	return w
}

func countDistinct(v []uint32) int { return len(dedupSorted(v)) }

func cutKey(leaves []uint32) string {
	b := make([]byte, 0, len(leaves)*4)
	for _, l := range leaves {
		b = append(b, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))
	}
	return string(b)
}

// cutFunction evaluates the cone of root bounded by the cut's leaves and
// returns its truth table over the leaves, in leaf order. The constant node
// may appear as a leaf; it contributes constant false.
func cutFunction(n *logic.Network, root uint32, leaves []uint32) uint64 {
	assign := make(map[uint32]uint64, len(leaves))
	for i, l := range leaves {
		if l == 0 {
			assign[l] = 0
			continue
		}
		assign[l] = logic.TTProjection(i)
	}
	var eval func(j uint32) uint64
	eval = func(j uint32) uint64 {
		if v, ok := assign[j]; ok {
			return v
		}
		var v uint64
		fan := n.Fanins(j)
		edge := func(x logic.Signal) uint64 {
			w := eval(x.Node())
			if x.Complemented() {
				return ^w
			}
			return w
		}
		switch n.NodeOp(j) {
		case logic.OpAnd:
			v = edge(fan[0]) & edge(fan[1])
		case logic.OpXor:
			v = edge(fan[0]) ^ edge(fan[1])
		case logic.OpMaj:
			a, b, c := edge(fan[0]), edge(fan[1]), edge(fan[2])
			v = (a & b) | (c & (a | b))
		default:
			v = 0 // constant or PI leaf outside the cut cannot occur
		}
		assign[j] = v
		return v
	}
	return eval(root) & ttMask(len(leaves))
}

// mffcOfCut returns the number of gates that die when root is rerouted:
// gates inside the cut cone whose references all come from the cone,
// computed by simulated dereferencing bounded at the leaves.
func mffcOfCut(n *logic.Network, fv *logic.FanoutView, root uint32, leaves []uint32) int {
	leafSet := make(map[uint32]bool, len(leaves))
	for _, l := range leaves {
		leafSet[l] = true
	}
	refs := make(map[uint32]int)
	ref := func(j uint32) int {
		if r, ok := refs[j]; ok {
			return r
		}
		r := fv.FanoutCount(j)
		if fv.DrivesPO(j) {
			r++
		}
		refs[j] = r
		return r
	}
	count := 0
	var deref func(j uint32)
	deref = func(j uint32) {
		if leafSet[j] || !n.IsGate(j) {
			return
		}
		count++
		for _, f := range n.Fanins(j) {
			fn := f.Node()
			refs[fn] = ref(fn) - 1
			if refs[fn] == 0 {
				deref(fn)
			}
		}
	}
	deref(root)
	return count
}
