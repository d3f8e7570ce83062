// Package preopt: structural resubstitution. The shallow pass re-expresses a
// gate through one existing divisor; the exact pass re-expresses it through
// one new gate over two (or, on MIG, three) divisors when that still pays
// for the gate's exclusive cone.
package preopt

import "github.com/katalvlaran/memlogic/logic"

// resubShallow replaces gates by constants or by single existing divisors.
// Any such replacement has positive gain: the gate's exclusive cone dies.
func resubShallow(n *logic.Network) *logic.Network {
	sigs := signatures(n)
	repl := make(map[uint32]logic.Signal)

	for i := uint32(1); i < uint32(n.Size()); i++ {
		if !n.IsGate(i) {
			continue
		}
		me := logic.MakeSignal(i, false)
		// 1. Constant resubstitution.
		if sigConstant(sigs, i, false) && satEqual(n, me, logic.Const0) {
			repl[i] = logic.Const0
			continue
		}
		if sigConstant(sigs, i, true) && satEqual(n, me, logic.Const1) {
			repl[i] = logic.Const1
			continue
		}
		// 2. Divisor resubstitution within the gate's fanin window.
		for _, d := range divisors(n, i) {
			var compl bool
			if sigEqual(sigs, i, d, false) {
				compl = false
			} else if sigEqual(sigs, i, d, true) {
				compl = true
			} else {
				continue
			}
			target := logic.MakeSignal(d, compl)
			if satEqual(n, me, target) {
				repl[i] = target
				break
			}
		}
	}

	if len(repl) == 0 {
		return n.CleanupDangling()
	}
	return n.RebuildWith(repl)
}

// resubExact tries to re-express each gate as a single fresh gate over two
// divisors (three on MIG), accepting only when the gate's exclusive cone is
// larger than the one node added. It scans a private clone: tentative gates
// built during the search must not leak into the caller's network.
func resubExact(orig *logic.Network) *logic.Network {
	n := orig.Clone()
	sigs := signatures(n)
	fv := logic.NewFanoutView(n)
	repl := make(map[uint32]logic.Signal)
	limit := uint32(n.Size()) // candidates created below are not targets

	for i := uint32(1); i < limit; i++ {
		if !n.IsGate(i) {
			continue
		}
		// 1. Worth it only when at least two nodes die for the one added.
		if mffcSize(n, fv, i) < 2 {
			continue
		}
		divs := divisors(n, i)
		if target, ok := findPairResub(n, sigs, i, divs); ok && descends(target, i, limit) {
			repl[i] = target
			continue
		}
		if n.Flavor() == logic.MIG {
			if target, ok := findMajResub(n, sigs, i, divs); ok && descends(target, i, limit) {
				repl[i] = target
			}
		}
	}

	if len(repl) == 0 {
		return n.CleanupDangling()
	}
	return n.RebuildWith(repl)
}

// descends accepts a replacement target that is either a freshly built gate
// (index at or past limit) or strictly below the node it replaces, so
// replacement chains can never cycle.
func descends(target logic.Signal, i, limit uint32) bool {
	return target.Node() < i || target.Node() >= limit
}

// findPairResub looks for g = op(d1', d2') matching node i, where op is the
// flavor's two-input repertoire and primes range over complements.
func findPairResub(n *logic.Network, sigs [][]uint64, i uint32, divs []uint32) (logic.Signal, bool) {
	me := logic.MakeSignal(i, false)
	for a := 0; a < len(divs); a++ {
		for b := a + 1; b < len(divs); b++ {
			for ca := 0; ca < 2; ca++ {
				for cb := 0; cb < 2; cb++ {
					da := logic.MakeSignal(divs[a], ca == 1)
					db := logic.MakeSignal(divs[b], cb == 1)
					for _, cand := range pairCandidates(n, sigs, i, da, db) {
						if cand.Node() != i && satEqual(n, me, cand) {
							return cand, true
						}
					}
				}
			}
		}
	}
	return 0, false
}

// pairCandidates returns the two-divisor expressions whose signatures match
// node i, building tentative gates only on a signature hit. Rejected gates
// stay dangling and vanish at the next rebuild.
func pairCandidates(n *logic.Network, sigs [][]uint64, i uint32, da, db logic.Signal) []logic.Signal {
	var out []logic.Signal
	andSig := func(round []uint64) uint64 { return edgeWord(round, da) & edgeWord(round, db) }
	orSig := func(round []uint64) uint64 { return edgeWord(round, da) | edgeWord(round, db) }
	xorSig := func(round []uint64) uint64 { return edgeWord(round, da) ^ edgeWord(round, db) }

	if matches(sigs, i, andSig, false) {
		out = append(out, n.And(da, db))
	} else if matches(sigs, i, andSig, true) {
		out = append(out, n.And(da, db).Not())
	}
	if matches(sigs, i, orSig, false) {
		out = append(out, n.Or(da, db))
	} else if matches(sigs, i, orSig, true) {
		out = append(out, n.Or(da, db).Not())
	}
	if n.Flavor() == logic.XAG {
		if matches(sigs, i, xorSig, false) {
			out = append(out, n.Xor(da, db))
		} else if matches(sigs, i, xorSig, true) {
			out = append(out, n.Xor(da, db).Not())
		}
	}
	return out
}

// findMajResub looks for g = maj(d1, d2, d3) matching node i on MIG.
func findMajResub(n *logic.Network, sigs [][]uint64, i uint32, divs []uint32) (logic.Signal, bool) {
	if len(divs) > 24 {
		divs = divs[:24] // cubic search needs a tighter window
	}
	me := logic.MakeSignal(i, false)
	for a := 0; a < len(divs); a++ {
		for b := a + 1; b < len(divs); b++ {
			for c := b + 1; c < len(divs); c++ {
				da := logic.MakeSignal(divs[a], false)
				db := logic.MakeSignal(divs[b], false)
				dc := logic.MakeSignal(divs[c], false)
				majSig := func(round []uint64) uint64 {
					x, y, z := edgeWord(round, da), edgeWord(round, db), edgeWord(round, dc)
					return (x & y) | (z & (x | y))
				}
				var cand logic.Signal
				if matches(sigs, i, majSig, false) {
					cand = n.Maj(da, db, dc)
				} else if matches(sigs, i, majSig, true) {
					cand = n.Maj(da, db, dc).Not()
				} else {
					continue
				}
				if cand.Node() != i && satEqual(n, me, cand) {
					return cand, true
				}
			}
		}
	}
	return 0, false
}

// matches reports whether fn reproduces node i's signature in every round,
// complemented when compl is set.
func matches(sigs [][]uint64, i uint32, fn func(round []uint64) uint64, compl bool) bool {
	for _, round := range sigs {
		v := fn(round)
		if compl {
			v = ^v
		}
		if v != round[i] {
			return false
		}
	}
	return true
}

// edgeWord resolves a signal against one simulation round.
func edgeWord(round []uint64, s logic.Signal) uint64 {
	v := round[s.Node()]
	if s.Complemented() {
		return ^v
	}
	return v
}

// divisors collects candidate replacement sources for node i: the nodes of
// its transitive fanin cone, capped at maxDivisors. Every divisor has a
// smaller index than i, so substitution can never create a cycle.
func divisors(n *logic.Network, i uint32) []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	var walk func(j uint32)
	walk = func(j uint32) {
		if seen[j] || len(out) >= maxDivisors {
			return
		}
		seen[j] = true
		if j != i && j != 0 {
			out = append(out, j)
		}
		if n.IsGate(j) {
			for _, f := range n.Fanins(j) {
				walk(f.Node())
			}
		}
	}
	for _, f := range n.Fanins(i) {
		walk(f.Node())
	}
	return out
}

// mffcSize returns the size of node i's maximum fanout-free cone: the gates
// that die when i is replaced, computed by simulated dereferencing.
func mffcSize(n *logic.Network, fv *logic.FanoutView, i uint32) int {
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
		if !n.IsGate(j) {
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
	deref(i)
	return count
}
