// Package preopt: truth-table resynthesis. Cut functions are rebuilt from a
// library of minimal implementations keyed by NPN-canonical form, with a
// Shannon decomposition as the fallback for classes the library does not
// know.
package preopt

import "github.com/katalvlaran/memlogic/logic"

// synthFn builds a known function over concrete leaf signals.
type synthFn func(n *logic.Network, leaves []logic.Signal) logic.Signal

type libKey struct {
	k     int
	canon uint64
}

type libEntry struct {
	fn synthFn
	tr npnTransform // transform of the registered function onto canon
}

var library = map[libKey]libEntry{}

func init() {
	// Two-input repertoire: AND and XOR cover every nontrivial NPN class.
	register(2, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.And(l[0], l[1])
	})
	register(2, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Xor(l[0], l[1])
	})
	// Three-input seeds.
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Maj(l[0], l[1], l[2])
	})
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Xor(n.Xor(l[0], l[1]), l[2])
	})
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Mux(l[2], l[1], l[0])
	})
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.And(n.And(l[0], l[1]), l[2])
	})
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.And(n.Or(l[0], l[1]), l[2])
	})
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Xor(n.And(l[0], l[1]), l[2])
	})
	register(3, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Or(n.And(l[0], l[1]), n.And(l[0], l[2]))
	})
	// Four-input seeds: frequent classes; everything else falls back to
	// Shannon decomposition.
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.And(n.And(l[0], l[1]), n.And(l[2], l[3]))
	})
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Xor(n.Xor(l[0], l[1]), n.Xor(l[2], l[3]))
	})
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Or(n.And(l[0], l[1]), n.And(l[2], l[3]))
	})
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.And(n.Or(l[0], l[1]), n.Or(l[2], l[3]))
	})
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Xor(n.And(l[0], l[1]), n.And(l[2], l[3]))
	})
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Mux(l[3], n.And(l[0], l[1]), n.Or(l[0], l[2]))
	})
	register(4, func(n *logic.Network, l []logic.Signal) logic.Signal {
		return n.Maj(l[0], l[1], n.And(l[2], l[3]))
	})
}

// register derives the registered builder's truth table on a scratch
// network, canonicalizes it, and stores the builder under its class. Earlier
// registrations win, so cheaper implementations should be listed first.
func register(k int, fn synthFn) {
	scratch := logic.NewNetwork(logic.XAG)
	leaves := make([]logic.Signal, k)
	for i := range leaves {
		leaves[i] = scratch.AddPI()
	}
	scratch.AddPO(fn(scratch, leaves))
	tts, err := scratch.OutputTruthTables()
	if err != nil {
		panic(err)
	}
	canon, tr := npnCanonical(tts[0], k)
	key := libKey{k: k, canon: canon}
	if _, dup := library[key]; dup {
		return
	}
	library[key] = libEntry{fn: fn, tr: tr}
}

// fromLibrary realizes tt over leaves via an NPN library hit: the cut's
// transform is composed with the registered function's transform before
// applying the builder. Reports false on a miss.
func fromLibrary(n *logic.Network, tt uint64, k int, leaves []logic.Signal) (logic.Signal, bool) {
	if k > 4 {
		return 0, false
	}
	canon, trC := npnCanonical(tt, k)
	entry, ok := library[libKey{k: k, canon: canon}]
	if !ok {
		return 0, false
	}
	invC := inversePerm(trC.perm)
	mapped := make([]logic.Signal, k)
	for i := 0; i < k; i++ {
		a := invC[entry.tr.perm[i]]
		compl := (entry.tr.negIn>>i)&1 != (trC.negIn>>a)&1
		mapped[i] = leaves[a].NotIf(compl)
	}
	out := entry.fn(n, mapped)
	return out.NotIf(entry.tr.negOut != trC.negOut), true
}

// synthesize builds a signal computing tt over the given leaves, preferring
// a library hit and falling back to Shannon decomposition on the last
// variable. Construction is exact: the produced signal realizes tt by
// definition, so cut replacement preserves functional correctness without a
// separate proof.
func synthesize(n *logic.Network, tt uint64, k int, leaves []logic.Signal) logic.Signal {
	mask := ttMask(k)
	tt &= mask

	// 1. Trivial functions.
	if tt == 0 {
		return logic.Const0
	}
	if tt == mask {
		return logic.Const1
	}
	for i := 0; i < k; i++ {
		proj := logic.TTProjection(i) & mask
		if tt == proj {
			return leaves[i]
		}
		if tt == proj^mask {
			return leaves[i].Not()
		}
	}

	// 2. Vacuous last variable: shrink.
	if k > 1 {
		lo := tt & ttMask(k-1)
		hi := (tt >> (1 << (k - 1))) & ttMask(k-1)
		if lo == hi {
			return synthesize(n, lo, k-1, leaves[:k-1])
		}
		// 3. Library lookup.
		if s, ok := fromLibrary(n, tt, k, leaves); ok {
			return s
		}
		// 4. Shannon decomposition on the last variable.
		f0 := synthesize(n, lo, k-1, leaves[:k-1])
		f1 := synthesize(n, hi, k-1, leaves[:k-1])
		return n.Mux(leaves[k-1], f1, f0)
	}

	// k == 1 non-trivial cases were all covered above.
	return logic.Const0
}
