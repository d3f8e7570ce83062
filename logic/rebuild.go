// Package logic: this file implements cone replay — the mechanism behind
// dangling-node cleanup, cloning, and substitution-by-rebuild.
package logic

// CleanupDangling returns a fresh network containing only the constant, all
// primary inputs, and the gates reachable from at least one primary output.
// Primary input and output order is preserved. The receiver is not modified.
func (n *Network) CleanupDangling() *Network {
	return n.RebuildWith(nil)
}

// Clone returns a deep copy of the network. Dangling gates are dropped, as
// with CleanupDangling; dangling gates carry no function.
func (n *Network) Clone() *Network {
	return n.RebuildWith(nil)
}

// RebuildWith replays the cone of every primary output into a fresh network
// of the same flavor, consulting repl (node index -> replacement signal in
// the receiver's namespace) before copying each node. Replacement chains are
// followed; a replacement must not reach back through the node it replaces.
//
// Rewriting passes express substitution through this method: they record the
// desired replacements and rebuild once, which also merges nodes that become
// structurally identical and drops nodes left dangling.
func (n *Network) RebuildWith(repl map[uint32]Signal) *Network {
	out := NewNetwork(n.flavor)
	memo := make([]Signal, len(n.nodes))
	done := make([]bool, len(n.nodes))

	// 1. Constant and primary inputs map one-to-one.
	memo[0], done[0] = Const0, true
	for _, pi := range n.pis {
		memo[pi], done[pi] = out.AddPI(), true
	}

	// 2. Memoized post-order replay of each output cone.
	var resolve func(s Signal) Signal
	resolve = func(s Signal) Signal {
		idx := s.Node()
		if done[idx] {
			return memo[idx].NotIf(s.Complemented())
		}
		if r, ok := repl[idx]; ok {
			// Replacement signal lives in the receiver's own namespace.
			v := resolve(r)
			memo[idx], done[idx] = v, true
			return v.NotIf(s.Complemented())
		}
		nd := &n.nodes[idx]
		var v Signal
		switch nd.op {
		case OpAnd:
			v = out.And(resolve(nd.fan[0]), resolve(nd.fan[1]))
		case OpXor:
			v = out.Xor(resolve(nd.fan[0]), resolve(nd.fan[1]))
		case OpMaj:
			v = out.Maj(resolve(nd.fan[0]), resolve(nd.fan[1]), resolve(nd.fan[2]))
		default:
			v = Const0
		}
		memo[idx], done[idx] = v, true
		return v.NotIf(s.Complemented())
	}
	for _, po := range n.pos {
		out.AddPO(resolve(po))
	}
	return out
}
