// Package logic: this file implements the Network container and its strashed
// gate constructors.
package logic

import "sort"

// Network is a mutable combinational logic network of one Flavor.
//
// Node 0 is the constant-false node; primary inputs and gates follow in
// creation order. Gate constructors normalize and strash, so structurally
// identical requests return the same Signal.
type Network struct {
	flavor Flavor
	nodes  []node
	pis    []uint32 // node indices of primary inputs, in declaration order
	pos    []Signal // one driving signal per primary output
	strash map[strashKey]uint32
}

// NewNetwork creates an empty network of the given flavor, containing only
// the constant node.
func NewNetwork(f Flavor) *Network {
	return &Network{
		flavor: f,
		nodes:  []node{{op: OpConst}},
		strash: make(map[strashKey]uint32),
	}
}

// Flavor returns the network's gate-set flavor.
func (n *Network) Flavor() Flavor { return n.flavor }

// Size returns the node count: constant + primary inputs + gates.
func (n *Network) Size() int { return len(n.nodes) }

// NumGates returns the number of gate nodes.
func (n *Network) NumGates() int { return len(n.nodes) - 1 - len(n.pis) }

// NumPIs returns the number of primary inputs.
func (n *Network) NumPIs() int { return len(n.pis) }

// NumPOs returns the number of primary outputs.
func (n *Network) NumPOs() int { return len(n.pos) }

// Cost returns the network cost used by rewriting gain decisions: the gate
// count.
func (n *Network) Cost() float64 { return float64(n.NumGates()) }

// PIs returns the node indices of the primary inputs, in declaration order.
// The returned slice is shared; callers must not mutate it.
func (n *Network) PIs() []uint32 { return n.pis }

// POs returns the primary output signals, in declaration order.
// The returned slice is shared; callers must not mutate it.
func (n *Network) POs() []Signal { return n.pos }

// NodeOp returns the op of node i.
func (n *Network) NodeOp(i uint32) Op { return n.nodes[i].op }

// IsGate reports whether node i is a gate (not the constant, not a PI).
func (n *Network) IsGate(i uint32) bool { return n.nodes[i].op.Arity() > 0 }

// PIIndex returns the declaration ordinal of primary input node i, or -1
// when i is not a primary input.
func (n *Network) PIIndex(i uint32) int {
	if n.nodes[i].op != OpPI {
		return -1
	}
	return int(n.nodes[i].pi)
}

// Fanins returns the fanin signals of node i, arity-sized. The result is a
// fresh slice each call.
func (n *Network) Fanins(i uint32) []Signal {
	nd := &n.nodes[i]
	out := make([]Signal, nd.op.Arity())
	copy(out, nd.fan[:len(out)])
	return out
}

// AddPI declares a new primary input and returns its signal.
func (n *Network) AddPI() Signal {
	idx := uint32(len(n.nodes))
	n.nodes = append(n.nodes, node{op: OpPI, pi: int32(len(n.pis))})
	n.pis = append(n.pis, idx)
	return MakeSignal(idx, false)
}

// AddPO declares a new primary output aliasing signal s.
// Passing a signal outside the network is programmer error and panics.
func (n *Network) AddPO(s Signal) {
	n.checkSignal(s)
	n.pos = append(n.pos, s)
}

// ReplacePO redirects output o to signal s.
func (n *Network) ReplacePO(o int, s Signal) {
	n.checkSignal(s)
	n.pos[o] = s
}

func (n *Network) checkSignal(s Signal) {
	if int(s.Node()) >= len(n.nodes) {
		panic(ErrSignalRange)
	}
}

// Not returns the inversion of s. Equivalent to s.Not(); provided for
// symmetry with the gate constructors.
func (n *Network) Not(s Signal) Signal { return s.Not() }

// And returns a signal computing a AND b in the network's flavor.
func (n *Network) And(a, b Signal) Signal {
	n.checkSignal(a)
	n.checkSignal(b)
	if n.flavor == MIG {
		return n.maj3(a, b, Const0)
	}
	return n.and2(a, b)
}

// Or returns a signal computing a OR b in the network's flavor.
func (n *Network) Or(a, b Signal) Signal {
	if n.flavor == MIG {
		n.checkSignal(a)
		n.checkSignal(b)
		return n.maj3(a, b, Const1)
	}
	return n.And(a.Not(), b.Not()).Not()
}

// Xor returns a signal computing a XOR b. On XAG networks it creates an XOR
// gate; on AIG and MIG networks it is decomposed into the primitive gate set.
func (n *Network) Xor(a, b Signal) Signal {
	n.checkSignal(a)
	n.checkSignal(b)
	if n.flavor == XAG {
		return n.xor2(a, b)
	}
	// a^b = (a AND NOT b) OR (NOT a AND b)
	return n.Or(n.And(a, b.Not()), n.And(a.Not(), b))
}

// Maj returns a signal computing the majority of a, b, c. On MIG networks it
// creates a MAJ gate; otherwise it is decomposed as ab + c(a+b).
func (n *Network) Maj(a, b, c Signal) Signal {
	n.checkSignal(a)
	n.checkSignal(b)
	n.checkSignal(c)
	if n.flavor == MIG {
		return n.maj3(a, b, c)
	}
	return n.Or(n.And(a, b), n.And(c, n.Or(a, b)))
}

// Mux returns a signal computing (sel ? t : e).
func (n *Network) Mux(sel, t, e Signal) Signal {
	if n.flavor == MIG {
		// <sel t <!sel e t>> with one shared child: standard MIG mux is
		// <<sel t 0> <!sel e 0> 1> = OR(AND(sel,t), AND(!sel,e)).
		return n.Or(n.And(sel, t), n.And(sel.Not(), e))
	}
	return n.Or(n.And(sel, t), n.And(sel.Not(), e))
}

// and2 creates (or reuses) an AND gate after normalization.
func (n *Network) and2(a, b Signal) Signal {
	// 1. Canonical operand order.
	if a > b {
		a, b = b, a
	}
	// 2. Single-level simplification.
	switch {
	case a == Const0:
		return Const0
	case a == Const1:
		return b
	case a == b:
		return a
	case a == b.Not():
		return Const0
	}
	// 3. Strash lookup, then creation.
	return n.newGate(OpAnd, a, b, 0)
}

// xor2 creates (or reuses) an XOR gate after complement folding.
func (n *Network) xor2(a, b Signal) Signal {
	// 1. Pull complements out: a^b == !( a ^ !b ), operands stored plain.
	out := a.Complemented() != b.Complemented()
	a &^= 1
	b &^= 1
	if a > b {
		a, b = b, a
	}
	// 2. Single-level simplification.
	switch {
	case a == b:
		return Const0.NotIf(out)
	case a == Const0:
		return b.NotIf(out)
	}
	// 3. Strash lookup, then creation.
	return n.newGate(OpXor, a, b, 0).NotIf(out)
}

// maj3 creates (or reuses) a MAJ gate after normalization.
func (n *Network) maj3(a, b, c Signal) Signal {
	// 1. Canonical operand order.
	s := [3]Signal{a, b, c}
	sort.Slice(s[:], func(i, j int) bool { return s[i] < s[j] })
	a, b, c = s[0], s[1], s[2]
	// 2. Single-level simplification: duplicated or opposing fanins.
	switch {
	case a == b || b == c:
		return b
	case a == b.Not():
		return c
	case b == c.Not():
		return a
	case a == c.Not():
		return b
	}
	// 3. Self-duality canonicalization: keep at most one complemented fanin.
	compl := 0
	for _, x := range []Signal{a, b, c} {
		if x.Complemented() {
			compl++
		}
	}
	out := false
	if compl >= 2 {
		a, b, c = a.Not(), b.Not(), c.Not()
		out = true
	}
	// 4. Strash lookup, then creation.
	return n.newGate(OpMaj, a, b, c).NotIf(out)
}

// newGate returns the strashed node for (op, a, b, c), creating it on miss.
func (n *Network) newGate(op Op, a, b, c Signal) Signal {
	key := strashKey{op: op, a: a, b: b, c: c}
	if idx, ok := n.strash[key]; ok {
		return MakeSignal(idx, false)
	}
	idx := uint32(len(n.nodes))
	n.nodes = append(n.nodes, node{op: op, fan: [3]Signal{a, b, c}})
	n.strash[key] = idx
	return MakeSignal(idx, false)
}
