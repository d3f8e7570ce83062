// Package logic: the gate-by-gate streaming boundary. A network crosses the
// compilation-service boundary only as a replay of Visitor calls, never as a
// raw graph handle.
package logic

// Visitor receives a gate-by-gate replay of a network in topological order.
// The Signals it returns live in the visitor's own namespace; the streaming
// driver tracks the mapping and applies complement bits itself. Signals 0
// and 1 denote constant false/true in every namespace.
type Visitor interface {
	// OnInput announces primary input ordinal i and returns the visitor's
	// signal for it.
	OnInput(i int) Signal
	// OnGate announces a gate with the given op and fanins (already mapped
	// into the visitor's namespace) and returns the visitor's signal for it.
	OnGate(op Op, fanins []Signal) Signal
	// OnOutput announces a primary output aliasing the given visitor signal.
	OnOutput(s Signal)
}

// Stream replays the cones of all primary outputs into v: every primary
// input first (in declaration order), then gates in topological order, then
// outputs. Dangling gates are not replayed.
func (n *Network) Stream(v Visitor) {
	memo := make([]Signal, len(n.nodes))
	done := make([]bool, len(n.nodes))
	memo[0], done[0] = Const0, true
	for i, pi := range n.pis {
		memo[pi], done[pi] = v.OnInput(i), true
	}
	var resolve func(s Signal) Signal
	resolve = func(s Signal) Signal {
		idx := s.Node()
		if !done[idx] {
			nd := &n.nodes[idx]
			fanins := make([]Signal, nd.op.Arity())
			for i := range fanins {
				fanins[i] = resolve(nd.fan[i])
			}
			memo[idx], done[idx] = v.OnGate(nd.op, fanins), true
		}
		return memo[idx].NotIf(s.Complemented())
	}
	for _, po := range n.pos {
		v.OnOutput(resolve(po))
	}
}

// Builder is the Visitor that reconstructs a Network from a streamed replay.
// It is the receiving end of the service boundary's rewrite entry point.
type Builder struct {
	ntk *Network
}

// NewBuilder creates a Builder producing a network of flavor f.
func NewBuilder(f Flavor) *Builder {
	return &Builder{ntk: NewNetwork(f)}
}

// OnInput implements Visitor.
func (b *Builder) OnInput(int) Signal { return b.ntk.AddPI() }

// OnGate implements Visitor. Ops outside the builder flavor's gate set are
// decomposed by the network constructors.
func (b *Builder) OnGate(op Op, fanins []Signal) Signal {
	switch op {
	case OpAnd:
		return b.ntk.And(fanins[0], fanins[1])
	case OpXor:
		return b.ntk.Xor(fanins[0], fanins[1])
	case OpMaj:
		return b.ntk.Maj(fanins[0], fanins[1], fanins[2])
	default:
		return Const0
	}
}

// OnOutput implements Visitor.
func (b *Builder) OnOutput(s Signal) { b.ntk.AddPO(s) }

// Network returns the reconstructed network.
func (b *Builder) Network() *Network { return b.ntk }
