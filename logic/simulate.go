// Package logic: word-parallel simulation and truth-table extraction.
package logic

// NodeValues evaluates every node on one 64-bit pattern word per primary
// input and returns the per-node result words, indexed by node. Slot 0 (the
// constant node) is always zero.
func (n *Network) NodeValues(inputs []uint64) ([]uint64, error) {
	if len(inputs) != len(n.pis) {
		return nil, ErrWidthMismatch
	}
	vals := make([]uint64, len(n.nodes))
	for i := 1; i < len(n.nodes); i++ {
		nd := &n.nodes[i]
		switch nd.op {
		case OpPI:
			vals[i] = inputs[nd.pi]
		case OpAnd:
			vals[i] = n.edgeValue(vals, nd.fan[0]) & n.edgeValue(vals, nd.fan[1])
		case OpXor:
			vals[i] = n.edgeValue(vals, nd.fan[0]) ^ n.edgeValue(vals, nd.fan[1])
		case OpMaj:
			a := n.edgeValue(vals, nd.fan[0])
			b := n.edgeValue(vals, nd.fan[1])
			c := n.edgeValue(vals, nd.fan[2])
			vals[i] = (a & b) | (c & (a | b))
		}
	}
	return vals, nil
}

// Simulate evaluates the network on one 64-bit pattern word per primary
// input and returns one result word per primary output.
func (n *Network) Simulate(inputs []uint64) ([]uint64, error) {
	vals, err := n.NodeValues(inputs)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(n.pos))
	for i, po := range n.pos {
		out[i] = n.edgeValue(vals, po)
	}
	return out, nil
}

// OutputTruthTables returns the complete truth table of every primary output
// as a single word (minterm m at bit m), for networks with at most
// TruthTableMaxInputs primary inputs.
func (n *Network) OutputTruthTables() ([]uint64, error) {
	if len(n.pis) > TruthTableMaxInputs {
		return nil, ErrTooManyInputs
	}
	inputs := make([]uint64, len(n.pis))
	for i := range inputs {
		inputs[i] = TTProjection(i)
	}
	return n.Simulate(inputs)
}

func (n *Network) edgeValue(vals []uint64, s Signal) uint64 {
	v := vals[s.Node()]
	if s.Complemented() {
		return ^v
	}
	return v
}

// TTProjection returns the truth-table word of input variable i: bit m of
// the result is bit i of minterm index m. Variables beyond the fifth share
// the fifth's pattern; callers working with full truth tables stay within
// TruthTableMaxInputs.
func TTProjection(i int) uint64 {
	switch i {
	case 0:
		return 0xAAAAAAAAAAAAAAAA
	case 1:
		return 0xCCCCCCCCCCCCCCCC
	case 2:
		return 0xF0F0F0F0F0F0F0F0
	case 3:
		return 0xFF00FF00FF00FF00
	case 4:
		return 0xFFFF0000FFFF0000
	default:
		return 0xFFFFFFFF00000000
	}
}
