// Package logic: Tseitin clause export for SAT-based equivalence reasoning.
package logic

// Lit returns the signed integer literal of signal s in the convention used
// by Clauses: node i is variable i+1, negative on complemented edges.
func (n *Network) Lit(s Signal) int {
	v := int(s.Node()) + 1
	if s.Complemented() {
		return -v
	}
	return v
}

// Clauses appends Tseitin clauses constraining every gate in the cones of
// the given roots, plus a unit clause fixing the constant node to false, and
// returns the extended slice. Variable numbering follows Lit. Primary inputs
// remain free variables.
//
// The output feeds gophersat's ParseSlice directly.
func (n *Network) Clauses(dst [][]int, roots ...Signal) [][]int {
	seen := make([]bool, len(n.nodes))
	dst = append(dst, []int{-1}) // constant node is false

	var visit func(idx uint32)
	visit = func(idx uint32) {
		if seen[idx] {
			return
		}
		seen[idx] = true
		nd := &n.nodes[idx]
		if nd.op.Arity() == 0 {
			return
		}
		for _, f := range nd.fan[:nd.op.Arity()] {
			visit(f.Node())
		}
		g := int(idx) + 1
		a := n.Lit(nd.fan[0])
		b := n.Lit(nd.fan[1])
		switch nd.op {
		case OpAnd:
			dst = append(dst,
				[]int{-g, a},
				[]int{-g, b},
				[]int{g, -a, -b},
			)
		case OpXor:
			dst = append(dst,
				[]int{-g, a, b},
				[]int{-g, -a, -b},
				[]int{g, -a, b},
				[]int{g, a, -b},
			)
		case OpMaj:
			c := n.Lit(nd.fan[2])
			dst = append(dst,
				[]int{-g, a, b},
				[]int{-g, a, c},
				[]int{-g, b, c},
				[]int{g, -a, -b},
				[]int{g, -a, -c},
				[]int{g, -b, -c},
			)
		}
	}
	for _, r := range roots {
		visit(r.Node())
	}
	return dst
}

// NumVars returns the variable count of the Clauses encoding: one variable
// per node.
func (n *Network) NumVars() int { return len(n.nodes) }
