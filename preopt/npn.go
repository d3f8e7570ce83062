// Package preopt: NPN canonicalization of cut functions. Two functions share
// a canonical form exactly when one can be obtained from the other by
// negating inputs, permuting inputs, and negating the output — which is the
// equivalence the resynthesis library is keyed on.
package preopt

// npnTransform records how a function maps onto its canonical form:
//
//	canon(x) = negOut XOR f(y), with y_i = x[perm[i]] XOR bit i of negIn.
type npnTransform struct {
	perm   []int
	negIn  uint8
	negOut bool
}

// ttMask returns the valid-bit mask of a k-variable truth table.
func ttMask(k int) uint64 {
	if k >= 6 {
		return ^uint64(0)
	}
	return (uint64(1) << (1 << k)) - 1
}

// permuteNegate computes g with g(x) = f(y), y_i = x[perm[i]] XOR bit i of
// negIn, over k variables.
func permuteNegate(f uint64, k int, perm []int, negIn uint8) uint64 {
	var g uint64
	n := 1 << k
	for m := 0; m < n; m++ {
		idx := 0
		for i := 0; i < k; i++ {
			bit := (m >> perm[i]) & 1
			bit ^= int(negIn>>i) & 1
			idx |= bit << i
		}
		g |= ((f >> idx) & 1) << m
	}
	return g
}

// npnCanonical returns the lexicographically smallest truth table in tt's
// NPN class along with the transform that produces it. Supported for
// k <= 4 (the library's reach); larger cuts bypass the library.
func npnCanonical(tt uint64, k int) (uint64, npnTransform) {
	mask := ttMask(k)
	tt &= mask
	best := tt
	bestTr := npnTransform{perm: identityPerm(k)}
	for _, perm := range permutations(k) {
		for negIn := 0; negIn < 1<<k; negIn++ {
			g := permuteNegate(tt, k, perm, uint8(negIn))
			if g < best {
				best = g
				bestTr = npnTransform{perm: perm, negIn: uint8(negIn)}
			}
			if gc := g ^ mask; gc < best {
				best = gc
				bestTr = npnTransform{perm: perm, negIn: uint8(negIn), negOut: true}
			}
		}
	}
	return best, bestTr
}

// inversePerm returns q with q[perm[i]] = i.
func inversePerm(perm []int) []int {
	q := make([]int, len(perm))
	for i, p := range perm {
		q[p] = i
	}
	return q
}

func identityPerm(k int) []int {
	p := make([]int, k)
	for i := range p {
		p[i] = i
	}
	return p
}

// permutations enumerates all orderings of [0..k) in a fixed order.
func permutations(k int) [][]int {
	var out [][]int
	perm := identityPerm(k)
	var walk func(i int)
	walk = func(i int) {
		if i == k {
			cp := make([]int, k)
			copy(cp, perm)
			out = append(out, cp)
			return
		}
		for j := i; j < k; j++ {
			perm[i], perm[j] = perm[j], perm[i]
			walk(i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}
	}
	walk(0)
	return out
}
