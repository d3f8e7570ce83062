// Package validate_test provides benchmarks for the SAT equivalence oracle.
package validate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/memlogic/logic"
	"github.com/katalvlaran/memlogic/validate"
)

// BenchmarkEquivalentNetwork_Equal measures the UNSAT case: the candidate
// is a cross-flavor replay of the reference.
func BenchmarkEquivalentNetwork_Equal(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	ref := randomNetwork(rng, logic.XAG, 8, 128, 4)
	bld := logic.NewBuilder(logic.MIG)
	ref.Stream(bld)
	cand := bld.Network()
	v := validate.New(ref)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.EquivalentNetwork(cand); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEquivalentNetwork_Different measures the SAT case: unrelated
// networks, where the solver usually finds a disagreeing model fast.
func BenchmarkEquivalentNetwork_Different(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	ref := randomNetwork(rng, logic.XAG, 8, 128, 4)
	cand := randomNetwork(rng, logic.AIG, 8, 128, 4)
	v := validate.New(ref)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.EquivalentNetwork(cand); err != nil {
			b.Fatal(err)
		}
	}
}
