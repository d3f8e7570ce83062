// Package logic_test provides benchmarks for network construction,
// simulation and streaming.
package logic_test

import (
	"testing"

	"github.com/katalvlaran/memlogic/logic"
)

// chainNetwork builds an alternating AND/XOR chain of the given length
// over four inputs.
func chainNetwork(gates int) *logic.Network {
	n := logic.NewNetwork(logic.XAG)
	sigs := []logic.Signal{n.AddPI(), n.AddPI(), n.AddPI(), n.AddPI()}
	for i := 0; i < gates; i++ {
		a := sigs[len(sigs)-1]
		b := sigs[i%len(sigs)]
		if i%2 == 0 {
			sigs = append(sigs, n.And(a, b.Not()))
		} else {
			sigs = append(sigs, n.Xor(a, b))
		}
	}
	n.AddPO(sigs[len(sigs)-1])
	return n
}

// BenchmarkAnd_StrashHit measures the fast path: re-requesting a gate that
// already exists in the structural hash table.
func BenchmarkAnd_StrashHit(b *testing.B) {
	n := logic.NewNetwork(logic.AIG)
	x, y := n.AddPI(), n.AddPI()
	n.And(x, y)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.And(x, y)
	}
}

// BenchmarkBuildChain measures fresh construction of a 1024-gate network,
// normalization and hashing included.
func BenchmarkBuildChain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = chainNetwork(1024)
	}
}

// BenchmarkSimulate measures word-parallel evaluation of a 1024-gate
// network, 64 patterns per call.
func BenchmarkSimulate(b *testing.B) {
	n := chainNetwork(1024)
	inputs := []uint64{
		logic.TTProjection(0),
		logic.TTProjection(1),
		logic.TTProjection(2),
		logic.TTProjection(3),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.Simulate(inputs); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStream measures a full gate-by-gate replay into a Builder.
func BenchmarkStream(b *testing.B) {
	n := chainNetwork(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Stream(logic.NewBuilder(logic.XAG))
	}
}

// BenchmarkCleanupDangling measures the cone replay that drops
// unreferenced gates.
func BenchmarkCleanupDangling(b *testing.B) {
	n := chainNetwork(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.CleanupDangling()
	}
}
