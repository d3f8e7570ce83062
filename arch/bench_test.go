// Benchmarks for the service engine: lowering, candidate search and
// program replay.
package arch

import (
	"testing"

	"github.com/katalvlaran/memlogic/compile"
)

func benchCompile(b *testing.B, svc compile.Service, set compile.Settings) {
	b.Helper()
	ntk := rippleAdder()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, prog, err := compile.Compile(ntk, set, svc,
			compile.WithPreoptimization(false))
		if err != nil {
			b.Fatal(err)
		}
		prog.Release()
	}
}

// BenchmarkCompile_PlimGreedy measures the first-fit lowering path.
func BenchmarkCompile_PlimGreedy(b *testing.B) {
	benchCompile(b, Plim(), compile.Settings{Mode: compile.ModeGreedy})
}

// BenchmarkCompile_PlimExhaustive measures full candidate enumeration.
func BenchmarkCompile_PlimExhaustive(b *testing.B) {
	benchCompile(b, Plim(), compile.Settings{Mode: compile.ModeExhaustive})
}

// BenchmarkCompile_FelixGuided measures residency-pruned selection.
func BenchmarkCompile_FelixGuided(b *testing.B) {
	benchCompile(b, Felix(), compile.Settings{
		Mode:               compile.ModeExhaustive,
		CandidateSelection: compile.SelectNetworkGuided,
	})
}
