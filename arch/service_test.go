package arch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
	"github.com/katalvlaran/memlogic/validate"
)

func allServices(t *testing.T) []compile.Service {
	t.Helper()
	ambit, err := Ambit(DefaultAmbitConfig())
	require.NoError(t, err)
	return []compile.Service{Imply(), Plim(), Felix(), ambit, Simdram()}
}

// xorChain is a 3-input parity network.
func xorChain() *logic.Network {
	n := logic.NewNetwork(logic.XAG)
	a, b, c := n.AddPI(), n.AddPI(), n.AddPI()
	n.AddPO(n.Xor(n.Xor(a, b), c))
	return n
}

// rippleAdder is a 4-bit ripple-carry adder: four majority/parity full
// adder stages chained through the carry.
func rippleAdder() *logic.Network {
	n := logic.NewNetwork(logic.XAG)
	var as, bs [4]logic.Signal
	for i := range as {
		as[i] = n.AddPI()
	}
	for i := range bs {
		bs[i] = n.AddPI()
	}
	carry := logic.Const0
	for i := range as {
		n.AddPO(n.Xor(n.Xor(as[i], bs[i]), carry))
		carry = n.Maj(as[i], bs[i], carry)
	}
	n.AddPO(carry)
	return n
}

func TestServices_XorChain(t *testing.T) {
	for _, svc := range allServices(t) {
		t.Run(svc.Name(), func(t *testing.T) {
			stats, prog, err := compile.Compile(xorChain(), compile.Settings{
				Mode: compile.ModeExhaustive,
			}, svc)
			require.NoError(t, err)
			defer prog.Release()

			assert.True(t, stats.ValidationSuccess)
			assert.Greater(t, stats.NumInstructions, uint64(0))
			assert.Greater(t, stats.Cost, 0.0)
			assert.Equal(t, int(stats.NumInstructions), strings.Count(prog.String(), "\n"),
				"one instruction per program line")
		})
	}
}

func TestServices_RippleAdder(t *testing.T) {
	for _, svc := range allServices(t) {
		t.Run(svc.Name(), func(t *testing.T) {
			stats, prog, err := compile.Compile(rippleAdder(), compile.Settings{
				Mode:               compile.ModeGreedy,
				CandidateSelection: compile.SelectNetworkGuided,
			}, svc)
			require.NoError(t, err)
			defer prog.Release()

			assert.True(t, stats.ValidationSuccess)
			assert.Greater(t, stats.NumInstructions, uint64(0))
			assert.GreaterOrEqual(t, stats.NumCells, uint64(2+8))
		})
	}
}

// Complemented outputs must be materialized before they leave the array.
func TestServices_InvertedOutput(t *testing.T) {
	for _, svc := range allServices(t) {
		t.Run(svc.Name(), func(t *testing.T) {
			n := logic.NewNetwork(logic.AIG)
			a, b := n.AddPI(), n.AddPI()
			n.AddPO(n.And(a, b).Not())

			stats, prog, err := compile.Compile(n, compile.Settings{}, svc)
			require.NoError(t, err)
			defer prog.Release()
			assert.True(t, stats.ValidationSuccess)
		})
	}
}

// Every settings combination must preserve the compiled function.
func TestServices_SettingsGridPreservesFunction(t *testing.T) {
	strategies := []compile.RewritingStrategy{
		compile.RewritingNone,
		compile.RewritingLP,
		compile.RewritingCompiling,
		compile.RewritingCompilingMemusage,
		compile.RewritingGreedyEstimate,
	}
	modes := []compile.CompilationMode{compile.ModeGreedy, compile.ModeExhaustive}
	selections := []compile.CandidateSelectionMode{compile.SelectAll, compile.SelectNetworkGuided}

	svc := Plim()
	for _, strat := range strategies {
		for _, mode := range modes {
			for _, sel := range selections {
				set := compile.Settings{
					Rewriting:           strat,
					RewritingSizeFactor: 2,
					Mode:                mode,
					CandidateSelection:  sel,
				}
				name := strat.String() + "/" + mode.String() + "/" + sel.String()
				t.Run(name, func(t *testing.T) {
					stats, prog, err := compile.Compile(xorChain(), set, svc)
					require.NoError(t, err)
					defer prog.Release()
					assert.True(t, stats.ValidationSuccess)
				})
			}
		}
	}
}

func TestServices_RewriteStatisticsPopulated(t *testing.T) {
	stats, prog, err := compile.Compile(rippleAdder(), compile.Settings{
		Rewriting:           compile.RewritingCompiling,
		RewritingSizeFactor: 3,
	}, Felix())
	require.NoError(t, err)
	defer prog.Release()

	assert.Greater(t, stats.Rewrite.NodesPreTrim, uint64(0))
	assert.Greater(t, stats.Rewrite.NodesPostTrim, uint64(0))
	assert.GreaterOrEqual(t, stats.Rewrite.NodesPreTrim, stats.Rewrite.NodesPostTrim)
	assert.Greater(t, stats.Rewrite.RebuiltNetworkCost, 0.0)
	assert.Greater(t, stats.NetworkSize, uint64(0))
	assert.True(t, stats.ValidationSuccess)
}

// The rewrite entry point must hand back a network equivalent to the input.
func TestServices_RewriteReturnsEquivalentNetwork(t *testing.T) {
	orig := rippleAdder()
	v := validate.New(orig)

	_, prog, rewritten, err := compile.Rewrite(orig, compile.Settings{
		Rewriting: compile.RewritingCompiling,
	}, Simdram())
	require.NoError(t, err)
	defer prog.Release()
	require.NotNil(t, rewritten)

	eq, err := v.EquivalentNetwork(rewritten)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestService_NilSource(t *testing.T) {
	_, _, err := Felix().Compile(compile.Request{})
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestService_FlavorAndName(t *testing.T) {
	ambit, err := Ambit(DefaultAmbitConfig())
	require.NoError(t, err)

	assert.Equal(t, "imply", Imply().Name())
	assert.Equal(t, logic.AIG, Imply().Flavor())
	assert.Equal(t, logic.MIG, Plim().Flavor())
	assert.Equal(t, logic.XAG, Felix().Flavor())
	assert.Equal(t, logic.MIG, ambit.Flavor())
	assert.Equal(t, logic.MIG, Simdram().Flavor())
}

// A constant-output network compiles to an empty or near-empty program
// and still validates.
func TestServices_ConstantOutput(t *testing.T) {
	n := logic.NewNetwork(logic.AIG)
	a := n.AddPI()
	n.AddPO(n.And(a, a.Not())) // folds to constant false
	n.AddPO(a)

	stats, prog, err := compile.Compile(n, compile.Settings{}, Imply())
	require.NoError(t, err)
	defer prog.Release()
	assert.True(t, stats.ValidationSuccess)
}
