package logic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memlogic/logic"
)

// recordingVisitor counts replay events while delegating to a Builder.
type recordingVisitor struct {
	b                      *logic.Builder
	inputs, gates, outputs int
}

func (r *recordingVisitor) OnInput(i int) logic.Signal { r.inputs++; return r.b.OnInput(i) }
func (r *recordingVisitor) OnGate(op logic.Op, fanins []logic.Signal) logic.Signal {
	r.gates++
	return r.b.OnGate(op, fanins)
}
func (r *recordingVisitor) OnOutput(s logic.Signal) { r.outputs++; r.b.OnOutput(s) }

func buildXor3(t *testing.T, f logic.Flavor) *logic.Network {
	t.Helper()
	n := logic.NewNetwork(f)
	a, b, c := n.AddPI(), n.AddPI(), n.AddPI()
	n.AddPO(n.Xor(n.Xor(a, b), c))
	return n
}

func TestStream_RoundTrip(t *testing.T) {
	for _, f := range []logic.Flavor{logic.AIG, logic.XAG, logic.MIG} {
		t.Run(f.String(), func(t *testing.T) {
			n := buildXor3(t, f)
			rec := &recordingVisitor{b: logic.NewBuilder(f)}
			n.Stream(rec)

			assert.Equal(t, 3, rec.inputs)
			assert.Equal(t, 1, rec.outputs)
			assert.Equal(t, n.NumGates(), rec.gates, "dangling-free network replays every gate")

			got := rec.b.Network()
			want, err := n.OutputTruthTables()
			require.NoError(t, err)
			have, err := got.OutputTruthTables()
			require.NoError(t, err)
			assert.Equal(t, want[0]&0xFF, have[0]&0xFF)
		})
	}
}

func TestStream_SkipsDangling(t *testing.T) {
	n := logic.NewNetwork(logic.AIG)
	a, b, c := n.AddPI(), n.AddPI(), n.AddPI()
	keep := n.And(a, b)
	n.And(keep, c) // dangling
	n.AddPO(keep)

	rec := &recordingVisitor{b: logic.NewBuilder(logic.AIG)}
	n.Stream(rec)
	assert.Equal(t, 1, rec.gates)
}

func TestStream_CrossFlavor(t *testing.T) {
	// An XAG streamed into a MIG builder: XOR gates are decomposed on the
	// receiving side, the function is preserved.
	n := buildXor3(t, logic.XAG)
	b := logic.NewBuilder(logic.MIG)
	n.Stream(b)
	got := b.Network()

	want, err := n.OutputTruthTables()
	require.NoError(t, err)
	have, err := got.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, want[0]&0xFF, have[0]&0xFF)
	assert.Equal(t, logic.MIG, got.Flavor())
}

func TestWriteDot(t *testing.T) {
	n := buildXor3(t, logic.XAG)
	var sb strings.Builder
	require.NoError(t, n.WriteDot(&sb))
	dot := sb.String()
	assert.Contains(t, dot, "digraph ntk {")
	assert.Contains(t, dot, "shape=box")
	assert.Contains(t, dot, "doublecircle")
	assert.Contains(t, dot, "xor")
}
