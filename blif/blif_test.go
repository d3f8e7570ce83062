package blif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memlogic/logic"
)

const fullAdder = `# one-bit full adder
.model fa
.inputs a b cin
.outputs sum cout
.names a b cin sum
100 1
010 1
001 1
111 1
.names a b cin cout
11- 1
1-1 1
-11 1
.end
`

func TestParse_FullAdder(t *testing.T) {
	n, err := Parse(strings.NewReader(fullAdder), logic.AIG)
	require.NoError(t, err)
	assert.Equal(t, 3, n.NumPIs())
	assert.Equal(t, 2, n.NumPOs())

	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x96), tts[0]&0xFF, "sum is odd parity")
	assert.Equal(t, uint64(0xE8), tts[1]&0xFF, "carry is majority")
}

func TestParse_FlavorIsCallersChoice(t *testing.T) {
	for _, flavor := range []logic.Flavor{logic.AIG, logic.XAG, logic.MIG} {
		n, err := Parse(strings.NewReader(fullAdder), flavor)
		require.NoError(t, err)
		assert.Equal(t, flavor, n.Flavor())

		tts, err := n.OutputTruthTables()
		require.NoError(t, err)
		assert.Equal(t, uint64(0x96), tts[0]&0xFF)
	}
}

func TestParse_OffsetCover(t *testing.T) {
	src := `.model nand
.inputs a b
.outputs y
.names a b y
11 0
.end
`
	n, err := Parse(strings.NewReader(src), logic.AIG)
	require.NoError(t, err)
	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7), tts[0]&0xF)
}

func TestParse_Constants(t *testing.T) {
	src := `.inputs a
.outputs zero one
.names zero
.names one
1
.end
`
	n, err := Parse(strings.NewReader(src), logic.AIG)
	require.NoError(t, err)
	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), tts[0]&0x3)
	assert.Equal(t, uint64(0x3), tts[1]&0x3)
}

func TestParse_Continuations(t *testing.T) {
	src := ".inputs a \\\nb\n.outputs y\n.names a b y\n11 1\n.end\n"
	n, err := Parse(strings.NewReader(src), logic.AIG)
	require.NoError(t, err)
	assert.Equal(t, 2, n.NumPIs())

	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8), tts[0]&0xF)
}

func TestParse_CoversInAnyOrder(t *testing.T) {
	src := `.inputs a b
.outputs y
.names t y
0 1
.names a b t
11 0
.end
`
	n, err := Parse(strings.NewReader(src), logic.AIG)
	require.NoError(t, err)
	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8), tts[0]&0xF, "y = not nand = and")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"undefined net": {".inputs a\n.outputs y\n.end\n", ErrSyntax},
		"loop":          {".inputs a\n.outputs y\n.names z y\n1 1\n.names y z\n1 1\n.end\n", ErrSyntax},
		"latch":         {".inputs a\n.outputs y\n.latch a y re clk 0\n.end\n", ErrUnsupported},
		"mixed rows":    {".inputs a b\n.outputs y\n.names a b y\n11 1\n00 0\n.end\n", ErrSyntax},
		"bad width":     {".inputs a b\n.outputs y\n.names a b y\n1 1\n.end\n", ErrSyntax},
		"bad char":      {".inputs a\n.outputs y\n.names a y\nx 1\n.end\n", ErrSyntax},
		"stray row":     {".inputs a\n.outputs a\n11 1\n.end\n", ErrSyntax},
		"no outputs":    {".inputs a\n.end\n", ErrSyntax},
		"after end":     {".inputs a\n.outputs a\n.end\n.inputs b\n", ErrSyntax},
		"unknown dot":   {".inputs a\n.outputs a\n.clock c\n.end\n", ErrSyntax},
		"dup net":       {".inputs a\n.outputs y\n.names a y\n1 1\n.names a y\n0 1\n.end\n", ErrSyntax},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src), logic.AIG)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("testdata/nope.blif", logic.AIG)
	assert.Error(t, err)
}
