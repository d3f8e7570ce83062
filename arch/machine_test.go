package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memlogic/logic"
)

func TestMachine_InstantiateBindsPlaceholders(t *testing.T) {
	m := newMachine(felixISA, 2)
	c := candidate{
		seq: []instr{
			{opcode: opNOT, dst: tempRef(0), srcs: []uint32{m.piCell(0)}},
			{opcode: opAND, dst: tempRef(1), srcs: []uint32{tempRef(0), m.piCell(1)}},
		},
		result: logic.MakeSignal(tempRef(1), false),
	}
	res := m.instantiate(c)

	require.Len(t, m.instrs, 2)
	first, second := m.instrs[0], m.instrs[1]
	assert.Zero(t, first.dst&tempFlag, "placeholder bound to a real cell")
	assert.Equal(t, first.dst, second.srcs[0], "shared placeholder binds once")
	assert.Equal(t, second.dst, res.Node())
	assert.Equal(t, uint32(6), m.nextCell, "two constants, two inputs, two temps")
}

func TestMachine_RejectedCandidateConsumesNoCells(t *testing.T) {
	m := newMachine(felixISA, 1)
	before := m.nextCell
	// Generating candidates must be free; only instantiation allocates.
	cands := felixEmitGate(logic.OpAnd, []logic.Signal{
		logic.MakeSignal(m.piCell(0), false),
		logic.MakeSignal(m.piCell(0), true),
	})
	require.NotEmpty(t, cands)
	assert.Equal(t, before, m.nextCell)
}

func TestMachine_Residency(t *testing.T) {
	m := newMachine(felixISA, 2)
	assert.True(t, m.resident(cellZero))
	assert.True(t, m.resident(m.piCell(1)), "inputs are always resident")

	// Fill the hot window and push the first temp out.
	first := m.alloc()
	m.touch(first)
	for i := 0; i < hotWindow; i++ {
		c := m.alloc()
		m.touch(c)
	}
	assert.False(t, m.resident(first))
}

func TestMachine_RenderFormat(t *testing.T) {
	m := newMachine(felixISA, 2)
	m.instantiate(candidate{
		seq: []instr{
			{opcode: opAND, dst: tempRef(0), srcs: []uint32{m.piCell(0), m.piCell(1)}},
		},
		result: logic.MakeSignal(tempRef(0), false),
	})
	assert.Equal(t, "AND r0, x0, x1\n", m.render())
}

func TestMachine_InterpretExecutesTheRecordedProgram(t *testing.T) {
	// The replay follows the instruction list, not the lowering intent,
	// so an operand mix-up yields a genuinely different network.
	m := newMachine(felixISA, 2)
	out := m.instantiate(candidate{
		seq: []instr{
			{opcode: opNOT, dst: tempRef(0), srcs: []uint32{m.piCell(0)}},
			{opcode: opAND, dst: tempRef(1), srcs: []uint32{tempRef(0), m.piCell(1)}},
		},
		result: logic.MakeSignal(tempRef(1), false),
	})
	n, err := m.interpret(2, []uint32{out.Node()})
	require.NoError(t, err)

	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	require.Len(t, tts, 1)
	assert.Equal(t, uint64(0x4), tts[0]&0xF, "computes !a AND b")
}

func TestMachine_InterpretRejectsUnknownOpcode(t *testing.T) {
	m := newMachine(felixISA, 1)
	m.instrs = append(m.instrs, instr{opcode: "BOGUS", dst: 3})
	m.nextCell = 4
	_, err := m.interpret(1, nil)
	assert.Error(t, err)
}

func TestMachine_TripleActivationClobbersAllRows(t *testing.T) {
	m := newMachine(simdramISA, 3)
	r0, r1, r2 := m.alloc(), m.alloc(), m.alloc()
	m.instrs = append(m.instrs,
		instr{opcode: opAAP, dst: r0, srcs: []uint32{m.piCell(0)}},
		instr{opcode: opAAP, dst: r1, srcs: []uint32{m.piCell(1)}},
		instr{opcode: opAAP, dst: r2, srcs: []uint32{m.piCell(2)}},
		instr{opcode: opAP, dst: r0, srcs: []uint32{r0, r1, r2}},
	)
	n, err := m.interpret(3, []uint32{r1})
	require.NoError(t, err)

	tts, err := n.OutputTruthTables()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xE8), tts[0]&0xFF, "row 1 holds the majority after activation")
}
