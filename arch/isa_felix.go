package arch

import (
	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
)

// Felix returns the service for in-array bulk logic with native AND, OR,
// XOR and NOT operations over XAG networks.
func Felix() compile.Service {
	return &service{is: felixISA}
}

var felixISA = &isa{
	name:   "felix",
	flavor: logic.XAG,
	sem: map[string]semFn{
		opAND:  semAND,
		opOR:   semOR,
		opXOR:  semXOR,
		opNOT:  semNOT,
		opCOPY: semCOPY,
	},
	cost: map[string]float64{
		opAND:  1,
		opOR:   1,
		opXOR:  2,
		opNOT:  1,
		opCOPY: 1,
	},
	cellName: defaultCellName,
	emitGate: felixEmitGate,
	emitNot:  felixEmitNot,
}

func felixEmitNot(src logic.Signal) candidate {
	t := tempRef(0)
	op := opNOT
	if src.Complemented() {
		// The cell already holds the negated value.
		op = opCOPY
	}
	return candidate{
		seq:    []instr{{opcode: op, dst: t, srcs: []uint32{src.Node()}}},
		result: logic.MakeSignal(t, false),
	}
}

// felixPlain yields instructions leaving val(s) readable in some cell,
// returning that cell. Plain operands read in place.
func felixPlain(s logic.Signal, next *int) ([]instr, uint32) {
	if !s.Complemented() {
		return nil, s.Node()
	}
	t := tempRef(*next)
	*next++
	return []instr{{opcode: opNOT, dst: t, srcs: []uint32{s.Node()}}}, t
}

// felixNeg is the dual: leaves !val(s) readable in some cell.
func felixNeg(s logic.Signal, next *int) ([]instr, uint32) {
	return felixPlain(s.Not(), next)
}

func felixEmitGate(op logic.Op, f []logic.Signal) []candidate {
	switch op {
	case logic.OpXor:
		// Operand inversions fold into the result polarity for free.
		inv := f[0].Complemented() != f[1].Complemented()
		var cands []candidate
		for _, p := range [][2]uint32{{f[0].Node(), f[1].Node()}, {f[1].Node(), f[0].Node()}} {
			t := tempRef(0)
			cands = append(cands, candidate{
				seq:    []instr{{opcode: opXOR, dst: t, srcs: []uint32{p[0], p[1]}}},
				result: logic.MakeSignal(t, inv),
			})
		}
		return cands
	case logic.OpAnd:
		var cands []candidate
		for _, p := range [][2]logic.Signal{{f[0], f[1]}, {f[1], f[0]}} {
			// Direct form.
			next := 0
			ia, ca := felixPlain(p[0], &next)
			ib, cb := felixPlain(p[1], &next)
			t := tempRef(next)
			seq := make([]instr, 0, len(ia)+len(ib)+1)
			seq = append(seq, ia...)
			seq = append(seq, ib...)
			seq = append(seq, instr{opcode: opAND, dst: t, srcs: []uint32{ca, cb}})
			cands = append(cands, candidate{seq: seq, result: logic.MakeSignal(t, false)})

			// De Morgan form: OR of the complements, inverted result.
			// Cheapest when both operands arrive inverted.
			next = 0
			ja, da := felixNeg(p[0], &next)
			jb, db := felixNeg(p[1], &next)
			t2 := tempRef(next)
			seq2 := make([]instr, 0, len(ja)+len(jb)+1)
			seq2 = append(seq2, ja...)
			seq2 = append(seq2, jb...)
			seq2 = append(seq2, instr{opcode: opOR, dst: t2, srcs: []uint32{da, db}})
			cands = append(cands, candidate{seq: seq2, result: logic.MakeSignal(t2, true)})
		}
		return cands
	default:
		panic("arch: felix: unexpected gate " + op.String())
	}
}
