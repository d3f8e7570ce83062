package arch

import (
	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
)

// Imply returns the service for material-implication crossbars. The cell
// set is FALSE (reset) and IMP (dst := !src | dst); AND gates of an AIG
// lower to a NAND held in inverted polarity, so chained complemented
// edges cost nothing.
func Imply() compile.Service {
	return &service{is: implyISA}
}

var implyISA = &isa{
	name:   "imply",
	flavor: logic.AIG,
	sem: map[string]semFn{
		opFALSE: semFALSE,
		opIMP:   semIMP,
	},
	cost: map[string]float64{
		opFALSE: 1,
		opIMP:   1,
	},
	cellName: defaultCellName,
	emitGate: implyEmitGate,
	emitNot:  implyEmitNot,
}

// implyFreshNeg yields a fresh cell holding !val(s): two instructions
// when the content already has the right polarity, four when a double
// inversion is needed to land in a writable cell.
func implyFreshNeg(s logic.Signal, next *int) ([]instr, uint32) {
	if !s.Complemented() {
		t := tempRef(*next)
		*next++
		return []instr{
			{opcode: opFALSE, dst: t},
			{opcode: opIMP, dst: t, srcs: []uint32{s.Node()}},
		}, t
	}
	t1 := tempRef(*next)
	t2 := tempRef(*next + 1)
	*next += 2
	return []instr{
		{opcode: opFALSE, dst: t1},
		{opcode: opIMP, dst: t1, srcs: []uint32{s.Node()}},
		{opcode: opFALSE, dst: t2},
		{opcode: opIMP, dst: t2, srcs: []uint32{t1}},
	}, t2
}

// implySrcPlain yields a cell whose content equals val(s), readable as an
// implication source. Plain operands read in place.
func implySrcPlain(s logic.Signal, next *int) ([]instr, uint32) {
	if !s.Complemented() {
		return nil, s.Node()
	}
	// The content is already the complement, one inversion recovers it.
	t := tempRef(*next)
	*next++
	return []instr{
		{opcode: opFALSE, dst: t},
		{opcode: opIMP, dst: t, srcs: []uint32{s.Node()}},
	}, t
}

func implyEmitNot(src logic.Signal) candidate {
	next := 0
	seq, t := implyFreshNeg(src, &next)
	return candidate{seq: seq, result: logic.MakeSignal(t, false)}
}

func implyEmitGate(op logic.Op, f []logic.Signal) []candidate {
	if op != logic.OpAnd {
		panic("arch: imply: unexpected gate " + op.String())
	}
	// NAND(x, y) = x IMP !y, computed into the cell holding !y.
	var cands []candidate
	for _, p := range [][2]logic.Signal{{f[0], f[1]}, {f[1], f[0]}} {
		x, y := p[0], p[1]
		next := 0
		setup, t := implyFreshNeg(y, &next)
		load, cx := implySrcPlain(x, &next)
		seq := make([]instr, 0, len(setup)+len(load)+1)
		seq = append(seq, setup...)
		seq = append(seq, load...)
		seq = append(seq, instr{opcode: opIMP, dst: t, srcs: []uint32{cx}})
		cands = append(cands, candidate{seq: seq, result: logic.MakeSignal(t, true)})
	}
	return cands
}
