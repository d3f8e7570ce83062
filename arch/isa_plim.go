package arch

import (
	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
)

// Plim returns the service for resistive majority cells. The only
// compute instruction is RM3 (dst := maj(src0, !src1, dst)); FALSE and
// TRUE initialize a cell. MIG majority gates lower to an initialization
// of the accumulator cell followed by one RM3, with extra RM3 pairs only
// when an operand's polarity does not match its role.
func Plim() compile.Service {
	return &service{is: plimISA}
}

var plimISA = &isa{
	name:   "plim",
	flavor: logic.MIG,
	sem: map[string]semFn{
		opFALSE: semFALSE,
		opTRUE:  semTRUE,
		opRM3:   semRM3,
	},
	cost: map[string]float64{
		opFALSE: 1,
		opTRUE:  1,
		opRM3:   1,
	},
	cellName: defaultCellName,
	emitGate: plimEmitGate,
	emitNot:  plimEmitNot,
}

// plimFresh yields a fresh cell holding val(s) when neg is false, !val(s)
// when neg is true. Both forms cost two instructions:
//
//	copy:   FALSE t; RM3 s, c0, t   (maj(v, 1, 0) = v)
//	invert: TRUE t;  RM3 c0, s, t   (maj(0, !v, 1) = !v)
func plimFresh(s logic.Signal, neg bool, next *int) ([]instr, uint32) {
	t := tempRef(*next)
	*next++
	if neg != s.Complemented() {
		return []instr{
			{opcode: opTRUE, dst: t},
			{opcode: opRM3, dst: t, srcs: []uint32{cellZero, s.Node()}},
		}, t
	}
	return []instr{
		{opcode: opFALSE, dst: t},
		{opcode: opRM3, dst: t, srcs: []uint32{s.Node(), cellZero}},
	}, t
}

// plimRole yields a cell readable with content val(s) (neg false) or
// !val(s) (neg true), in place when the stored polarity already matches.
func plimRole(s logic.Signal, neg bool, next *int) ([]instr, uint32) {
	if neg == s.Complemented() {
		return nil, s.Node()
	}
	return plimFresh(s, neg, next)
}

func plimEmitNot(src logic.Signal) candidate {
	next := 0
	seq, t := plimFresh(src, true, &next)
	return candidate{seq: seq, result: logic.MakeSignal(t, false)}
}

func plimEmitGate(op logic.Op, f []logic.Signal) []candidate {
	if op != logic.OpMaj {
		panic("arch: plim: unexpected gate " + op.String())
	}
	// maj(u, v, w): w seeds the accumulator, u rides the plain source
	// slot, v the inverted one. Every role assignment is a candidate
	// because operand polarities make their costs differ.
	orders := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	var cands []candidate
	for _, ord := range orders {
		u, v, w := f[ord[0]], f[ord[1]], f[ord[2]]
		next := 0
		seed, acc := plimFresh(w, false, &next)
		loadU, cu := plimRole(u, false, &next)
		loadV, cv := plimRole(v, true, &next)
		seq := make([]instr, 0, len(seed)+len(loadU)+len(loadV)+1)
		seq = append(seq, seed...)
		seq = append(seq, loadU...)
		seq = append(seq, loadV...)
		seq = append(seq, instr{opcode: opRM3, dst: acc, srcs: []uint32{cu, cv}})
		cands = append(cands, candidate{seq: seq, result: logic.MakeSignal(acc, false)})
	}
	return cands
}
