package arch

import (
	"errors"

	"github.com/katalvlaran/memlogic/logic"
)

var errArity = errors.New("wrong operand count")

// Opcode mnemonics. Not every target supports every opcode; each isa
// lists the subset it executes in its sem table.
const (
	opFALSE = "FALSE" // dst := 0
	opTRUE  = "TRUE"  // dst := 1
	opCOPY  = "COPY"  // dst := src0
	opNOT   = "NOT"   // dst := !src0
	opAND   = "AND"   // dst := src0 & src1
	opOR    = "OR"    // dst := src0 | src1
	opXOR   = "XOR"   // dst := src0 ^ src1
	opIMP   = "IMP"   // dst := !src0 | dst
	opRM3   = "RM3"   // dst := maj(src0, !src1, dst)
	opTRA   = "TRA"   // src0,src1,src2 := maj(src0, src1, src2)
	opAAP   = "AAP"   // dst := src0 (activate-activate-precharge row copy)
	opAP    = "AP"    // src0,src1,src2 := maj(src0, src1, src2)
)

func semFALSE(_ *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 0 {
		return 0, errArity
	}
	return logic.Const0, nil
}

func semTRUE(_ *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 0 {
		return 0, errArity
	}
	return logic.Const1, nil
}

func semCOPY(_ *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 1 {
		return 0, errArity
	}
	return srcVals[0], nil
}

func semNOT(_ *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 1 {
		return 0, errArity
	}
	return srcVals[0].Not(), nil
}

func semAND(n *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 2 {
		return 0, errArity
	}
	return n.And(srcVals[0], srcVals[1]), nil
}

func semOR(n *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 2 {
		return 0, errArity
	}
	return n.Or(srcVals[0], srcVals[1]), nil
}

func semXOR(n *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 2 {
		return 0, errArity
	}
	return n.Xor(srcVals[0], srcVals[1]), nil
}

func semIMP(n *logic.Network, srcVals []logic.Signal, dstVal logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 1 {
		return 0, errArity
	}
	return n.Or(srcVals[0].Not(), dstVal), nil
}

func semRM3(n *logic.Network, srcVals []logic.Signal, dstVal logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 2 {
		return 0, errArity
	}
	return n.Maj(srcVals[0], srcVals[1].Not(), dstVal), nil
}

func semTRA(n *logic.Network, srcVals []logic.Signal, _ logic.Signal) (logic.Signal, error) {
	if len(srcVals) != 3 {
		return 0, errArity
	}
	return n.Maj(srcVals[0], srcVals[1], srcVals[2]), nil
}
