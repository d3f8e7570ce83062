// Package logic: this file declares Flavor, Op, Signal, the node storage
// record, and the sentinel errors shared by the package.
package logic

import "errors"

// Sentinel errors for network operations.
var (
	// ErrWidthMismatch indicates a simulation call received a pattern slice
	// whose length differs from the number of primary inputs.
	ErrWidthMismatch = errors.New("logic: pattern width does not match primary input count")

	// ErrTooManyInputs indicates a truth-table request on a network with more
	// than TruthTableMaxInputs primary inputs.
	ErrTooManyInputs = errors.New("logic: too many primary inputs for truth-table simulation")

	// ErrSignalRange indicates a Signal referencing a node outside the network.
	ErrSignalRange = errors.New("logic: signal references node outside network")
)

// TruthTableMaxInputs bounds OutputTruthTables: 2^6 minterms fit one word.
const TruthTableMaxInputs = 6

// Flavor selects the primitive gate set of a Network.
type Flavor uint8

const (
	// AIG is the AND-inverter graph flavor: AND is the only gate primitive.
	AIG Flavor = iota
	// XAG is the XOR-AND graph flavor: AND and XOR gate primitives.
	XAG
	// MIG is the majority-inverter graph flavor: MAJ-3 is the only primitive.
	MIG
)

// String returns the conventional lowercase flavor name.
func (f Flavor) String() string {
	switch f {
	case AIG:
		return "aig"
	case XAG:
		return "xag"
	case MIG:
		return "mig"
	default:
		return "unknown"
	}
}

// Op identifies the function of a node.
type Op uint8

const (
	// OpConst is the constant-false node; it exists exactly once, as node 0.
	OpConst Op = iota
	// OpPI is a primary input node.
	OpPI
	// OpAnd is a two-input AND gate.
	OpAnd
	// OpXor is a two-input XOR gate.
	OpXor
	// OpMaj is a three-input majority gate.
	OpMaj
)

// Arity returns the fanin count of gates with this op (0 for const/PI).
func (op Op) Arity() int {
	switch op {
	case OpAnd, OpXor:
		return 2
	case OpMaj:
		return 3
	default:
		return 0
	}
}

// String returns the lowercase op mnemonic.
func (op Op) String() string {
	switch op {
	case OpConst:
		return "const"
	case OpPI:
		return "pi"
	case OpAnd:
		return "and"
	case OpXor:
		return "xor"
	case OpMaj:
		return "maj"
	default:
		return "unknown"
	}
}

// Signal is a reference to a node with a complement bit: node index << 1,
// plus 1 when the edge is inverting. The zero value is constant false.
type Signal uint32

// Const0 and Const1 are the two polarities of the constant node. They carry
// the same encoding in every network and every streaming namespace.
const (
	Const0 Signal = 0
	Const1 Signal = 1
)

// MakeSignal builds a Signal from a node index and a complement flag.
func MakeSignal(node uint32, complemented bool) Signal {
	s := Signal(node << 1)
	if complemented {
		s |= 1
	}
	return s
}

// Node returns the node index this signal points at.
func (s Signal) Node() uint32 { return uint32(s) >> 1 }

// Complemented reports whether the edge inverts the node's value.
func (s Signal) Complemented() bool { return s&1 == 1 }

// Not returns the inverted signal. Inversion is free: no node is created.
func (s Signal) Not() Signal { return s ^ 1 }

// NotIf returns the signal inverted when c is true.
func (s Signal) NotIf(c bool) Signal {
	if c {
		return s ^ 1
	}
	return s
}

// node is the storage record for one network node. Fanins of a gate always
// have a lower node index than the gate itself.
type node struct {
	op  Op
	fan [3]Signal // fanins; And/Xor use [0:2], Maj uses all three
	pi  int32     // primary input ordinal when op == OpPI
}

// strashKey identifies a gate for structural hashing.
type strashKey struct {
	op      Op
	a, b, c Signal
}
