package arch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
)

// ErrAmbitConfig indicates an Ambit row layout that cannot execute
// triple-row activation.
var ErrAmbitConfig = errors.New("arch: invalid ambit configuration")

// AmbitConfig describes the DRAM subarray layout the Ambit service
// compiles for: how many designated compute rows feed triple-row
// activation, how many dual-contact rows provide negation, and the cycle
// weights of the two primitives.
type AmbitConfig struct {
	// TRows is the number of designated compute rows. Triple-row
	// activation needs at least one full triple.
	TRows int `yaml:"t_rows"`

	// DCCRows is the number of dual-contact rows available for negated
	// copies.
	DCCRows int `yaml:"dcc_rows"`

	// AAPCost weighs one activate-activate-precharge row copy.
	AAPCost float64 `yaml:"aap_cost"`

	// TRACost weighs one triple-row activation.
	TRACost float64 `yaml:"tra_cost"`
}

// DefaultAmbitConfig returns the layout of the reference subarray: one
// compute triple, two dual-contact rows, unit-cost copies.
func DefaultAmbitConfig() AmbitConfig {
	return AmbitConfig{TRows: 3, DCCRows: 2, AAPCost: 1, TRACost: 1}
}

// Validate reports whether the layout supports compilation at all.
func (c AmbitConfig) Validate() error {
	if c.TRows < 3 {
		return fmt.Errorf("%w: %d compute rows, need at least 3", ErrAmbitConfig, c.TRows)
	}
	if c.DCCRows < 1 {
		return fmt.Errorf("%w: no dual-contact rows", ErrAmbitConfig)
	}
	if c.AAPCost <= 0 || c.TRACost <= 0 {
		return fmt.Errorf("%w: non-positive cycle weights", ErrAmbitConfig)
	}
	return nil
}

// ParseAmbitConfig reads a YAML AmbitConfig. Absent fields keep their
// default values.
func ParseAmbitConfig(r io.Reader) (AmbitConfig, error) {
	cfg := DefaultAmbitConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("arch: ambit config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadAmbitConfig reads a YAML AmbitConfig from a file.
func LoadAmbitConfig(path string) (AmbitConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return AmbitConfig{}, fmt.Errorf("arch: ambit config: %w", err)
	}
	defer f.Close()
	return ParseAmbitConfig(f)
}

// Ambit returns the service for triple-row-activation DRAM compute over
// MIG networks. Operands are copied into a compute triple with AAP (or
// through a dual-contact row when a negated copy is needed), one TRA
// executes the majority, and the result is copied back out.
func Ambit(cfg AmbitConfig) (compile.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	is := &isa{
		name:   "ambit",
		flavor: logic.MIG,
		sem: map[string]semFn{
			opAAP: semCOPY,
			opNOT: semNOT,
			opTRA: semTRA,
		},
		cost: map[string]float64{
			opAAP: cfg.AAPCost,
			opNOT: 2 * cfg.AAPCost, // copy into and out of a DCC row
			opTRA: cfg.TRACost,
		},
		cellName: defaultCellName,
		emitGate: traEmitGate(opAAP, opTRA),
		emitNot:  traEmitNot(opAAP, opTRA),
	}
	return &service{is: is}, nil
}

// traEmitNot copies the operand through a dual-contact row.
func traEmitNot(copyOp, _ string) func(src logic.Signal) candidate {
	return func(src logic.Signal) candidate {
		t := tempRef(0)
		op := opNOT
		if src.Complemented() {
			op = copyOp
		}
		return candidate{
			seq:    []instr{{opcode: op, dst: t, srcs: []uint32{src.Node()}}},
			result: logic.MakeSignal(t, false),
		}
	}
}

// traEmitGate lowers a majority gate for triple-activation targets: three
// row copies into a fresh triple (negated copies ride the dual-contact
// rows), then one destructive triple activation; the result stays in the
// first row of the triple.
func traEmitGate(copyOp, triOp string) func(op logic.Op, f []logic.Signal) []candidate {
	return func(op logic.Op, f []logic.Signal) []candidate {
		if op != logic.OpMaj {
			panic("arch: " + triOp + ": unexpected gate " + op.String())
		}
		orders := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
		var cands []candidate
		for _, ord := range orders {
			seq := make([]instr, 0, 4)
			rows := [3]uint32{}
			for slot, oi := range ord {
				s := f[oi]
				t := tempRef(slot)
				cp := copyOp
				if s.Complemented() {
					cp = opNOT
				}
				seq = append(seq, instr{opcode: cp, dst: t, srcs: []uint32{s.Node()}})
				rows[slot] = t
			}
			seq = append(seq, instr{opcode: triOp, dst: rows[0], srcs: []uint32{rows[0], rows[1], rows[2]}})
			cands = append(cands, candidate{seq: seq, result: logic.MakeSignal(rows[0], false)})
		}
		return cands
	}
}
