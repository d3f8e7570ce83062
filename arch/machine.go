package arch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/memlogic/logic"
)

// Cell indices reserved in every machine. Cell 0 is wired to constant
// false and cell 1 to constant true; primary inputs occupy the cells
// immediately after, loaded before the program runs.
const (
	cellZero uint32 = 0
	cellOne  uint32 = 1
)

// instr is one executable cell instruction. dst is the written cell;
// srcs are read cells. Operand polarity never appears here: inversion is
// a property of how lowering tracks values, and any inversion a target
// cannot absorb is materialized as its own instruction.
type instr struct {
	opcode string
	dst    uint32
	srcs   []uint32
}

// semFn gives the meaning of one opcode over cell contents. srcVals holds
// the current contents of in.srcs in order, dstVal the content of in.dst
// before the instruction executes. The returned signal is the new content
// of in.dst.
type semFn func(n *logic.Network, srcVals []logic.Signal, dstVal logic.Signal) (logic.Signal, error)

// isa describes one target instruction set. emitGate returns every
// candidate instruction sequence realizing the gate over the given
// operands; each candidate's result operand may carry an inversion for
// the lowering to track. emitNot yields a candidate materializing the
// negation of src's logical value into a plain cell.
type isa struct {
	name   string
	flavor logic.Flavor
	sem    map[string]semFn
	cost   map[string]float64

	cellName func(m *machine, cell uint32) string
	emitGate func(op logic.Op, fanins []logic.Signal) []candidate
	emitNot  func(src logic.Signal) candidate
}

// candidate is one way of realizing a gate: the instructions to append
// and the operand the gate's value ends up in. Fresh cells inside a
// candidate are placeholder references (tempRef); the machine binds them
// to real cells only when the candidate is instantiated, so rejected
// candidates never consume cells.
type candidate struct {
	seq    []instr
	result logic.Signal
}

// tempFlag marks a placeholder cell reference inside a candidate.
const tempFlag uint32 = 1 << 30

func tempRef(i int) uint32 { return tempFlag | uint32(i) }

func (c candidate) cost(is *isa) float64 {
	var total float64
	for _, in := range c.seq {
		total += is.cost[in.opcode]
	}
	return total
}

// hotWindow bounds how many recently written cells count as resident for
// network-guided candidate selection.
const hotWindow = 8

// machine accumulates the program for one compilation. Cells are
// allocated monotonically; the first firstTemp cells (constants and
// primary inputs) are always resident.
type machine struct {
	isa       *isa
	instrs    []instr
	nextCell  uint32
	firstTemp uint32
	hot       []uint32
}

func newMachine(is *isa, numPIs int) *machine {
	m := &machine{isa: is, nextCell: 2 + uint32(numPIs)}
	m.firstTemp = m.nextCell
	return m
}

// piCell returns the cell preloaded with primary input i.
func (m *machine) piCell(i int) uint32 { return 2 + uint32(i) }

func (m *machine) alloc() uint32 {
	c := m.nextCell
	m.nextCell++
	return c
}

// instantiate binds a candidate's placeholder cells to fresh real cells,
// appends its instructions, and returns the rebased result operand.
func (m *machine) instantiate(c candidate) logic.Signal {
	bind := map[uint32]uint32{}
	rebase := func(cell uint32) uint32 {
		if cell&tempFlag == 0 {
			return cell
		}
		real, ok := bind[cell]
		if !ok {
			real = m.alloc()
			bind[cell] = real
		}
		return real
	}
	for _, in := range c.seq {
		out := instr{opcode: in.opcode, dst: rebase(in.dst), srcs: make([]uint32, len(in.srcs))}
		for j, s := range in.srcs {
			out.srcs[j] = rebase(s)
		}
		m.instrs = append(m.instrs, out)
		m.touch(out.dst)
	}
	return logic.MakeSignal(rebase(c.result.Node()), c.result.Complemented())
}

func (m *machine) touch(cell uint32) {
	if cell < m.firstTemp {
		return
	}
	m.hot = append(m.hot, cell)
	if len(m.hot) > hotWindow {
		m.hot = m.hot[len(m.hot)-hotWindow:]
	}
}

// resident reports whether cell can be read without refetching: constants
// and primary inputs always, temporaries only while inside the hot window.
func (m *machine) resident(cell uint32) bool {
	if cell < m.firstTemp {
		return true
	}
	for _, h := range m.hot {
		if h == cell {
			return true
		}
	}
	return false
}

// residentAll reports whether every cell a candidate reads is resident
// before the candidate runs. Placeholder cells count as resident once the
// candidate itself writes them.
func (m *machine) residentAll(seq []instr) bool {
	written := map[uint32]bool{}
	for _, in := range seq {
		for _, s := range in.srcs {
			if written[s] || s&tempFlag != 0 {
				continue
			}
			if !m.resident(s) {
				return false
			}
		}
		written[in.dst] = true
	}
	return true
}

// render writes the program text, one instruction per line.
func (m *machine) render() string {
	var b strings.Builder
	for _, in := range m.instrs {
		b.WriteString(in.opcode)
		b.WriteByte(' ')
		b.WriteString(m.isa.cellName(m, in.dst))
		for _, s := range in.srcs {
			b.WriteString(", ")
			b.WriteString(m.isa.cellName(m, s))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *machine) totalCost() float64 {
	var total float64
	for _, in := range m.instrs {
		total += m.isa.cost[in.opcode]
	}
	return total
}

// interpret re-executes the instruction list symbolically and returns the
// network it computes. The replay reads only the recorded opcodes and
// cell indices, so a lowering bug that emits the wrong operand order
// produces a genuinely wrong network here.
func (m *machine) interpret(numPIs int, outs []uint32) (*logic.Network, error) {
	n := logic.NewNetwork(m.isa.flavor)
	cells := make([]logic.Signal, m.nextCell)
	cells[cellZero] = logic.Const0
	cells[cellOne] = logic.Const1
	for i := 0; i < numPIs; i++ {
		cells[m.piCell(i)] = n.AddPI()
	}
	for i, in := range m.instrs {
		sem, ok := m.isa.sem[in.opcode]
		if !ok {
			return nil, fmt.Errorf("arch: %s: instruction %d: unknown opcode %q", m.isa.name, i, in.opcode)
		}
		srcVals := make([]logic.Signal, len(in.srcs))
		for j, s := range in.srcs {
			srcVals[j] = cells[s]
		}
		v, err := sem(n, srcVals, cells[in.dst])
		if err != nil {
			return nil, fmt.Errorf("arch: %s: instruction %d: %w", m.isa.name, i, err)
		}
		if in.opcode == opTRA || in.opcode == opAP {
			// Triple-row activation overwrites all three rows.
			for _, s := range in.srcs {
				cells[s] = v
			}
		}
		cells[in.dst] = v
	}
	for _, c := range outs {
		n.AddPO(cells[c])
	}
	return n, nil
}

// defaultCellName numbers constants, inputs and temporaries.
func defaultCellName(m *machine, cell uint32) string {
	switch {
	case cell == cellZero:
		return "c0"
	case cell == cellOne:
		return "c1"
	case cell < m.firstTemp:
		return fmt.Sprintf("x%d", cell-2)
	default:
		return fmt.Sprintf("r%d", cell-m.firstTemp)
	}
}
