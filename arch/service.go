package arch

import (
	"errors"
	"time"

	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
)

// ErrNilSource indicates a Compile call without a network source.
var ErrNilSource = errors.New("arch: nil network source")

// service is the shared engine behind every target. The isa supplies the
// instruction set; everything else (rewriting, lowering, candidate search,
// program rendering, validation replay) is common.
type service struct {
	is *isa
}

func (s *service) Name() string { return s.is.name }

func (s *service) Flavor() logic.Flavor { return s.is.flavor }

func (s *service) Compile(req compile.Request) (compile.Statistics, *compile.Program, error) {
	var stats compile.Statistics
	if err := req.Settings.Validate(); err != nil {
		return stats, nil, err
	}
	if req.Source == nil {
		return stats, nil, ErrNilSource
	}

	// 1. Receive the network in this target's flavor.
	b := logic.NewBuilder(s.is.flavor)
	req.Source.Stream(b)
	ntk := b.Network()

	// 2. Rewriting phase per strategy.
	ntk, stats.Rewrite = rewritePhase(ntk, req.Settings)
	stats.NetworkSize = uint64(ntk.Size())
	if req.Sink != nil {
		ntk.Stream(req.Sink)
	}

	// 3. Lower gate by gate to cell instructions.
	start := time.Now()
	low := &lowering{m: newMachine(s.is, ntk.NumPIs()), set: req.Settings}
	ntk.Stream(low)
	stats.CompileTime = time.Since(start)
	stats.Cost = low.m.totalCost()
	stats.NumCells = uint64(low.m.nextCell)
	stats.NumInstructions = uint64(len(low.m.instrs))

	// 4. Replay the emitted instructions and ask the validator.
	if req.Validator != nil {
		rebuilt, err := low.m.interpret(ntk.NumPIs(), low.outs)
		if err != nil {
			return stats, nil, err
		}
		ok, err := req.Validator.EquivalentNetwork(rebuilt)
		if err != nil {
			return stats, nil, err
		}
		stats.ValidationSuccess = ok
	}
	return stats, compile.NewProgram(low.m.render()), nil
}

// lowering is the Visitor mapping streamed gates onto machine cells. Its
// namespace encodes a cell index in the signal's node and a tracked (not
// yet materialized) inversion in the complement bit.
type lowering struct {
	m    *machine
	set  compile.Settings
	outs []uint32
}

// normalize maps the shared constant-true signal onto the preloaded
// constant-one cell, so emitters never see an inverted constant.
func normalize(s logic.Signal) logic.Signal {
	if s == logic.Const1 {
		return logic.MakeSignal(cellOne, false)
	}
	return s
}

func (l *lowering) OnInput(i int) logic.Signal {
	return logic.MakeSignal(l.m.piCell(i), false)
}

func (l *lowering) OnGate(op logic.Op, fanins []logic.Signal) logic.Signal {
	ops := make([]logic.Signal, len(fanins))
	for i, f := range fanins {
		ops[i] = normalize(f)
	}
	cands := l.m.isa.emitGate(op, ops)
	best := choose(l.m, cands, l.set)
	return l.m.instantiate(best)
}

func (l *lowering) OnOutput(s logic.Signal) {
	s = normalize(s)
	cell := s.Node()
	if s.Complemented() {
		// Outputs leave the array in plain polarity.
		res := l.m.instantiate(l.m.isa.emitNot(s.Not()))
		cell = res.Node()
	}
	l.outs = append(l.outs, cell)
}

// choose picks one candidate per the compilation mode and candidate
// selection. Network-guided selection keeps only placements whose reads
// are resident, falling back to the full set when none qualify; greedy
// mode takes the first survivor, exhaustive the cheapest.
func choose(m *machine, cands []candidate, set compile.Settings) candidate {
	feasible := cands
	if set.CandidateSelection == compile.SelectNetworkGuided {
		kept := make([]candidate, 0, len(cands))
		for _, c := range cands {
			if m.residentAll(c.seq) {
				kept = append(kept, c)
			}
		}
		if len(kept) > 0 {
			feasible = kept
		}
	}
	if set.Mode == compile.ModeGreedy {
		return feasible[0]
	}
	best := feasible[0]
	bestCost := best.cost(m.isa)
	for _, c := range feasible[1:] {
		if cc := c.cost(m.isa); cc < bestCost {
			best, bestCost = c, cc
		}
	}
	return best
}
