// Package compile: the statistics model returned by every service. A
// Statistics value is created fresh per compilation call, returned by value,
// and never mutated afterward.
package compile

import (
	"fmt"
	"time"
)

// RewriteStatistics carries timings and sizes of the rewriting phase.
type RewriteStatistics struct {
	// RunnerTime is the time spent growing the rewriting search space.
	RunnerTime time.Duration

	// NodesPreTrim is the search-space node count before trimming.
	NodesPreTrim uint64

	// TrimTime is the time spent trimming the search space.
	TrimTime time.Duration

	// NodesPostTrim is the search-space node count after trimming.
	NodesPostTrim uint64

	// ExtractorTime is the time spent extracting the rewritten network.
	ExtractorTime time.Duration

	// RebuiltNetworkCost is the cost of the extracted network.
	RebuiltNetworkCost float64
}

// Statistics is the result record of one compilation call.
type Statistics struct {
	// Rewrite carries the rewriting-phase breakdown (zero when the
	// strategy was RewritingNone).
	Rewrite RewriteStatistics

	// NetworkSize is the node count of the network the service compiled.
	NetworkSize uint64

	// CompileTime is the instruction-generation time.
	CompileTime time.Duration

	// Cost is the architecture cost of the generated program.
	Cost float64

	// NumCells is the number of distinct memory cells the program touches.
	NumCells uint64

	// NumInstructions is the length of the generated program.
	NumInstructions uint64

	// ValidationSuccess reports the validator's verdict on the generated
	// program. A false value is a result, not a fault: the orchestrator
	// propagates it without special handling.
	ValidationSuccess bool
}

// TSV renders the statistics in the benchmark column order: the six rewrite
// fields, then size, compile time, cost, cells, instructions, and the
// validation flag. Durations are reported in milliseconds.
func (s Statistics) TSV() string {
	flag := 0
	if s.ValidationSuccess {
		flag = 1
	}
	return fmt.Sprintf("%d\t%d\t%d\t%d\t%d\t%g\t%d\t%d\t%g\t%d\t%d\t%d",
		s.Rewrite.RunnerTime.Milliseconds(),
		s.Rewrite.NodesPreTrim,
		s.Rewrite.TrimTime.Milliseconds(),
		s.Rewrite.NodesPostTrim,
		s.Rewrite.ExtractorTime.Milliseconds(),
		s.Rewrite.RebuiltNetworkCost,
		s.NetworkSize,
		s.CompileTime.Milliseconds(),
		s.Cost,
		s.NumCells,
		s.NumInstructions,
		flag,
	)
}
