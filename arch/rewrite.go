package arch

import (
	"time"

	"github.com/katalvlaran/memlogic/compile"
	"github.com/katalvlaran/memlogic/logic"
	"github.com/katalvlaran/memlogic/preopt"
)

// defaultSizeFactor is used when the request leaves the rewriting size
// factor at zero.
const defaultSizeFactor = 2

// rewritePhase runs the strategy-selected rewriting over the compiled
// network. The search space is a set of candidate networks produced with
// varying cut sizes and iteration budgets; trimming discards dominated
// candidates; extraction picks the survivor matching the strategy's
// objective. The base network always survives, so rewriting never makes
// the compiled network worse under the chosen objective.
func rewritePhase(base *logic.Network, set compile.Settings) (*logic.Network, compile.RewriteStatistics) {
	var rs compile.RewriteStatistics
	if set.Rewriting == compile.RewritingNone {
		return base, rs
	}
	factor := int(set.RewritingSizeFactor)
	if factor <= 0 {
		factor = defaultSizeFactor
	}

	// 1. Grow the search space.
	start := time.Now()
	cands := []*logic.Network{base}
grow:
	for k := 2; k <= preopt.DefaultCutSize; k++ {
		for _, iters := range []int{1, factor} {
			c := preopt.Preoptimize(base,
				preopt.WithCutSize(k),
				preopt.WithMaxIterations(iters))
			cands = append(cands, c)
			if set.Rewriting == compile.RewritingGreedyEstimate && c.Size() < base.Size() {
				// First estimated improvement wins; stop growing.
				break grow
			}
		}
	}
	rs.RunnerTime = time.Since(start)
	for _, c := range cands {
		rs.NodesPreTrim += uint64(c.Size())
	}

	// 2. Trim dominated candidates (same or larger than another survivor).
	start = time.Now()
	trimmed := []*logic.Network{cands[0]}
	for _, c := range cands[1:] {
		dominated := false
		for _, t := range trimmed {
			if t.Size() <= c.Size() && t.NumGates() <= c.NumGates() {
				dominated = true
				break
			}
		}
		if !dominated {
			trimmed = append(trimmed, c)
		}
	}
	rs.TrimTime = time.Since(start)
	for _, c := range trimmed {
		rs.NodesPostTrim += uint64(c.Size())
	}

	// 3. Extract per objective.
	start = time.Now()
	best := base
	bestScore := objective(base, base, set.Rewriting)
	for _, c := range trimmed[1:] {
		if s := objective(c, base, set.Rewriting); s < bestScore {
			best, bestScore = c, s
		}
	}
	rs.ExtractorTime = time.Since(start)
	rs.RebuiltNetworkCost = best.Cost()
	return best, rs
}

// objective scores a candidate; lower is better. An unscorable candidate
// (memory-bounded strategy over the live-width budget) scores +inf-like.
func objective(c, base *logic.Network, strat compile.RewritingStrategy) float64 {
	switch strat {
	case compile.RewritingLP:
		// Linear blend of gate count and depth.
		dv := logic.NewDepthView(c)
		return float64(c.NumGates()) + 0.5*float64(dv.Depth())
	case compile.RewritingCompilingMemusage:
		if maxLevelWidth(c) > maxLevelWidth(base) {
			return float64(base.Size() + c.Size() + 1)
		}
		return float64(c.NumGates())
	default:
		return float64(c.NumGates())
	}
}

// maxLevelWidth estimates peak live-cell pressure as the widest
// topological level.
func maxLevelWidth(n *logic.Network) int {
	dv := logic.NewDepthView(n)
	width := make([]int, dv.Depth()+1)
	max := 0
	for i := uint32(0); i < uint32(n.Size()); i++ {
		if !n.IsGate(i) {
			continue
		}
		l := dv.Level(i)
		width[l]++
		if width[l] > max {
			max = width[l]
		}
	}
	return max
}
