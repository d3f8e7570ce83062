// Package compile: the settings model. Settings are a read-only value for
// the duration of one compilation call; no field is mutated mid-call.
package compile

import (
	"errors"
	"fmt"
)

// Sentinel errors for settings handling.
var (
	// ErrUnknownStrategy indicates an unrecognized rewriting-strategy name.
	ErrUnknownStrategy = errors.New("compile: unknown rewriting strategy")

	// ErrUnknownMode indicates an unrecognized compilation-mode name.
	ErrUnknownMode = errors.New("compile: unknown compilation mode")

	// ErrUnknownSelection indicates an unrecognized candidate-selection name.
	ErrUnknownSelection = errors.New("compile: unknown candidate selection mode")

	// ErrSettings indicates a Settings value with an out-of-range field.
	ErrSettings = errors.New("compile: invalid settings")
)

// RewritingStrategy selects how the rewriting phase balances program-size
// rewriting against compile cost.
type RewritingStrategy uint8

const (
	// RewritingNone skips the rewriting phase entirely.
	RewritingNone RewritingStrategy = iota
	// RewritingLP extracts the rewritten network under a weighted
	// linear-cost objective.
	RewritingLP
	// RewritingCompiling extracts the rewritten network minimizing the
	// compiled gate count.
	RewritingCompiling
	// RewritingCompilingMemusage behaves like RewritingCompiling under an
	// additional bound on live-cell usage.
	RewritingCompilingMemusage
	// RewritingGreedyEstimate accepts the first estimated improvement.
	RewritingGreedyEstimate
)

// ParseRewritingStrategy maps the CLI spelling to a RewritingStrategy.
func ParseRewritingStrategy(s string) (RewritingStrategy, error) {
	switch s {
	case "none":
		return RewritingNone, nil
	case "lp":
		return RewritingLP, nil
	case "compiling":
		return RewritingCompiling, nil
	case "compiling_memusage":
		return RewritingCompilingMemusage, nil
	case "greedy":
		return RewritingGreedyEstimate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// String returns the CLI spelling.
func (r RewritingStrategy) String() string {
	switch r {
	case RewritingNone:
		return "none"
	case RewritingLP:
		return "lp"
	case RewritingCompiling:
		return "compiling"
	case RewritingCompilingMemusage:
		return "compiling_memusage"
	case RewritingGreedyEstimate:
		return "greedy"
	default:
		return "unknown"
	}
}

// CompilationMode selects the exhaustiveness of instruction-candidate search.
type CompilationMode uint8

const (
	// ModeGreedy takes the first feasible candidate per gate.
	ModeGreedy CompilationMode = iota
	// ModeExhaustive searches all candidates per gate and keeps the best.
	ModeExhaustive
)

// ParseCompilationMode maps the CLI spelling to a CompilationMode.
func ParseCompilationMode(s string) (CompilationMode, error) {
	switch s {
	case "greedy":
		return ModeGreedy, nil
	case "exhaustive":
		return ModeExhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// String returns the CLI spelling.
func (m CompilationMode) String() string {
	switch m {
	case ModeGreedy:
		return "greedy"
	case ModeExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// CandidateSelectionMode selects whether every syntactically valid
// instruction candidate is considered or candidates are pruned using a
// network-structure heuristic.
type CandidateSelectionMode uint8

const (
	// SelectAll considers every valid candidate.
	SelectAll CandidateSelectionMode = iota
	// SelectNetworkGuided prunes candidates using network structure:
	// placements keeping operands resident are preferred, evicting live
	// cells is skipped.
	SelectNetworkGuided
)

// ParseCandidateSelection maps the CLI spelling to a CandidateSelectionMode.
// The historical spelling "plim_compiler" is accepted as an alias of
// "network_guided".
func ParseCandidateSelection(s string) (CandidateSelectionMode, error) {
	switch s {
	case "all":
		return SelectAll, nil
	case "network_guided", "plim_compiler":
		return SelectNetworkGuided, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSelection, s)
	}
}

// String returns the CLI spelling.
func (c CandidateSelectionMode) String() string {
	switch c {
	case SelectAll:
		return "all"
	case SelectNetworkGuided:
		return "network_guided"
	default:
		return "unknown"
	}
}

// Settings describes one compilation request. The validator handle is bound
// by the orchestrator per network revision and therefore lives on the
// Request, not here.
type Settings struct {
	// Rewriting selects the rewriting strategy of the service.
	Rewriting RewritingStrategy

	// RewritingSizeFactor bounds how aggressively rewriting may grow
	// intermediate representations (0 = the service's default).
	RewritingSizeFactor uint64

	// Mode selects the candidate-search exhaustiveness.
	Mode CompilationMode

	// CandidateSelection selects candidate pruning.
	CandidateSelection CandidateSelectionMode
}

// Validate reports whether every enum field is in range.
func (s Settings) Validate() error {
	if s.Rewriting > RewritingGreedyEstimate {
		return fmt.Errorf("%w: rewriting strategy %d", ErrSettings, s.Rewriting)
	}
	if s.Mode > ModeExhaustive {
		return fmt.Errorf("%w: compilation mode %d", ErrSettings, s.Mode)
	}
	if s.CandidateSelection > SelectNetworkGuided {
		return fmt.Errorf("%w: candidate selection %d", ErrSettings, s.CandidateSelection)
	}
	return nil
}
