// Package compile: the service boundary.
package compile

import (
	"github.com/katalvlaran/memlogic/logic"
	"github.com/katalvlaran/memlogic/validate"
)

// NetworkSource streams a network gate by gate into a Visitor. A
// *logic.Network satisfies it; services never see a raw graph handle.
type NetworkSource interface {
	Stream(v logic.Visitor)
}

// Request is the full input of one service invocation.
type Request struct {
	// Settings is read-only for the duration of the call.
	Settings Settings

	// Source replays the network to be compiled.
	Source NetworkSource

	// Validator is bound to the exact network revision behind Source. The
	// service may call it zero or more times.
	Validator *validate.Validator

	// Sink, when non-nil, receives a replay of the service's rewritten
	// network (the rewrite entry point). Services ignore it otherwise.
	Sink logic.Visitor
}

// Service is one architecture-specific compilation backend. Implementations
// are synchronous and blocking: one call, one Statistics.
type Service interface {
	// Name returns the architecture name as spelled on the CLI.
	Name() string

	// Flavor returns the network flavor the service compiles.
	Flavor() logic.Flavor

	// Compile generates an instruction program for the streamed network and
	// reports statistics. The returned Program may be nil when the service
	// produces no text. A validation failure is reported through the
	// statistics, not through the error.
	Compile(req Request) (Statistics, *Program, error)
}
