// Package compile: the pipeline orchestrator.
package compile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/memlogic/logic"
	"github.com/katalvlaran/memlogic/preopt"
	"github.com/katalvlaran/memlogic/validate"
)

// Sentinel errors for orchestration.
var (
	// ErrNilNetwork indicates a nil network was passed to Compile/Rewrite.
	ErrNilNetwork = errors.New("compile: network is nil")

	// ErrNilService indicates a nil service was passed to Compile/Rewrite.
	ErrNilService = errors.New("compile: service is nil")
)

// Option configures one orchestrator call.
type Option func(*options)

type options struct {
	preoptimize bool
	preoptOpts  []preopt.Option
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		preoptimize: true,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithPreoptimization toggles the preoptimization step. It is on by
// default; callers that already preoptimized pass false to skip the
// redundant fixed-point run.
func WithPreoptimization(enabled bool) Option {
	return func(o *options) { o.preoptimize = enabled }
}

// WithPreoptOptions forwards options to the preoptimizer.
func WithPreoptOptions(opts ...preopt.Option) Option {
	return func(o *options) { o.preoptOpts = opts }
}

// WithLogger routes the orchestrator's progress markers to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Compile runs the pipeline on ntk: preoptimize, bind a validator to the
// resulting network revision, dispatch to svc, and return its statistics and
// program unchanged. The input network is not modified.
func Compile(ntk *logic.Network, s Settings, svc Service, opts ...Option) (Statistics, *Program, error) {
	stats, prog, _, err := run(ntk, s, svc, false, opts)
	return stats, prog, err
}

// Rewrite behaves like Compile and additionally collects the service's
// rewritten network, reconstructed through a Builder sink.
func Rewrite(ntk *logic.Network, s Settings, svc Service, opts ...Option) (Statistics, *Program, *logic.Network, error) {
	return run(ntk, s, svc, true, opts)
}

func run(ntk *logic.Network, s Settings, svc Service, wantNetwork bool, opts []Option) (Statistics, *Program, *logic.Network, error) {
	// 1. Guard the boundary.
	if ntk == nil {
		return Statistics{}, nil, nil, ErrNilNetwork
	}
	if svc == nil {
		return Statistics{}, nil, nil, ErrNilService
	}
	if err := s.Validate(); err != nil {
		return Statistics{}, nil, nil, err
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Preoptimize to a fixed point (unless the caller already did).
	cur := ntk
	if o.preoptimize {
		cur = preopt.Preoptimize(cur, o.preoptOpts...)
		o.logger.Info("preoptimize done", "arch", svc.Name(), "size", cur.Size())
	}

	// 3. Bind the validator to the revision about to be compiled. Binding
	//    earlier would hand the service a stale oracle.
	v := validate.New(cur)

	// 4. Dispatch. The service consumes the network as a stream and may
	//    call back into the validator.
	req := Request{Settings: s, Source: cur, Validator: v}
	var sink *logic.Builder
	if wantNetwork {
		sink = logic.NewBuilder(svc.Flavor())
		req.Sink = sink
	}
	stats, prog, err := svc.Compile(req)
	if err != nil {
		return Statistics{}, nil, nil, fmt.Errorf("compile: service %s: %w", svc.Name(), err)
	}
	o.logger.Info("done", "arch", svc.Name(), "instructions", stats.NumInstructions)

	// 5. Pass the results through unchanged.
	var out *logic.Network
	if sink != nil {
		out = sink.Network()
	}
	return stats, prog, out, nil
}
