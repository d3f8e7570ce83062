// Package preopt: options and defaults for the preoptimization driver.
package preopt

const (
	// DefaultMaxIterations caps the outer fixed-point loop.
	DefaultMaxIterations = 100000

	// DefaultCutSize is the leaf bound of cut-based resynthesis.
	DefaultCutSize = 4

	// MaxCutSize is the largest supported cut size (cut functions are kept
	// as 64-bit truth tables).
	MaxCutSize = 6

	// cutsPerNode bounds the cut set kept at every node during enumeration.
	cutsPerNode = 12

	// maxDivisors bounds the divisor window of resubstitution.
	maxDivisors = 64

	// simRounds is the number of 64-bit random pattern words used for
	// simulation signatures on networks too wide for exhaustive patterns.
	simRounds = 4
)

// Option configures a Preoptimize call. Use with Preoptimize(ntk, opts...).
type Option func(*options)

type options struct {
	maxIter int
	cutSize int
}

func defaultOptions() options {
	return options{maxIter: DefaultMaxIterations, cutSize: DefaultCutSize}
}

// WithMaxIterations overrides the outer-loop iteration cap. Values below 1
// are clamped to 1.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.maxIter = n
	}
}

// WithCutSize overrides the cut-size bound of the resynthesis round.
// Values are clamped to [2, MaxCutSize].
func WithCutSize(k int) Option {
	return func(o *options) {
		if k < 2 {
			k = 2
		}
		if k > MaxCutSize {
			k = MaxCutSize
		}
		o.cutSize = k
	}
}
