package decompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snarlgraph/snarl"
)

// Sentinel errors for Engine execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("decompose: graph is nil")

	// ErrPrimitiveNil is returned if no decomposition primitive is set.
	ErrPrimitiveNil = errors.New("decompose: primitive is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("decompose: invalid option supplied")
)

// Option configures Engine behavior via functional arguments.
// Invalid options are recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a decomposition
// run.
type Options struct {
	// HintPaths names embedded paths whose outer ends become telomeres
	// for the primitive. Names absent from the graph are ignored.
	HintPaths []string

	// OnSnarl is called once per classified snarl, in emission order.
	OnSnarl func(s snarl.Snarl)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hint paths and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnSnarl: func(snarl.Snarl) {},
		err:     nil,
	}
}

// WithHintPath adds a named path whose ends anchor the decomposition.
// An empty name is invalid.
func WithHintPath(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty hint path name", ErrOptionViolation)
			return
		}
		o.HintPaths = append(o.HintPaths, name)
	}
}

// WithOnSnarl registers a callback to run as each snarl is classified.
func WithOnSnarl(fn func(s snarl.Snarl)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSnarl = fn
		}
	}
}
