// SPDX-License-Identifier: MIT

// Package numerr: functional configuration of a Bridge.
//
// Design goals:
//   - Same shape as the rest of lvnum: Option/Options, documented defaults,
//     WithX constructors that panic only on programmer error.
//   - A zero set of options yields the documented default: bridge ON, native
//     handler = abort handler writing to the standard logger.

package numerr

import "log"

// DefaultEnabled is the initial state of a new Bridge: errors are converted to
// returned values instead of terminating the program.
const DefaultEnabled = true

const (
	panicNilLogger  = "numerr: WithLogger: logger must be non-nil"
	panicNilHandler = "numerr: WithNativeHandler: handler must be non-nil"
)

// Option mutates bridge options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved bridge configuration.
type Options struct {
	enabled bool
	logger  *log.Logger
	native  Handler
}

// WithLogger routes the abort handler's report to logger.
// Panics on nil logger (programmer error).
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// WithNativeHandler sets the handler the bridge restores when switched OFF.
// Panics on nil handler (programmer error).
func WithNativeHandler(h Handler) Option {
	if h == nil {
		panic(panicNilHandler)
	}

	return func(o *Options) { o.native = h }
}

// WithDisabled creates the bridge in the OFF state.
func WithDisabled() Option {
	return func(o *Options) { o.enabled = false }
}

// gatherOptions applies opts over the defaults and fills derived fields.
func gatherOptions(opts ...Option) Options {
	o := Options{enabled: DefaultEnabled}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.native == nil {
		o.native = NewAbortHandler(o.logger)
	}

	return o
}
