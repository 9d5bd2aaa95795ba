// SPDX-License-Identifier: MIT

package term

import "log"

const (
	// DefaultRows and DefaultCols size a screen whose output is not a terminal.
	DefaultRows = 24
	DefaultCols = 80
)

const (
	panicSize      = "term: WithSize: rows and cols must be >= 1"
	panicNilLogger = "term: WithLogger: logger must be non-nil"
)

// Option mutates screen options.
type Option func(*Options)

// Options holds the resolved screen configuration.
type Options struct {
	rows, cols int
	fixed      bool // size given explicitly
	logger     *log.Logger
}

// WithSize fixes the screen size. It overrides the terminal size, and
// SIGWINCH is then ignored. Panics unless rows, cols >= 1.
func WithSize(rows, cols int) Option {
	if rows < 1 || cols < 1 {
		panic(panicSize)
	}

	return func(o *Options) { o.rows, o.cols, o.fixed = rows, cols, true }
}

// WithLogger sets the logger for resize events and restore failures.
// By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

func gatherOptions(user ...Option) Options {
	o := Options{rows: DefaultRows, cols: DefaultCols}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
