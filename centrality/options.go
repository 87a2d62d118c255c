// SPDX-License-Identifier: MIT
// Package: dtpcentrality/centrality
//
// options.go — Driver's functional-options configuration, matching
// bfs.Option/dijkstra.Option's shape: an invalid Option records its
// complaint on an internal err field rather than panicking, and the
// accumulated error is surfaced once, when the Driver is next run.

package centrality

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied to
// NewDriver; it surfaces from Run/RunGeneratorBased rather than from
// NewDriver itself, since those are the calls that actually execute
// the configuration.
var ErrOptionViolation = errors.New("centrality: invalid option supplied")

// Option configures a Driver via functional arguments, the same shape
// as bfs.Option: a closure over an options struct, applied in order by
// NewDriver.
type Option func(*options)

type options struct {
	maxParallel int
	err         error
}

func defaultOptions() options {
	return options{maxParallel: defaultMaxParallel}
}

// WithMaxParallel bounds the number of concurrent Engine runs used when
// a Driver's outerPolicy is graph.Parallel. n must be positive; a
// non-positive n is recorded as ErrOptionViolation and surfaced the
// next time Run or RunGeneratorBased is called.
func WithMaxParallel(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxParallel must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.maxParallel = n
	}
}
