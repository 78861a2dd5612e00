// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"context"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
	"golang.org/x/exp/constraints"
)

type options[E comparable, P constraints.Integer] struct {
	sliceCap int
	entries  []entry[E, P]
	callback func(iv, jv E, i, j int)
	logger   *slog.Logger
}

// Option represents the options that can be passed to New.
type Option[E comparable, P constraints.Integer] func(*options[E, P])

// Pair is an element and its priority.
type Pair[E comparable, P constraints.Integer] struct {
	Element  E
	Priority P
}

// WithSliceCap sets the initial capacity of the slice used to hold
// elements and their priorities.
func WithSliceCap[E comparable, P constraints.Integer](n int) Option[E, P] {
	return func(o *options[E, P]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap, elems[i] has priority
// prios[i].
func WithData[E comparable, P constraints.Integer](elems []E, prios []P) Option[E, P] {
	return func(o *options[E, P]) {
		if len(elems) != len(prios) {
			panic("elems and prios must be the same length")
		}
		for i := range elems {
			o.entries = append(o.entries, entry[E, P]{element: elems[i], priority: prios[i]})
		}
	}
}

// WithPairs is like WithData but accepts element, priority pairs.
func WithPairs[E comparable, P constraints.Integer](pairs ...Pair[E, P]) Option[E, P] {
	return func(o *options[E, P]) {
		for _, p := range pairs {
			o.entries = append(o.entries, entry[E, P]{element: p.Element, priority: p.Priority})
		}
	}
}

// WithCallback provides a callback function that is called whenever two
// elements exchange locations in the heap, iv and jv are the elements now
// at indices i and j respectively. The callback is not called
// when an element is removed from the end of the heap, hence applications
// that need to track removal must do so explicitly.
func WithCallback[E comparable, P constraints.Integer](fn func(iv, jv E, i, j int)) Option[E, P] {
	return func(o *options[E, P]) {
		o.callback = fn
	}
}

// WithLogger sets the logger used to record structural changes, such as
// building or clearing the heap, at slog.LevelDebug.
func WithLogger[E comparable, P constraints.Integer](logger *slog.Logger) Option[E, P] {
	return func(o *options[E, P]) {
		o.logger = logger
	}
}

// WithContextLogger is like WithLogger but uses the logger stored in ctx
// by cloudeng.io/logging/ctxlog.
func WithContextLogger[E comparable, P constraints.Integer](ctx context.Context) Option[E, P] {
	return func(o *options[E, P]) {
		o.logger = ctxlog.Logger(ctx)
	}
}
