// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package treap

import (
	"context"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

type options struct {
	sliceCap int
	logger   *slog.Logger
}

// Option represents the options that can be passed to New and NewFunc.
type Option func(*options)

// WithSliceCap sets the initial capacity of the node arena.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}

// WithLogger sets the logger used to record structural changes at
// slog.LevelDebug.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContextLogger is like WithLogger but uses the logger stored in ctx
// by cloudeng.io/logging/ctxlog.
func WithContextLogger(ctx context.Context) Option {
	return func(o *options) {
		o.logger = ctxlog.Logger(ctx)
	}
}
