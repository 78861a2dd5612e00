// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue_test

import (
	"fmt"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/pqueue/container/queue"
	"github.com/stretchr/testify/require"
)

func TestEmptyError(t *testing.T) {
	err := queue.Empty("top")
	if got, want := err.Error(), "cannot top: empty queue"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	require.ErrorIs(t, err, queue.ErrEmpty)
	wrapped := fmt.Errorf("draining: %w", err)
	require.ErrorIs(t, wrapped, queue.ErrEmpty)
	var ee *queue.EmptyError
	if !errors.As(wrapped, &ee) {
		t.Fatalf("%v is not an EmptyError", wrapped)
	}
	if got, want := ee.Op, "top"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if errors.Is(errors.New("empty queue"), queue.ErrEmpty) {
		t.Errorf("distinct errors should not match")
	}
}

func TestPolarity(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want queue.Polarity
	}{
		{"max", queue.MaxFirst},
		{"Max-First", queue.MaxFirst},
		{"maxfirst", queue.MaxFirst},
		{" min ", queue.MinFirst},
		{"MIN-FIRST", queue.MinFirst},
		{"minfirst", queue.MinFirst},
	} {
		got, err := queue.ParsePolarity(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
	_, err := queue.ParsePolarity("sideways")
	require.EqualError(t, err, "unrecognised polarity: sideways")

	if !queue.MaxFirst.IsMax() || queue.MaxFirst.IsMin() {
		t.Errorf("MaxFirst: wrong polarity")
	}
	if !queue.MinFirst.IsMin() || queue.MinFirst.IsMax() {
		t.Errorf("MinFirst: wrong polarity")
	}
	var zero queue.Polarity
	if got, want := zero, queue.MaxFirst; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		p    queue.Polarity
		want string
	}{
		{queue.MaxFirst, "max"},
		{queue.MinFirst, "min"},
		{queue.Polarity(5), "unknown"},
	} {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("got %v, want %v", got, tc.want)
		}
	}
}
