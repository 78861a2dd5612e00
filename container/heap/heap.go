// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a d-ary, array backed, priority queue whose
// branching factor (arity) and polarity (max or min first) are configurable.
//
// The heap is stored as a complete k-ary tree in a slice: the root is at
// index 0, the parent of index i is (i-1)/k and the children of i are at
// k*i+1 through k*i+k. Larger arities make the tree shallower, which
// speeds up Insert at the cost of more comparisons per level in Top.
//
// Elements are located by value using a linear scan, so Remove and Update
// are O(n) whereas Insert and Top are O(log_k n). Duplicate elements are
// allowed; Remove and Update act on the first match in slice order.
package heap

import (
	"log/slog"

	"cloudeng.io/pqueue/container/queue"
	"golang.org/x/exp/constraints"
)

type entry[E comparable, P constraints.Integer] struct {
	element  E
	priority P
}

// PriorityQueue is a d-ary heap of elements with integer priorities.
// It is not safe for concurrent use.
type PriorityQueue[E comparable, P constraints.Integer] struct {
	entries  []entry[E, P]
	arity    int
	polarity queue.Polarity
	callback func(iv, jv E, i, j int)
	log      *slog.Logger
}

var _ queue.Interface[string, int] = (*PriorityQueue[string, int])(nil)

// New returns a new PriorityQueue configured by cfg. An error is returned
// if cfg is invalid. If initial data is supplied via WithData or WithPairs
// the heap is built in O(n) rather than by repeated insertion.
func New[E comparable, P constraints.Integer](cfg queue.Config, opts ...Option[E, P]) (*PriorityQueue[E, P], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options[E, P]
	for _, fn := range opts {
		fn(&o)
	}
	h := &PriorityQueue[E, P]{
		arity:    cfg.Arity,
		polarity: cfg.Polarity,
		callback: o.callback,
		log:      o.logger,
	}
	if len(o.entries) > 0 {
		h.entries = make([]entry[E, P], len(o.entries), max(len(o.entries), o.sliceCap))
		copy(h.entries, o.entries)
		h.heapify()
		return h, nil
	}
	h.entries = make([]entry[E, P], 0, o.sliceCap)
	return h, nil
}

// Len returns the number of elements in the queue.
func (h *PriorityQueue[E, P]) Len() int {
	return len(h.entries)
}

// Arity returns the maximum number of children of each node.
func (h *PriorityQueue[E, P]) Arity() int {
	return h.arity
}

// Polarity returns the polarity that the queue was created with.
func (h *PriorityQueue[E, P]) Polarity() queue.Polarity {
	return h.polarity
}

// Insert adds element with the specified priority.
func (h *PriorityQueue[E, P]) Insert(element E, priority P) {
	h.entries = append(h.entries, entry[E, P]{element: element, priority: priority})
	h.up(len(h.entries) - 1)
}

// Peek returns the element at the top of the queue without removing it.
func (h *PriorityQueue[E, P]) Peek() (E, error) {
	if len(h.entries) == 0 {
		var e E
		return e, queue.Empty("peek")
	}
	return h.entries[0].element, nil
}

// PeekPriority returns the priority of the element at the top of the queue.
func (h *PriorityQueue[E, P]) PeekPriority() (P, error) {
	if len(h.entries) == 0 {
		return 0, queue.Empty("peek")
	}
	return h.entries[0].priority, nil
}

// Top removes and returns the element at the top of the queue.
func (h *PriorityQueue[E, P]) Top() (E, error) {
	e, _, err := h.TopWithPriority()
	return e, err
}

// TopWithPriority is like Top but also returns the removed element's
// priority.
func (h *PriorityQueue[E, P]) TopWithPriority() (E, P, error) {
	if len(h.entries) == 0 {
		var e E
		return e, 0, queue.Empty("top")
	}
	n := len(h.entries) - 1
	h.swap(0, n)
	h.down(0, n)
	top := h.pop()
	return top.element, top.priority, nil
}

// Remove removes the first occurrence of element from the queue. It is
// not an error for element to be absent, but it is an error to call
// Remove on an empty queue.
func (h *PriorityQueue[E, P]) Remove(element E) error {
	if len(h.entries) == 0 {
		return queue.Empty("remove")
	}
	i := h.index(element)
	if i < 0 {
		return nil
	}
	n := len(h.entries) - 1
	if i != n {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	h.pop()
	return nil
}

// Update changes the priority of the first occurrence of element. It is
// not an error for element to be absent, but it is an error to call
// Update on an empty queue. The heap must be valid prior to the call.
func (h *PriorityQueue[E, P]) Update(element E, priority P) error {
	if len(h.entries) == 0 {
		return queue.Empty("update")
	}
	i := h.index(element)
	if i < 0 {
		return nil
	}
	prev := h.entries[i].priority
	if prev == priority {
		return nil
	}
	h.entries[i].priority = priority
	if h.onTop(priority, prev) {
		h.up(i)
		return nil
	}
	h.down(i, len(h.entries))
	return nil
}

// Contains returns true if element is in the queue.
func (h *PriorityQueue[E, P]) Contains(element E) bool {
	return h.index(element) >= 0
}

// Priority returns the priority of the first occurrence of element.
func (h *PriorityQueue[E, P]) Priority(element E) (P, bool) {
	if i := h.index(element); i >= 0 {
		return h.entries[i].priority, true
	}
	return 0, false
}

// Clear removes all elements from the queue.
func (h *PriorityQueue[E, P]) Clear() {
	if h.log != nil {
		h.log.Debug("heap cleared", "len", len(h.entries))
	}
	h.entries = nil
}

func (h *PriorityQueue[E, P]) index(element E) int {
	for i := range h.entries {
		if h.entries[i].element == element {
			return i
		}
	}
	return -1
}

// onTop returns true if a belongs strictly above b.
func (h *PriorityQueue[E, P]) onTop(a, b P) bool {
	if a == b {
		return false
	}
	return (a > b) == h.polarity.IsMax()
}

func (h *PriorityQueue[E, P]) parent(i int) int {
	return (i - (((i - 1) % h.arity) + 1)) / h.arity
}

func (h *PriorityQueue[E, P]) heapify() {
	n := len(h.entries)
	if n < 2 {
		return
	}
	for i := h.parent(n - 1); i >= 0; i-- {
		h.down(i, n)
	}
	if h.log != nil {
		h.log.Debug("heap built", "len", n, "arity", h.arity, "polarity", h.polarity.String())
	}
}

func (h *PriorityQueue[E, P]) up(j int) bool {
	j0 := j
	for j > 0 {
		i := h.parent(j)
		if !h.onTop(h.entries[j].priority, h.entries[i].priority) {
			break
		}
		h.swap(i, j)
		j = i
	}
	return j < j0
}

// down pushes the entry at i0 towards the leaves of the first n entries
// and reports whether it moved.
func (h *PriorityQueue[E, P]) down(i0, n int) bool {
	i := i0
	for {
		// i has children iff arity*i+1 < n; tested by division so that
		// large arities cannot overflow.
		if n < 2 || i > (n-2)/h.arity {
			break
		}
		first := h.arity*i + 1
		j := i
		for c := first; c < n && c-first < h.arity; c++ {
			if h.onTop(h.entries[c].priority, h.entries[j].priority) {
				j = c
			}
		}
		if j == i {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

func (h *PriorityQueue[E, P]) swap(i, j int) {
	if i == j {
		return
	}
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	if h.callback != nil {
		h.callback(h.entries[i].element, h.entries[j].element, i, j)
	}
}

func (h *PriorityQueue[E, P]) pop() entry[E, P] {
	n := len(h.entries) - 1
	x := h.entries[n]
	h.entries[n] = entry[E, P]{}
	h.entries = h.entries[:n]
	return x
}
