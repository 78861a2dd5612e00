// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package treap provides a sorted priority queue implemented as a treap,
// that is, a binary search tree ordered by element value that is also a
// min-heap ordered by a separate, real valued, priority. The element with
// the lowest priority is at the root of the tree and hence at the top of
// the queue, whilst the smallest and largest elements are found at the
// ends of the left and right spines.
//
// The expected O(log n) depth of a treap relies on priorities being
// chosen independently at random. Priorities supplied by the caller are
// used as is, so monotonic or otherwise correlated priorities will
// degrade the tree into a list with O(n) operations.
//
// Nodes are stored in an arena (a slice) and refer to their parent and
// children by index. Parent links are used only for navigation.
package treap

import (
	"cmp"
	"log/slog"

	"cloudeng.io/pqueue/container/queue"
	"golang.org/x/exp/constraints"
)

const nilIndex = -1

type node[T any, P constraints.Float] struct {
	value    T
	priority P
	parent   int
	left     int
	right    int
}

// SortedPriorityQueue is a treap of values of type T with priorities of
// type P. Equal values are permitted. The value with the lowest priority
// is at the top of the queue. It is not safe for concurrent use.
type SortedPriorityQueue[T any, P constraints.Float] struct {
	compare func(a, b T) int
	nodes   []node[T, P]
	free    []int
	root    int
	size    int
	log     *slog.Logger
}

var _ queue.Sorted[string, float64] = (*SortedPriorityQueue[string, float64])(nil)

// New returns a SortedPriorityQueue for an ordered type.
func New[T constraints.Ordered, P constraints.Float](opts ...Option) *SortedPriorityQueue[T, P] {
	return NewFunc[T, P](cmp.Compare[T], opts...)
}

// NewFunc returns a SortedPriorityQueue whose values are ordered by
// compare, which must return a negative number when a < b, a positive
// number when a > b and zero when a and b are equal. Two values are
// considered to be the same element if compare returns zero for them.
func NewFunc[T any, P constraints.Float](compare func(a, b T) int, opts ...Option) *SortedPriorityQueue[T, P] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return &SortedPriorityQueue[T, P]{
		compare: compare,
		nodes:   make([]node[T, P], 0, o.sliceCap),
		root:    nilIndex,
		log:     o.logger,
	}
}

// Len returns the number of values in the queue.
func (t *SortedPriorityQueue[T, P]) Len() int {
	return t.size
}

// Clear removes all values from the queue.
func (t *SortedPriorityQueue[T, P]) Clear() {
	if t.log != nil {
		t.log.Debug("treap cleared", "len", t.size, "arena", len(t.nodes))
	}
	t.nodes = nil
	t.free = nil
	t.root = nilIndex
	t.size = 0
}

// Insert adds value with the specified priority.
func (t *SortedPriorityQueue[T, P]) Insert(value T, priority P) {
	n := t.alloc(value, priority)
	t.size++
	if t.root == nilIndex {
		t.root = n
		return
	}
	parent, cur, isLeft := nilIndex, t.root, false
	for cur != nilIndex {
		parent = cur
		isLeft = t.compare(value, t.nodes[cur].value) < 0
		if isLeft {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}
	t.nodes[n].parent = parent
	if isLeft {
		t.nodes[parent].left = n
	} else {
		t.nodes[parent].right = n
	}
	t.siftUp(n)
}

// Peek returns the value with the lowest priority without removing it.
func (t *SortedPriorityQueue[T, P]) Peek() (T, error) {
	if t.root == nilIndex {
		var v T
		return v, queue.Empty("peek")
	}
	return t.nodes[t.root].value, nil
}

// PeekPriority returns the lowest priority in the queue.
func (t *SortedPriorityQueue[T, P]) PeekPriority() (P, error) {
	if t.root == nilIndex {
		return 0, queue.Empty("peek")
	}
	return t.nodes[t.root].priority, nil
}

// Top removes and returns the value with the lowest priority.
func (t *SortedPriorityQueue[T, P]) Top() (T, error) {
	if t.root == nilIndex {
		var v T
		return v, queue.Empty("top")
	}
	v := t.nodes[t.root].value
	t.remove(t.root)
	return v, nil
}

// Min returns the smallest value in the queue.
func (t *SortedPriorityQueue[T, P]) Min() (T, error) {
	if t.root == nilIndex {
		var v T
		return v, queue.Empty("find min")
	}
	return t.nodes[t.leftmost(t.root)].value, nil
}

// Max returns the largest value in the queue.
func (t *SortedPriorityQueue[T, P]) Max() (T, error) {
	if t.root == nilIndex {
		var v T
		return v, queue.Empty("find max")
	}
	n := t.root
	for t.nodes[n].right != nilIndex {
		n = t.nodes[n].right
	}
	return t.nodes[n].value, nil
}

// Contains returns true if value is in the queue.
func (t *SortedPriorityQueue[T, P]) Contains(value T) bool {
	return t.search(value) != nilIndex
}

// Priority returns the priority of value, if present. If there are
// multiple equal values, the one closest to the root is used.
func (t *SortedPriorityQueue[T, P]) Priority(value T) (P, bool) {
	if n := t.search(value); n != nilIndex {
		return t.nodes[n].priority, true
	}
	return 0, false
}

// Remove removes value from the queue. It is not an error for value to
// be absent, but it is an error to call Remove on an empty queue.
func (t *SortedPriorityQueue[T, P]) Remove(value T) error {
	if t.root == nilIndex {
		return queue.Empty("remove")
	}
	if n := t.search(value); n != nilIndex {
		t.remove(n)
	}
	return nil
}

// Update changes the priority of value. It is not an error for value to
// be absent, but it is an error to call Update on an empty queue.
func (t *SortedPriorityQueue[T, P]) Update(value T, priority P) error {
	if t.root == nilIndex {
		return queue.Empty("update")
	}
	n := t.search(value)
	if n == nilIndex {
		return nil
	}
	t.nodes[n].priority = priority
	// Only one of these loops will rotate since the tree was valid
	// before the priority changed.
	t.siftUp(n)
	for {
		c := t.betterChild(n)
		if c == nilIndex || !(t.nodes[c].priority < priority) {
			break
		}
		t.rotateUp(c)
	}
	return nil
}

// Ascend calls fn for every value, and its priority, in ascending order
// of value until fn returns false. The queue must not be modified by fn.
func (t *SortedPriorityQueue[T, P]) Ascend(fn func(value T, priority P) bool) {
	if t.root == nilIndex {
		return
	}
	for n := t.leftmost(t.root); n != nilIndex; n = t.successor(n) {
		if !fn(t.nodes[n].value, t.nodes[n].priority) {
			return
		}
	}
}

func (t *SortedPriorityQueue[T, P]) search(value T) int {
	n := t.root
	for n != nilIndex {
		c := t.compare(value, t.nodes[n].value)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = t.nodes[n].left
		default:
			n = t.nodes[n].right
		}
	}
	return nilIndex
}

func (t *SortedPriorityQueue[T, P]) leftmost(n int) int {
	for t.nodes[n].left != nilIndex {
		n = t.nodes[n].left
	}
	return n
}

func (t *SortedPriorityQueue[T, P]) successor(n int) int {
	if r := t.nodes[n].right; r != nilIndex {
		return t.leftmost(r)
	}
	p := t.nodes[n].parent
	for p != nilIndex && t.nodes[p].right == n {
		n, p = p, t.nodes[p].parent
	}
	return p
}

// siftUp rotates n towards the root for as long as its priority is
// strictly lower than that of its parent.
func (t *SortedPriorityQueue[T, P]) siftUp(n int) {
	for {
		p := t.nodes[n].parent
		if p == nilIndex || !(t.nodes[n].priority < t.nodes[p].priority) {
			return
		}
		t.rotateUp(n)
	}
}

// betterChild returns the child of n with the lower priority, preferring
// the right child on a tie, or nilIndex if n is a leaf.
func (t *SortedPriorityQueue[T, P]) betterChild(n int) int {
	l, r := t.nodes[n].left, t.nodes[n].right
	if l != nilIndex && (r == nilIndex || t.nodes[l].priority < t.nodes[r].priority) {
		return l
	}
	return r
}

// remove rotates n down to a leaf and then detaches and frees it.
func (t *SortedPriorityQueue[T, P]) remove(n int) {
	for c := t.betterChild(n); c != nilIndex; c = t.betterChild(n) {
		t.rotateUp(c)
	}
	p := t.nodes[n].parent
	switch {
	case p == nilIndex:
		t.root = nilIndex
	case t.nodes[p].left == n:
		t.nodes[p].left = nilIndex
	default:
		t.nodes[p].right = nilIndex
	}
	t.release(n)
	t.size--
}

func (t *SortedPriorityQueue[T, P]) rotateUp(c int) {
	p := t.nodes[c].parent
	if p == nilIndex {
		panic("treap: cannot rotate the root")
	}
	if t.nodes[p].left == c {
		t.rotateRight(c)
		return
	}
	t.rotateLeft(c)
}

// rotateRight promotes c, the left child of its parent, to its parent's
// position. c's right subtree becomes the left subtree of its former
// parent.
//
//	    p          c
//	   / \        / \
//	  c   z  =>  x   p
//	 / \            / \
//	x   y          y   z
func (t *SortedPriorityQueue[T, P]) rotateRight(c int) {
	p := t.nodes[c].parent
	if p == nilIndex || t.nodes[p].left != c {
		panic("treap: right rotation requires a left child")
	}
	g := t.nodes[p].parent
	inner := t.nodes[c].right
	t.nodes[p].left = inner
	if inner != nilIndex {
		t.nodes[inner].parent = p
	}
	t.nodes[c].right = p
	t.nodes[p].parent = c
	t.replaceChild(g, p, c)
}

// rotateLeft is the mirror image of rotateRight.
func (t *SortedPriorityQueue[T, P]) rotateLeft(c int) {
	p := t.nodes[c].parent
	if p == nilIndex || t.nodes[p].right != c {
		panic("treap: left rotation requires a right child")
	}
	g := t.nodes[p].parent
	inner := t.nodes[c].left
	t.nodes[p].right = inner
	if inner != nilIndex {
		t.nodes[inner].parent = p
	}
	t.nodes[c].left = p
	t.nodes[p].parent = c
	t.replaceChild(g, p, c)
}

// replaceChild makes n the child of g in place of old, or the root
// if g is nilIndex.
func (t *SortedPriorityQueue[T, P]) replaceChild(g, old, n int) {
	t.nodes[n].parent = g
	switch {
	case g == nilIndex:
		t.root = n
	case t.nodes[g].left == old:
		t.nodes[g].left = n
	default:
		t.nodes[g].right = n
	}
}

func (t *SortedPriorityQueue[T, P]) alloc(value T, priority P) int {
	nd := node[T, P]{
		value:    value,
		priority: priority,
		parent:   nilIndex,
		left:     nilIndex,
		right:    nilIndex,
	}
	if l := len(t.free); l > 0 {
		n := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[n] = nd
		return n
	}
	t.nodes = append(t.nodes, nd)
	return len(t.nodes) - 1
}

func (t *SortedPriorityQueue[T, P]) release(n int) {
	t.nodes[n] = node[T, P]{parent: nilIndex, left: nilIndex, right: nilIndex}
	t.free = append(t.free, n)
}
