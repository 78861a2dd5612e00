// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package queue defines the configuration, errors and contracts shared by
// the priority queue implementations in cloudeng.io/pqueue/container/heap
// and cloudeng.io/pqueue/container/treap.
//
// None of the implementations are safe for concurrent use; callers
// that share a queue across goroutines must serialize access themselves.
package queue

import (
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned by any operation that requires a non-empty queue
// when it is called on an empty one.
var ErrEmpty = errors.New("empty queue")

// EmptyError records the operation that was attempted on an empty queue.
// errors.Is(err, ErrEmpty) is true for all instances of EmptyError.
type EmptyError struct {
	Op string
}

// Error implements error.
func (e *EmptyError) Error() string {
	return "cannot " + e.Op + ": " + ErrEmpty.Error()
}

// Is supports errors.Is.
func (e *EmptyError) Is(target error) bool {
	return target == ErrEmpty
}

// Empty returns an error indicating that op was attempted on an empty queue.
func Empty(op string) error {
	return &EmptyError{Op: op}
}

// Polarity determines whether the maximum or minimum priority is at the
// top of a queue.
type Polarity int

// Values for Polarity. The zero value is MaxFirst.
const (
	MaxFirst Polarity = iota
	MinFirst
)

// IsMax returns true for MaxFirst.
func (p Polarity) IsMax() bool { return p == MaxFirst }

// IsMin returns true for MinFirst.
func (p Polarity) IsMin() bool { return p == MinFirst }

func (p Polarity) String() string {
	switch p {
	case MaxFirst:
		return "max"
	case MinFirst:
		return "min"
	}
	return "unknown"
}

// ParsePolarity parses the string representation of a Polarity. It accepts
// "max", "max-first", "min" and "min-first" in any case.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "max-first", "maxfirst":
		return MaxFirst, nil
	case "min", "min-first", "minfirst":
		return MinFirst, nil
	}
	return MaxFirst, errors.New("unrecognised polarity: " + s)
}

// MarshalYAML implements yaml.Marshaler.
func (p Polarity) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Polarity) UnmarshalYAML(value *yaml.Node) error {
	np, err := ParsePolarity(value.Value)
	if err != nil {
		return errors.Annotate("line "+strconv.Itoa(value.Line), err)
	}
	*p = np
	return nil
}

// Interface is the contract implemented by priority queues whose top
// element is determined by a configurable Polarity.
type Interface[E any, P any] interface {
	Len() int
	Insert(element E, priority P)
	Peek() (E, error)
	Top() (E, error)
	Remove(element E) error
	Update(element E, priority P) error
	Clear()
}

// Sorted is the contract implemented by priority queues that additionally
// maintain their elements in sorted order.
type Sorted[E any, P any] interface {
	Interface[E, P]
	Contains(element E) bool
	Min() (E, error)
	Max() (E, error)
}
