// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"fmt"
	"math"
	"strings"

	"cloudeng.io/pqueue/container/heap"
	"cloudeng.io/pqueue/container/queue"
)

// Find the k largest values using a min-first heap that never holds
// more than k values.
func ExamplePriorityQueue() {
	data := []int{5, 1, 9, 3, 7, 2, 8, 6, 4}
	k := 3
	h, err := heap.New(queue.Config{Polarity: queue.MinFirst, Arity: 3},
		heap.WithData(data[:k], data[:k]))
	if err != nil {
		panic(err)
	}
	for _, v := range data[k:] {
		if smallest, _ := h.Peek(); v <= smallest {
			continue
		}
		h.Insert(v, v)
		h.Top()
	}
	for h.Len() > 0 {
		v, _ := h.Top()
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 7 8 9
}

// Dijkstra's shortest path algorithm using Update to lower the
// tentative distance of a node.
func ExamplePriorityQueue_Update() {
	type edge struct {
		to   string
		cost int
	}
	graph := map[string][]edge{
		"A": {{"B", 4}, {"C", 1}},
		"B": {{"D", 1}},
		"C": {{"B", 2}, {"D", 5}},
		"D": {{"E", 3}},
	}
	h, err := heap.New[string, int](queue.Config{Polarity: queue.MinFirst, Arity: 4})
	if err != nil {
		panic(err)
	}
	dist := map[string]int{}
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		dist[n] = math.MaxInt
		if n == "A" {
			dist[n] = 0
		}
		h.Insert(n, dist[n])
	}
	done := map[string]bool{}
	for h.Len() > 0 {
		n, d, _ := h.TopWithPriority()
		done[n] = true
		fmt.Println(n, d)
		for _, e := range graph[n] {
			if nd := d + e.cost; !done[e.to] && nd < dist[e.to] {
				dist[e.to] = nd
				if err := h.Update(e.to, nd); err != nil {
					panic(err)
				}
			}
		}
	}
	// Output:
	// A 0
	// C 1
	// B 3
	// D 4
	// E 7
}

func sortSymbols(s string) string {
	h, _ := heap.New[rune, int](queue.Config{Polarity: queue.MinFirst, Arity: 2})
	for _, r := range s {
		h.Insert(r, int(r))
	}
	var out strings.Builder
	for h.Len() > 0 {
		r, _ := h.Top()
		out.WriteRune(r)
	}
	return out.String()
}

// Build a Huffman code using a binary min-first heap of symbol sets
// ordered by frequency.
func Example_huffman() {
	freq := map[string]int{}
	for _, r := range "aaaaaaaabbbbccd" {
		freq[string(r)]++
	}
	h, _ := heap.New[string, int](queue.Config{Polarity: queue.MinFirst, Arity: 2})
	for sym, f := range freq {
		h.Insert(sym, f)
	}
	children := map[string][2]string{}
	for h.Len() > 1 {
		l, lf, _ := h.TopWithPriority()
		r, rf, _ := h.TopWithPriority()
		parent := sortSymbols(l + r)
		children[parent] = [2]string{l, r}
		h.Insert(parent, lf+rf)
	}
	root, _ := h.Top()
	codes := map[string]string{}
	var walk func(sym, code string)
	walk = func(sym, code string) {
		c, ok := children[sym]
		if !ok {
			codes[sym] = code
			return
		}
		walk(c[0], code+"0")
		walk(c[1], code+"1")
	}
	walk(root, "")
	for _, r := range root {
		fmt.Printf("%c %v\n", r, codes[string(r)])
	}
	// Output:
	// a 1
	// b 01
	// c 001
	// d 000
}
