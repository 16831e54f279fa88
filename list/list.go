// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list implements a singly linked list whose nodes live in a
// per-list arena, together with an ordered merge of two sorted lists.
//
// Nodes refer to their successor by arena index rather than by pointer, so a
// list is a single slice plus three words and the zero List is an empty list
// ready to use.
//
// A List is not safe for concurrent use.
package list

import (
	"fmt"
	"strings"
)

// ref is a 1-based index into List.nodes. The zero ref is absent.
type ref int

const none ref = 0

type node[T any] struct {
	value T
	next  ref
}

// List is a singly linked sequence of values.
type List[T any] struct {
	nodes  []node[T]
	first  ref
	last   ref
	length int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of returns a list holding values in order.
func Of[T any](values ...T) *List[T] {
	l := &List[T]{nodes: make([]node[T], 0, len(values))}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *List[T]) node(r ref) *node[T] {
	return &l.nodes[r-1]
}

// alloc stores v in a fresh node and returns its ref.
func (l *List[T]) alloc(v T, next ref) ref {
	l.nodes = append(l.nodes, node[T]{value: v, next: next})
	return ref(len(l.nodes))
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.length
}

// Append adds v as the last element of l.
func (l *List[T]) Append(v T) {
	r := l.alloc(v, none)
	if l.last == none {
		l.first = r
	} else {
		l.node(l.last).next = r
	}
	l.last = r
	l.length++
}

// Prepend adds v as the first element of l.
func (l *List[T]) Prepend(v T) {
	r := l.alloc(v, l.first)
	l.first = r
	if l.last == none {
		l.last = r
	}
	l.length++
}

// Get returns the value at position i, counting from zero at the first
// element. It reports false if i is negative or not less than l.Len().
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= l.length {
		return zero, false
	}
	r := l.first
	for ; i > 0 && r != none; i-- {
		r = l.node(r).next
	}
	if r == none {
		return zero, false
	}
	return l.node(r).value, true
}

// Front returns the first value of l, or false if l is empty.
func (l *List[T]) Front() (T, bool) {
	if l.first == none {
		var zero T
		return zero, false
	}
	return l.node(l.first).value, true
}

// Back returns the last value of l, or false if l is empty.
func (l *List[T]) Back() (T, bool) {
	if l.last == none {
		var zero T
		return zero, false
	}
	return l.node(l.last).value, true
}

// Values returns the elements of l in order, first to last.
func (l *List[T]) Values() []T {
	vs := make([]T, 0, l.length)
	for r := l.first; r != none; r = l.node(r).next {
		vs = append(vs, l.node(r).value)
	}
	return vs
}

// Clear removes every element from l.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

// String renders l as "v0 -> v1 -> ... -> nil".
func (l *List[T]) String() string {
	var b strings.Builder
	for r := l.first; r != none; r = l.node(r).next {
		fmt.Fprintf(&b, "%v -> ", l.node(r).value)
	}
	b.WriteString("nil")
	return b.String()
}
