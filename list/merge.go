// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import "golang.org/x/exp/constraints"

// Merge returns a list holding every element of a and b in ascending order.
// Both a and b must already be sorted in ascending order; Merge does not sort
// its inputs, it only interleaves them. When the current elements of a and b
// are equal, the one from a comes first.
//
// Merge takes ownership of a and b: their values are moved into the result
// and both are left empty. A nil list is treated as empty.
func Merge[T constraints.Ordered](a, b *List[T]) *List[T] {
	return MergeFunc(a, b, func(x, y T) bool { return x < y })
}

// MergeFunc is like Merge but orders elements with less. The element from a
// is taken unless less(b, a) holds.
func MergeFunc[T any](a, b *List[T], less func(x, y T) bool) *List[T] {
	if a == nil {
		a = new(List[T])
	}
	if b == nil {
		b = new(List[T])
	}
	c := &List[T]{nodes: make([]node[T], 0, a.length+b.length)}

	ra, rb := a.first, b.first
	for ra != none && rb != none {
		na, nb := a.node(ra), b.node(rb)
		if less(nb.value, na.value) {
			c.Append(nb.value)
			rb = nb.next
		} else {
			c.Append(na.value)
			ra = na.next
		}
	}
	for ; ra != none; ra = a.node(ra).next {
		c.Append(a.node(ra).value)
	}
	for ; rb != none; rb = b.node(rb).next {
		c.Append(b.node(rb).value)
	}

	a.Clear()
	b.Clear()
	return c
}

// IsSorted reports whether l is in ascending order.
func IsSorted[T constraints.Ordered](l *List[T]) bool {
	r := l.first
	if r == none {
		return true
	}
	for prev := l.node(r); prev.next != none; {
		n := l.node(prev.next)
		if n.value < prev.value {
			return false
		}
		prev = n
	}
	return true
}
