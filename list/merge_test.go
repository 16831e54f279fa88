// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

func TestMerge(t *testing.T) {
	for _, test := range []struct {
		name string
		a, b []int
		want []int
	}{
		{"interleaved", []int{1, 3, 5, 7}, []int{2, 4, 6, 8}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"uneven", []int{11, 33, 44, 88, 89, 90, 100}, []int{1, 22, 30, 45}, []int{1, 11, 22, 30, 33, 44, 45, 88, 89, 90, 100}},
		{"duplicates", []int{2, 2}, []int{2}, []int{2, 2, 2}},
		{"both empty", nil, nil, nil},
		{"empty b", []int{1, 2, 3}, nil, []int{1, 2, 3}},
		{"empty a", nil, []int{4, 5}, []int{4, 5}},
		{"a before b", []int{1, 2}, []int{3, 4}, []int{1, 2, 3, 4}},
		{"b before a", []int{3, 4}, []int{1, 2}, []int{1, 2, 3, 4}},
		{"negative", []int{-5, 0, 5}, []int{-10, -5, 10}, []int{-10, -5, -5, 0, 5, 10}},
	} {
		t.Run(test.name, func(t *testing.T) {
			a, b := Of(test.a...), Of(test.b...)
			c := Merge(a, b)
			checkList(t, c, test.want)
			if c.Len() != len(test.a)+len(test.b) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(test.a)+len(test.b))
			}
			for i, want := range test.want {
				if got, ok := c.Get(i); !ok || got != want {
					t.Errorf("Get(%d) = %d, %t; want %d, true", i, got, ok, want)
				}
			}
			checkList(t, a, nil)
			checkList(t, b, nil)
		})
	}
}

func TestMergeStrings(t *testing.T) {
	c := Merge(Of("apple", "cherry"), Of("banana", "date"))
	checkList(t, c, []string{"apple", "banana", "cherry", "date"})
}

func TestMergeNil(t *testing.T) {
	checkList(t, Merge(nil, Of(1, 2)), []int{1, 2})
	checkList(t, Merge(Of(1, 2), nil), []int{1, 2})
	checkList(t, Merge[int](nil, nil), nil)
}

func TestMergeSelf(t *testing.T) {
	l := Of(1, 2)
	checkList(t, Merge(l, l), []int{1, 1, 2, 2})
	checkList(t, l, nil)
}

func TestMergeInputsReusable(t *testing.T) {
	a, b := Of(1), Of(2)
	Merge(a, b)
	a.Append(7)
	b.Prepend(8)
	checkList(t, a, []int{7})
	checkList(t, b, []int{8})
}

type keyed struct {
	key  int
	from string
}

func TestMergeFuncTieBreak(t *testing.T) {
	a := Of(keyed{1, "a"}, keyed{2, "a"}, keyed{2, "a"})
	b := Of(keyed{2, "b"}, keyed{3, "b"})
	c := MergeFunc(a, b, func(x, y keyed) bool { return x.key < y.key })
	want := []keyed{{1, "a"}, {2, "a"}, {2, "a"}, {2, "b"}, {3, "b"}}
	if diff := cmp.Diff(want, c.Values(), cmp.AllowUnexported(keyed{})); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestMergeFuncDescending(t *testing.T) {
	c := MergeFunc(Of(9, 5, 1), Of(8, 2), func(x, y int) bool { return x > y })
	checkList(t, c, []int{9, 8, 5, 2, 1})
}

func TestMergeUnsortedInput(t *testing.T) {
	// Not validated: the inputs are interleaved as they are.
	c := Merge(Of(5, 1), Of(3))
	checkList(t, c, []int{3, 5, 1})
	if IsSorted(c) {
		t.Error("IsSorted reported true for an unsorted merge result")
	}
}

func TestMergeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		as := make([]int, r.Intn(50))
		bs := make([]int, r.Intn(50))
		for i := range as {
			as[i] = r.Intn(20)
		}
		for i := range bs {
			bs[i] = r.Intn(20)
		}
		slices.Sort(as)
		slices.Sort(bs)

		want := append(append([]int(nil), as...), bs...)
		slices.Sort(want)

		c := Merge(Of(as...), Of(bs...))
		got := c.Values()
		if !slices.IsSorted(got) {
			t.Fatalf("Merge(%v, %v) = %v, not sorted", as, bs, got)
		}
		if !slices.Equal(got, want) {
			t.Fatalf("Merge(%v, %v) = %v, want %v", as, bs, got, want)
		}
		if c.Len() != len(as)+len(bs) {
			t.Fatalf("Len() = %d, want %d", c.Len(), len(as)+len(bs))
		}
	}
}

func TestIsSorted(t *testing.T) {
	for _, test := range []struct {
		in   []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2, 4}, false},
	} {
		if got := IsSorted(Of(test.in...)); got != test.want {
			t.Errorf("IsSorted(%v) = %t, want %t", test.in, got, test.want)
		}
	}
}
