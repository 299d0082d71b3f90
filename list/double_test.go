// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list_test

import (
	"slices"
	"testing"

	"cloudeng.io/container/list"
)

func forward[T any](dl *list.Double[T]) []T {
	var res []T
	for g := range dl.Forward() {
		res = append(res, g)
	}
	return res
}

func reverse[T any](dl *list.Double[T]) []T {
	var res []T
	for g := range dl.Reverse() {
		res = append(res, g)
	}
	return res
}

func testDL[T comparable](t *testing.T, dl *list.Double[T], fwd []T) {
	t.Helper()
	if got, want := forward(dl), fwd; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl.Len(), len(fwd); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(fwd) > 0 {
		if got, want := dl.Head(), fwd[0]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := dl.Tail(), fwd[len(fwd)-1]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	rev := slices.Clone(fwd)
	slices.Reverse(rev)
	if got, want := reverse(dl), rev; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := dl.Check(); err != nil {
		t.Errorf("inconsistent list: %v", err)
	}
}

func TestDL(t *testing.T) {
	dl := list.NewDouble[int]()
	testDL(t, dl, []int{})
	if got, want := dl.Head(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl.Tail(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	dl.Append(1)

	testDL(t, dl, []int{1})
	dl.Append(2)
	testDL(t, dl, []int{1, 2})
	dl.Append(3)
	testDL(t, dl, []int{1, 2, 3})
	i4 := dl.Append(4)
	dl.Append(50)
	dl.Append(6)
	testDL(t, dl, []int{1, 2, 3, 4, 50, 6})

	cmp := func(a, b int) bool {
		return a == b
	}
	dl.Remove(1, cmp)
	testDL(t, dl, []int{2, 3, 4, 50, 6})
	dl.RemoveReverse(6, cmp)
	testDL(t, dl, []int{2, 3, 4, 50})
	dl.Remove(3, cmp)
	testDL(t, dl, []int{2, 4, 50})
	dl.Remove(100, cmp)
	dl.RemoveReverse(100, cmp)
	testDL(t, dl, []int{2, 4, 50})
	dl.RemoveItem(i4)
	testDL(t, dl, []int{2, 50})
	i0 := dl.Prepend(34)
	testDL(t, dl, []int{34, 2, 50})
	dl.RemoveItem(i0)
	testDL(t, dl, []int{2, 50})
	dl.Reset()
	dl.Prepend(1)
	dl.Prepend(3)
	testDL(t, dl, []int{3, 1})

	if v, ok := dl.PopTail(); !ok || v != 1 {
		t.Errorf("got %v, %v, want 1, true", v, ok)
	}
	if v, ok := dl.PopHead(); !ok || v != 3 {
		t.Errorf("got %v, %v, want 3, true", v, ok)
	}
	if _, ok := dl.PopHead(); ok {
		t.Errorf("expected PopHead to fail on an empty list")
	}
	testDL(t, dl, []int{})
}

func TestDLRemoveIf(t *testing.T) {
	for _, variant := range optionVariants {
		for i, tc := range removeIfTests {
			dl := list.NewDouble(variant.opts...)
			dl.AppendAll(tc.input...)
			cp := &countingPredicate[int]{fn: lessThan3}
			if got, want := dl.RemoveIf(cp.pred), tc.removed; got != want {
				t.Errorf("%v: %v: got %v, want %v", variant.name, i, got, want)
			}
			if got, want := cp.visited, tc.input; !slices.Equal(got, want) {
				t.Errorf("%v: %v: got %v, want %v", variant.name, i, got, want)
			}
			testDL(t, dl, tc.output)
			dl.Append(7)
			dl.Prepend(8)
			testDL(t, dl, slices.Concat([]int{8}, tc.output, []int{7}))
		}
	}
}

func TestDLRemoveIfSelfReference(t *testing.T) {
	dl := list.NewDouble(list.WithRelease(func(p *predLWG526) {
		p.i = -32767
	}))
	for _, v := range []int{1, 2, 1, 3, 5, 8, 11} {
		dl.Append(predLWG526{v})
	}
	first := dl.HeadRef()
	if got, want := dl.RemoveAll(predLWG526{}, func(a, _ predLWG526) bool { return a.i == first.i }), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var got []int
	for v := range dl.Forward() {
		got = append(got, v.i)
	}
	if want := []int{2, 3, 5, 8, 11}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := dl.Check(); err != nil {
		t.Errorf("inconsistent list: %v", err)
	}
}
