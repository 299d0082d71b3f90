// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// Double provides a doubly linked list.
type Double[T any] struct {
	sentinel doubleItem[T] // sentinel to avoid having to handle head/tail corner cases.
	len      int
	opts     options[T]
	free     *doubleItem[T]
	nfree    int
}

type doubleItem[T any] struct {
	next *doubleItem[T]
	prev *doubleItem[T]
	T    T
}

// NewDouble returns a new, empty, doubly linked list.
func NewDouble[T any](opts ...Option[T]) *Double[T] {
	dl := &Double[T]{opts: newOptions(opts)}
	dl.Reset()
	return dl
}

// Reset removes all elements from the list.
func (dl *Double[T]) Reset() {
	if dl.sentinel.next != nil {
		for n := dl.sentinel.next; n != &dl.sentinel; {
			next := n.next
			dl.release(n)
			n = next
		}
	}
	dl.len = 0
	dl.sentinel.next = &dl.sentinel
	dl.sentinel.prev = &dl.sentinel
}

func (dl *Double[T]) Len() int {
	return dl.len
}

func (dl *Double[T]) Empty() bool {
	return dl.len == 0
}

func (dl *Double[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
			if !yield(n.T) {
				break
			}
		}
	}
}

func (dl *Double[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := dl.sentinel.prev; n != &dl.sentinel; n = n.prev {
			if !yield(n.T) {
				break
			}
		}
	}
}

func (dl *Double[T]) alloc(val T) *doubleItem[T] {
	if n := dl.free; n != nil {
		dl.free = n.next
		dl.nfree--
		n.next = nil
		n.T = val
		return n
	}
	return &doubleItem[T]{T: val}
}

func (dl *Double[T]) release(it *doubleItem[T]) {
	if dl.opts.release != nil {
		dl.opts.release(&it.T)
	}
	*it = doubleItem[T]{}
	if dl.nfree < dl.opts.freeList {
		it.next = dl.free
		dl.free = it
		dl.nfree++
	}
}

func (dl *Double[T]) insertAfterItem(val T, it *doubleItem[T]) *doubleItem[T] {
	n := dl.alloc(val)
	n.prev = it
	n.next = it.next
	n.prev.next = n
	n.next.prev = n
	dl.len++
	return n
}

func (dl *Double[T]) Head() T {
	if dl.len == 0 {
		return dl.sentinel.T
	}
	return dl.sentinel.next.T
}

// HeadRef returns a pointer to the storage of the first element in the
// list, or nil if the list is empty.
func (dl *Double[T]) HeadRef() *T {
	if dl.len == 0 {
		return nil
	}
	return &dl.sentinel.next.T
}

func (dl *Double[T]) Tail() T {
	if dl.len == 0 {
		return dl.sentinel.T
	}
	return dl.sentinel.prev.T
}

func (dl *Double[T]) Append(val T) DoubleID[T] {
	return dl.insertAfterItem(val, dl.sentinel.prev)
}

// AppendAll appends vals, in order, to the list.
func (dl *Double[T]) AppendAll(vals ...T) {
	for _, v := range vals {
		dl.Append(v)
	}
}

func (dl *Double[T]) Prepend(val T) DoubleID[T] {
	return dl.insertAfterItem(val, &dl.sentinel)
}

func (dl *Double[T]) pop(it *doubleItem[T]) (T, bool) {
	if dl.len == 0 {
		return dl.sentinel.T, false
	}
	val := it.T
	dl.removeItem(it)
	return val, true
}

// PopHead removes and returns the first element of the list. It returns
// false if the list is empty.
func (dl *Double[T]) PopHead() (T, bool) {
	return dl.pop(dl.sentinel.next)
}

// PopTail removes and returns the last element of the list. It returns
// false if the list is empty.
func (dl *Double[T]) PopTail() (T, bool) {
	return dl.pop(dl.sentinel.prev)
}

func (dl *Double[T]) unlink(it *doubleItem[T]) {
	dl.len--
	it.prev.next = it.next
	it.next.prev = it.prev
}

func (dl *Double[T]) removeItem(it *doubleItem[T]) {
	dl.unlink(it)
	dl.release(it)
}

// DoubleID identifies an element in a Double list. It is invalidated
// when the element is removed.
type DoubleID[T any] *doubleItem[T]

func (dl *Double[T]) RemoveItem(id DoubleID[T]) {
	dl.removeItem(id)
}

func (dl *Double[T]) Remove(val T, cmp func(a, b T) bool) {
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if cmp(n.T, val) {
			dl.removeItem(n)
			return
		}
	}
}

func (dl *Double[T]) RemoveReverse(val T, cmp func(a, b T) bool) {
	for n := dl.sentinel.prev; n != &dl.sentinel; n = n.prev {
		if cmp(n.T, val) {
			dl.removeItem(n)
			return
		}
	}
}

// RemoveAll removes every element for which cmp(element, val) returns
// true and returns the number of elements removed.
func (dl *Double[T]) RemoveAll(val T, cmp func(a, b T) bool) int {
	return dl.RemoveIf(func(v T) bool { return cmp(v, val) })
}

// RemoveIf removes every element for which pred returns true and returns
// the number of elements removed, see Single.RemoveIf.
func (dl *Double[T]) RemoveIf(pred func(T) bool) int {
	var removed, last *doubleItem[T]
	defer func() {
		for it := removed; it != nil; {
			next := it.next
			dl.release(it)
			it = next
		}
	}()
	n := 0
	for it := dl.sentinel.next; it != &dl.sentinel; {
		next := it.next
		if !pred(it.T) {
			it = next
			continue
		}
		dl.unlink(it)
		it.next, it.prev = nil, nil
		if last == nil {
			removed = it
		} else {
			last.next = it
		}
		last = it
		n++
		it = next
	}
	return n
}

// Check verifies the internal consistency of the list, returning
// an error that describes every inconsistency found.
func (dl *Double[T]) Check() error {
	errs := errors.M{}
	n, prev := 0, &dl.sentinel
	complete := true
	for it := dl.sentinel.next; it != &dl.sentinel; it = it.next {
		if it == nil {
			errs.Append(fmt.Errorf("list terminates after %v elements without returning to the sentinel", n))
			complete = false
			break
		}
		if n == dl.len {
			errs.Append(fmt.Errorf("list contains more than the recorded %v elements", dl.len))
			complete = false
			break
		}
		if it.prev != prev {
			errs.Append(fmt.Errorf("element %v does not refer back to its predecessor", n))
		}
		n++
		prev = it
	}
	if complete {
		if n != dl.len {
			errs.Append(fmt.Errorf("list contains %v elements, but the recorded length is %v", n, dl.len))
		}
		if dl.sentinel.prev != prev {
			errs.Append(fmt.Errorf("sentinel does not refer back to the last of %v elements", n))
		}
	}
	return errs.Err()
}
