// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// Single provides a singly linked list.
type Single[T any] struct {
	sentinel singleItem[T] // sentinel to avoid having to handle head/tail corner cases.
	tail     *singleItem[T]
	len      int
	opts     options[T]
	free     *singleItem[T]
	nfree    int
}

type singleItem[T any] struct {
	next *singleItem[T]
	T    T
}

// NewSingle returns a new, empty, singly linked list.
func NewSingle[T any](opts ...Option[T]) *Single[T] {
	dl := &Single[T]{opts: newOptions(opts)}
	dl.Reset()
	return dl
}

// Reset removes all elements from the list.
func (dl *Single[T]) Reset() {
	if dl.sentinel.next != nil {
		for n := dl.sentinel.next; n != &dl.sentinel; {
			next := n.next
			dl.release(n)
			n = next
		}
	}
	dl.len = 0
	dl.sentinel.next = &dl.sentinel
	dl.tail = &dl.sentinel
}

func (dl *Single[T]) Len() int {
	return dl.len
}

func (dl *Single[T]) Empty() bool {
	return dl.len == 0
}

func (dl *Single[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
			if !yield(n.T) {
				break
			}
		}
	}
}

func (dl *Single[T]) alloc(val T) *singleItem[T] {
	if n := dl.free; n != nil {
		dl.free = n.next
		dl.nfree--
		n.next = nil
		n.T = val
		return n
	}
	return &singleItem[T]{T: val}
}

func (dl *Single[T]) release(it *singleItem[T]) {
	if dl.opts.release != nil {
		dl.opts.release(&it.T)
	}
	*it = singleItem[T]{}
	if dl.nfree < dl.opts.freeList {
		it.next = dl.free
		dl.free = it
		dl.nfree++
	}
}

func (dl *Single[T]) insertAfterItem(val T, it *singleItem[T]) *singleItem[T] {
	n := dl.alloc(val)
	n.next = it.next
	it.next = n
	dl.len++
	return n
}

// Head returns the first element in the list or the zero value
// if the list is empty.
func (dl *Single[T]) Head() T {
	if dl.len == 0 {
		return dl.sentinel.T
	}
	return dl.sentinel.next.T
}

// HeadRef returns a pointer to the storage of the first element in the
// list, or nil if the list is empty. The pointer remains valid until that
// element is removed.
func (dl *Single[T]) HeadRef() *T {
	if dl.len == 0 {
		return nil
	}
	return &dl.sentinel.next.T
}

func (dl *Single[T]) Append(val T) SingleID[T] {
	n := dl.insertAfterItem(val, dl.tail)
	dl.tail = n
	return n
}

// AppendAll appends vals, in order, to the list.
func (dl *Single[T]) AppendAll(vals ...T) {
	for _, v := range vals {
		dl.Append(v)
	}
}

func (dl *Single[T]) Prepend(val T) SingleID[T] {
	n := dl.insertAfterItem(val, &dl.sentinel)
	if dl.len == 1 {
		dl.tail = n
	}
	return n
}

// PopHead removes and returns the first element of the list. It returns
// false if the list is empty.
func (dl *Single[T]) PopHead() (T, bool) {
	if dl.len == 0 {
		return dl.sentinel.T, false
	}
	it := dl.sentinel.next
	val := it.T
	dl.removeItem(&dl.sentinel, it)
	return val, true
}

func (dl *Single[T]) unlink(prev, it *singleItem[T]) {
	dl.len--
	prev.next = it.next
	if dl.tail == it {
		dl.tail = prev
	}
}

func (dl *Single[T]) removeItem(prev, it *singleItem[T]) {
	dl.unlink(prev, it)
	dl.release(it)
}

func (dl *Single[T]) findPrev(it *singleItem[T]) *singleItem[T] {
	prev := &dl.sentinel
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if n == it {
			return prev
		}
		prev = n
	}
	return nil
}

// SingleID identifies an element in a Single list. It is invalidated
// when the element is removed, after which it may refer to a
// recycled node if WithFreeList is in use.
type SingleID[T any] *singleItem[T]

func (dl *Single[T]) RemoveItem(id SingleID[T]) {
	if prev := dl.findPrev(id); prev != nil {
		dl.removeItem(prev, id)
	}
}

// Remove removes the first element for which cmp(element, val)
// returns true.
func (dl *Single[T]) Remove(val T, cmp func(a, b T) bool) {
	prev := &dl.sentinel
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if cmp(n.T, val) {
			dl.removeItem(prev, n)
			return
		}
		prev = n
	}
}

// RemoveAll removes every element for which cmp(element, val) returns
// true and returns the number of elements removed.
func (dl *Single[T]) RemoveAll(val T, cmp func(a, b T) bool) int {
	return dl.RemoveIf(func(v T) bool { return cmp(v, val) })
}

// RemoveIf removes every element for which pred returns true and returns
// the number of elements removed. The remaining elements retain their
// relative order. pred is called exactly once for each element, in list
// order, and must not modify the list.
//
// Removed elements are unlinked as they are found but are not released
// until pred has been called for every element. This allows pred to refer
// to storage owned by the list, such as that returned by HeadRef, even
// when that element is itself removed.
func (dl *Single[T]) RemoveIf(pred func(T) bool) int {
	var removed, last *singleItem[T]
	defer func() {
		for it := removed; it != nil; {
			next := it.next
			dl.release(it)
			it = next
		}
	}()
	n := 0
	prev := &dl.sentinel
	for it := dl.sentinel.next; it != &dl.sentinel; {
		next := it.next
		if !pred(it.T) {
			prev, it = it, next
			continue
		}
		dl.unlink(prev, it)
		it.next = nil
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
func (dl *Single[T]) Check() error {
	errs := errors.M{}
	n, last := 0, &dl.sentinel
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
		n++
		last = it
	}
	if complete {
		if n != dl.len {
			errs.Append(fmt.Errorf("list contains %v elements, but the recorded length is %v", n, dl.len))
		}
		if last != dl.tail {
			errs.Append(fmt.Errorf("tail does not refer to the last of %v elements", n))
		}
	}
	return errs.Err()
}
