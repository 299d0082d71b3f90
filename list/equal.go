// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides generic singly and doubly linked lists.
package list

import "iter"

// Sequence is implemented by Single and Double.
type Sequence[T any] interface {
	Len() int
	Forward() iter.Seq[T]
}

// Equal returns true if a and b contain the same elements in the same order.
func Equal[T comparable](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Forward())
	defer stop()
	for va := range a.Forward() {
		vb, ok := next()
		if !ok || va != vb {
			return false
		}
	}
	_, more := next()
	return !more
}
