// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

type options[T any] struct {
	freeList int
	release  func(*T)
}

// Option represents the options that can be passed to NewSingle and
// NewDouble.
type Option[T any] func(*options[T])

// WithFreeList retains up to n removed nodes for reuse by subsequent
// insertions rather than allocating new ones.
func WithFreeList[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			n = 0
		}
		o.freeList = n
	}
}

// WithRelease provides a function that is called with a pointer to the
// storage of every element as it is removed from the list. The storage is
// zeroed once fn returns. Elements removed by RemoveIf are released only
// after the predicate has been called for every element.
func WithRelease[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) {
		o.release = fn
	}
}

func newOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
