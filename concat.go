package lazyutil

import (
	"slices"

	"github.com/pink-mist/lazyutil/sequence"
)

// Concat flattens an ordered list of sources into one sequence yielding, in
// order, every element of every source. Each source is materialized lazily,
// on first touch, and dropped only once it is exhausted, so evaluation stays
// strictly left-to-right and fully on-demand. With no sources the result is
// immediately exhausted; a single source that already is a sequence is
// returned unchanged, without a wrapper layer.
func Concat[T any](srcs ...Source[T]) *sequence.Sequence[T] {
	if len(srcs) == 0 {
		return sequence.Empty[T]()
	}
	if len(srcs) == 1 {
		if s, ok := srcs[0].Unwrap(); ok {
			return s
		}
	}

	pending := slices.Clone(srcs)
	var head *sequence.Sequence[T]
	return sequence.New(func() (T, bool) {
		for {
			if head == nil {
				if len(pending) == 0 {
					var zero T
					return zero, false
				}
				head = pending[0].Sequence()
				pending = pending[1:]
			}
			if v, ok := head.Pull(); ok {
				return v, true
			}
			head = nil
		}
	})
}
