package lazyutil

import (
	"cmp"

	"github.com/google/btree"

	"github.com/pink-mist/lazyutil/sequence"
)

// SortedFunc returns a sequence yielding every element of the concatenated
// sources in ascending order under less. The sources are drained in full on
// the first pull; the sort is stable, keeping duplicates in first-seen
// order. SortedFunc never terminates on infinite sources.
func SortedFunc[T any](less func(a, b T) bool, srcs ...Source[T]) *sequence.Sequence[T] {
	in := Concat(srcs...)

	type item struct {
		v T
		n int // arrival order, breaks ties to keep the sort stable
	}
	var tree *btree.BTreeG[item]

	return sequence.New(func() (T, bool) {
		if tree == nil {
			tree = btree.NewG(2, func(a, b item) bool {
				if less(a.v, b.v) {
					return true
				}
				if less(b.v, a.v) {
					return false
				}
				return a.n < b.n
			})
			n := 0
			for v, ok := in.Pull(); ok; v, ok = in.Pull() {
				tree.ReplaceOrInsert(item{v: v, n: n})
				n++
			}
		}
		least, ok := tree.DeleteMin()
		if !ok {
			var zero T
			return zero, false
		}
		return least.v, true
	})
}

// Sorted is SortedFunc under the natural ordering of T.
func Sorted[T cmp.Ordered](srcs ...Source[T]) *sequence.Sequence[T] {
	return SortedFunc(cmp.Less[T], srcs...)
}
