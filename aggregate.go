package lazyutil

import (
	"cmp"
	"fmt"
	"strings"
)

// Count drains the concatenated sources and returns the number of elements
// pulled; 0 with no sources.
func Count[T any](srcs ...Source[T]) int {
	in := Concat(srcs...)
	n := 0
	for _, ok := in.Pull(); ok; _, ok = in.Pull() {
		n++
	}
	return n
}

// First returns the first element of the concatenated sources, pulling at
// most one element; ok is false when the sources are empty.
func First[T any](srcs ...Source[T]) (T, bool) {
	return Concat(srcs...).Pull()
}

// Last drains the concatenated sources and returns the final element before
// exhaustion; ok is false when the sources are empty.
func Last[T any](srcs ...Source[T]) (last T, ok bool) {
	in := Concat(srcs...)
	for v, more := in.Pull(); more; v, more = in.Pull() {
		last, ok = v, true
	}
	return last, ok
}

// MaxFunc drains the concatenated sources and returns the greatest element
// under less; ties keep the earliest-seen maximum. ok is false when the
// sources are empty.
func MaxFunc[T any](less func(a, b T) bool, srcs ...Source[T]) (T, bool) {
	in := Concat(srcs...)
	best, ok := in.Pull()
	if !ok {
		return best, false
	}
	for v, more := in.Pull(); more; v, more = in.Pull() {
		if less(best, v) {
			best = v
		}
	}
	return best, true
}

// Max is MaxFunc under the natural ordering of T.
func Max[T cmp.Ordered](srcs ...Source[T]) (T, bool) {
	return MaxFunc(cmp.Less[T], srcs...)
}

// MinFunc drains the concatenated sources and returns the least element
// under less; ties keep the earliest-seen minimum. ok is false when the
// sources are empty.
func MinFunc[T any](less func(a, b T) bool, srcs ...Source[T]) (T, bool) {
	in := Concat(srcs...)
	best, ok := in.Pull()
	if !ok {
		return best, false
	}
	for v, more := in.Pull(); more; v, more = in.Pull() {
		if less(v, best) {
			best = v
		}
	}
	return best, true
}

// Min is MinFunc under the natural ordering of T.
func Min[T cmp.Ordered](srcs ...Source[T]) (T, bool) {
	return MinFunc(cmp.Less[T], srcs...)
}

// Sum drains the concatenated sources and returns the arithmetic sum of the
// elements; 0 with no sources.
func Sum[T Real](srcs ...Source[T]) T {
	in := Concat(srcs...)
	var total T
	for v, ok := in.Pull(); ok; v, ok = in.Pull() {
		total += v
	}
	return total
}

// Prod drains the concatenated sources and returns the arithmetic product of
// the elements; 1 with no sources. Prod short-circuits: as soon as the
// running product reaches 0 it returns 0 without pulling anything further,
// so later sources, including side-effecting producers, are never touched.
func Prod[T Real](srcs ...Source[T]) T {
	in := Concat(srcs...)
	product := T(1)
	for {
		if product == 0 {
			return 0
		}
		v, ok := in.Pull()
		if !ok {
			return product
		}
		product *= v
	}
}

// Join drains the concatenated sources and concatenates the string form of
// every element with sep between them; "" with no sources, and a single
// element is returned without a separator.
func Join[T any](sep string, srcs ...Source[T]) string {
	in := Concat(srcs...)
	var b strings.Builder
	first := true
	for v, ok := in.Pull(); ok; v, ok = in.Pull() {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}
