package lazyutil

import (
	"github.com/pink-mist/lazyutil/sequence"
)

// Map returns a sequence applying f to each element of the concatenated
// sources. Nothing is pulled from the sources until the result is pulled.
func Map[T, U any](f func(T) U, srcs ...Source[T]) *sequence.Sequence[U] {
	in := Concat(srcs...)
	return sequence.New(func() (U, bool) {
		v, ok := in.Pull()
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	})
}

// Expand is the one-to-many form of Map: f may return any number of output
// values per input, and they are emitted one at a time before the next
// upstream element is pulled.
func Expand[T, U any](f func(T) []U, srcs ...Source[T]) *sequence.Sequence[U] {
	in := Concat(srcs...)
	var queue []U
	return sequence.New(func() (U, bool) {
		for {
			if len(queue) > 0 {
				v := queue[0]
				queue = queue[1:]
				return v, true
			}
			v, ok := in.Pull()
			if !ok {
				var zero U
				return zero, false
			}
			queue = f(v)
		}
	})
}

// Filter returns a sequence of the elements for which pred is true,
// discarding the rest.
func Filter[T any](pred func(T) bool, srcs ...Source[T]) *sequence.Sequence[T] {
	in := Concat(srcs...)
	return sequence.New(func() (T, bool) {
		for {
			v, ok := in.Pull()
			if !ok {
				var zero T
				return zero, false
			}
			if pred(v) {
				return v, true
			}
		}
	})
}

// Take returns a sequence of at most the first n elements of the
// concatenated sources. Once n elements have been yielded the sources are
// never pulled again; n <= 0 yields an immediately exhausted sequence.
func Take[T any](n int, srcs ...Source[T]) *sequence.Sequence[T] {
	in := Concat(srcs...)
	remaining := n
	return sequence.New(func() (T, bool) {
		if remaining <= 0 {
			var zero T
			return zero, false
		}
		remaining--
		return in.Pull()
	})
}

// Until returns each element of the concatenated sources up to and including
// the first one for which pred is true, then is permanently exhausted.
func Until[T any](pred func(T) bool, srcs ...Source[T]) *sequence.Sequence[T] {
	in := Concat(srcs...)
	done := false
	return sequence.New(func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		v, ok := in.Pull()
		if !ok {
			done = true
			return zero, false
		}
		if pred(v) {
			done = true
		}
		return v, true
	})
}

// Find returns each element up to and including the first one equal to
// target, then is permanently exhausted.
func Find[T comparable](target T, srcs ...Source[T]) *sequence.Sequence[T] {
	return Until(func(v T) bool { return v == target }, srcs...)
}

// FindFunc is Find under a caller-supplied equality; eq is called as
// eq(element, target).
func FindFunc[T any](target T, eq func(a, b T) bool, srcs ...Source[T]) *sequence.Sequence[T] {
	return Until(func(v T) bool { return eq(v, target) }, srcs...)
}

// NFind is Find under numeric equality: elements compare to target by
// float64 value rather than by ==.
func NFind[T Real](target T, srcs ...Source[T]) *sequence.Sequence[T] {
	return Until(func(v T) bool { return float64(v) == float64(target) }, srcs...)
}

// UniqFunc returns a sequence of the elements whose key has not been seen
// before, in first-seen order. The seen-set grows with the number of
// distinct keys, without bound on infinite or high-cardinality sources.
func UniqFunc[T any, K comparable](key func(T) K, srcs ...Source[T]) *sequence.Sequence[T] {
	in := Concat(srcs...)
	seen := make(map[K]struct{})
	return sequence.New(func() (T, bool) {
		for {
			v, ok := in.Pull()
			if !ok {
				var zero T
				return zero, false
			}
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			return v, true
		}
	})
}

// Uniq returns a sequence of the distinct elements under ==, in first-seen
// order.
func Uniq[T comparable](srcs ...Source[T]) *sequence.Sequence[T] {
	return UniqFunc(func(v T) T { return v }, srcs...)
}

// NUniq is Uniq keyed by numeric value: elements deduplicate by their
// float64 value rather than by ==.
func NUniq[T Real](srcs ...Source[T]) *sequence.Sequence[T] {
	return UniqFunc(func(v T) float64 { return float64(v) }, srcs...)
}
