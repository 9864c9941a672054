package sequence

import "iter"

// Sequence is a lazily evaluated sequence of values of type T. Values are
// computed one at a time by an underlying producer function; end-of-sequence
// is reported as (zero value, false).
type Sequence[T any] struct {
	produce   func() (T, bool)
	exhausted bool
	pushback  []T
}

// New builds a Sequence around produce. The producer is invoked at most once
// per pull, and never again after it first reports end-of-sequence.
// New panics if produce is nil.
func New[T any](produce func() (T, bool)) *Sequence[T] {
	if produce == nil {
		panic("sequence: nil producer")
	}
	return &Sequence[T]{produce: produce}
}

// Empty returns a Sequence that is already exhausted.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{exhausted: true}
}

// Of returns a Sequence yielding the given values in order.
func Of[T any](vs ...T) *Sequence[T] {
	i := 0
	return New(func() (T, bool) {
		if i >= len(vs) {
			var zero T
			return zero, false
		}
		v := vs[i]
		i++
		return v, true
	})
}

// FromSeq adapts a Go iterator into a Sequence. The iterator is not started
// until the first pull, and its pull-stop function is released once it
// reports end-of-sequence.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	var next func() (T, bool)
	var stop func()
	return New(func() (T, bool) {
		if next == nil {
			next, stop = iter.Pull(seq)
		}
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	})
}

// Pull returns the next element of the sequence. Pushed-back values are
// returned first, most recently pushed first. Otherwise, if the sequence is
// exhausted, Pull reports end-of-sequence without touching the producer.
// Otherwise the producer is invoked once; a false from the producer marks
// the sequence exhausted permanently.
func (s *Sequence[T]) Pull() (T, bool) {
	if n := len(s.pushback); n > 0 {
		v := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return v, true
	}
	var zero T
	if s.exhausted {
		return zero, false
	}
	v, ok := s.produce()
	if !ok {
		s.exhausted = true
		s.produce = nil // let upstream closures be collected
		return zero, false
	}
	return v, true
}

// Pushback records v to be returned by the very next Pull. Pushback is a
// stack: with multiple pending values the most recently pushed is returned
// first. Pushed-back values are honored even on an exhausted sequence.
func (s *Sequence[T]) Pushback(v T) {
	s.pushback = append(s.pushback, v)
}

// Exhausted reports whether the sequence has no more elements. It probes by
// pulling once and pushing the value back if one came out, so the probe may
// advance the producer internally but leaves the caller-visible state of the
// sequence unchanged.
func (s *Sequence[T]) Exhausted() bool {
	v, ok := s.Pull()
	if ok {
		s.Pushback(v)
		return false
	}
	return true
}

// Drain pulls until end-of-sequence and returns every element in pull order.
// On an infinite sequence Drain does not terminate.
func (s *Sequence[T]) Drain() []T {
	var out []T
	for v, ok := s.Pull(); ok; v, ok = s.Pull() {
		out = append(out, v)
	}
	return out
}

// All returns a Go iterator over the remaining elements. Ranging over it
// consumes the sequence.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := s.Pull(); ok; v, ok = s.Pull() {
			if !yield(v) {
				return
			}
		}
	}
}
