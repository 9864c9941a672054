package source

import (
	"errors"
	"fmt"
	"iter"

	"github.com/pink-mist/lazyutil/sequence"
)

// ErrUnsupportedSource is returned by From when an argument is none of the
// supported source kinds.
var ErrUnsupportedSource = errors.New("source: unsupported source kind")

// Forceable is the capability a deferred value must expose to be usable as a
// source. Force behaves like a producer: it returns the next value, or false
// once the deferred computation has nothing further to yield.
type Forceable[T any] interface {
	Force() (T, bool)
}

type kind int

const (
	kindEmpty kind = iota // the zero Source yields nothing
	kindValue
	kindFunc
	kindSeq
	kindIter
	kindDeferred
)

// Source is a tagged variant over the argument kinds accepted wherever a
// list of sources is expected. The zero Source is empty.
type Source[T any] struct {
	kind     kind
	value    T
	fn       func() (T, bool)
	seq      *sequence.Sequence[T]
	iterator iter.Seq[T]
	deferred Forceable[T]
}

// Value returns a source yielding v exactly once.
func Value[T any](v T) Source[T] {
	return Source[T]{kind: kindValue, value: v}
}

// Func returns a source backed by a producer function. Func panics if f is
// nil.
func Func[T any](f func() (T, bool)) Source[T] {
	if f == nil {
		panic("source: nil producer")
	}
	return Source[T]{kind: kindFunc, fn: f}
}

// Seq returns a source backed by an existing sequence. Seq panics if s is
// nil.
func Seq[T any](s *sequence.Sequence[T]) Source[T] {
	if s == nil {
		panic("source: nil sequence")
	}
	return Source[T]{kind: kindSeq, seq: s}
}

// Iter returns a source backed by a Go iterator. Iter panics if it is nil.
func Iter[T any](it iter.Seq[T]) Source[T] {
	if it == nil {
		panic("source: nil iterator")
	}
	return Source[T]{kind: kindIter, iterator: it}
}

// Deferred returns a source backed by a deferred value. Deferred panics if d
// is nil.
func Deferred[T any](d Forceable[T]) Source[T] {
	if d == nil {
		panic("source: nil deferred value")
	}
	return Source[T]{kind: kindDeferred, deferred: d}
}

// From coerces an untyped argument into a Source. It accepts, in this order
// of recognition: an existing *sequence.Sequence[T], a producer function, a
// Go iterator, a value with the Forceable capability, and finally a literal
// T. Anything else is rejected with an error wrapping ErrUnsupportedSource.
func From[T any](arg any) (Source[T], error) {
	switch v := arg.(type) {
	case *sequence.Sequence[T]:
		return Seq(v), nil
	case func() (T, bool):
		return Func(v), nil
	case iter.Seq[T]:
		return Iter(v), nil
	case func(func(T) bool):
		return Iter(iter.Seq[T](v)), nil
	case Forceable[T]:
		return Deferred(v), nil
	case T:
		return Value(v), nil
	default:
		return Source[T]{}, fmt.Errorf("%w: %T", ErrUnsupportedSource, arg)
	}
}

// Sequence materializes the source. Each call on a Value, Func, Iter or
// Deferred source builds a fresh one-shot sequence, so a materialization
// must be performed once and cached by whoever owns the source; a Seq
// source returns its underlying sequence unchanged.
func (s Source[T]) Sequence() *sequence.Sequence[T] {
	switch s.kind {
	case kindValue:
		return sequence.Of(s.value)
	case kindFunc:
		return sequence.New(s.fn)
	case kindSeq:
		return s.seq
	case kindIter:
		return sequence.FromSeq(s.iterator)
	case kindDeferred:
		return sequence.New(s.deferred.Force)
	default:
		return sequence.Empty[T]()
	}
}

// Unwrap returns the underlying sequence when the source already is one.
func (s Source[T]) Unwrap() (*sequence.Sequence[T], bool) {
	if s.kind == kindSeq {
		return s.seq, true
	}
	return nil, false
}
