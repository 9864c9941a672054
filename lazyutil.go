package lazyutil

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/pink-mist/lazyutil/sequence"
	"github.com/pink-mist/lazyutil/source"
)

// Source is a normalized combinator argument; see the source package.
type Source[T any] = source.Source[T]

// Real is the constraint satisfied by the element types the numeric
// operations (NFind, NUniq, Sum, Prod) accept.
type Real interface {
	constraints.Integer | constraints.Float
}

// Value returns a source yielding v exactly once.
func Value[T any](v T) Source[T] { return source.Value(v) }

// Func returns a source backed by a producer function.
func Func[T any](f func() (T, bool)) Source[T] { return source.Func(f) }

// Seq returns a source backed by an existing sequence.
func Seq[T any](s *sequence.Sequence[T]) Source[T] { return source.Seq(s) }

// Iter returns a source backed by a Go iterator.
func Iter[T any](it iter.Seq[T]) Source[T] { return source.Iter(it) }

// Deferred returns a source backed by a deferred value; see
// source.Forceable.
func Deferred[T any](d source.Forceable[T]) Source[T] { return source.Deferred(d) }

// From coerces an untyped argument into a source, rejecting unsupported
// kinds with source.ErrUnsupportedSource.
func From[T any](arg any) (Source[T], error) { return source.From[T](arg) }
