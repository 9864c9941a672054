// Package source normalizes the heterogeneous argument kinds accepted by the
// lazyutil combinators into a uniform form. A Source is a tagged variant over
// the supported kinds:
//
//   - a literal value, yielded exactly once (Value)
//   - a zero-argument producer function (Func)
//   - an existing sequence (Seq)
//   - a Go iterator (Iter)
//   - a deferred value recognized by the Forceable capability (Deferred)
//
// The typed constructors cover code that knows its argument kinds at compile
// time. From performs the runtime inspection for callers holding an untyped
// argument, and is the single place where an unsupported kind is rejected
// (with ErrUnsupportedSource); the rest of the library never inspects types.
//
// A Source materializes into a *sequence.Sequence at most once, on first
// touch by the concatenation that owns it.
//
// Basic usage:
//
//	n := 0
//	naturals := func() (int, bool) { n++; return n, true }
//
//	s := lazyutil.Take(5,
//	    source.Value(0),
//	    source.Func(naturals),
//	)
//	fmt.Println(s.Drain()) // [0 1 2 3 4]
package source
