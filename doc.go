// Package lazyutil provides lazy sequences of values and the combinators and
// aggregators that operate on them. It is a Go take on the Lazy::Util
// interface: heterogeneous sources (literal values, producer functions,
// existing sequences, Go iterators, and deferred values) compose into
// pipelines that are evaluated one element at a time, on demand, with no
// buffering beyond what a single combinator requires.
//
// Combinators (Concat, Map, Expand, Filter, Take, Find, Until, Uniq, Sorted,
// Merge, and friends) return a new *sequence.Sequence lazily derived from
// their sources. Aggregators (Count, First, Last, Max, Min, Sum, Prod, Join)
// eagerly drain their sources to a single value. Sources may be infinite;
// combinators stay lazy over them, while aggregators that must reach
// end-of-sequence will not terminate on them.
//
// Basic usage:
//
//	n := 0
//	naturals := func() (int, bool) { n++; return n, true }
//
//	evens := lazyutil.Filter(func(v int) bool { return v%2 == 0 },
//	    lazyutil.Func(naturals))
//	fmt.Println(lazyutil.Take(3, lazyutil.Seq(evens)).Drain()) // [2 4 6]
//
//	total := lazyutil.Sum(lazyutil.Value(1), lazyutil.Iter(slices.Values([]int{2, 3})))
//	fmt.Println(total) // 6
//
// Every operation takes its sources as ...Source[T]; the typed constructors
// Value, Func, Seq, Iter and Deferred build sources without runtime
// inspection, and From coerces an untyped argument, rejecting unsupported
// kinds. Sequences and the pipelines built from them are not safe for
// concurrent use.
package lazyutil
