package lazyutil_test

import (
	"fmt"

	"github.com/pink-mist/lazyutil"
	"github.com/pink-mist/lazyutil/sequence"
)

// Example demonstrates composing a lazy pipeline over an infinite producer.
func Example() {
	n := 0
	naturals := func() (int, bool) {
		n++
		return n, true
	}

	squares := lazyutil.Map(func(v int) int { return v * v }, lazyutil.Func(naturals))
	odds := lazyutil.Filter(func(v int) bool { return v%2 == 1 }, lazyutil.Seq(squares))

	fmt.Println(lazyutil.Take(4, lazyutil.Seq(odds)).Drain())

	// Output: [1 9 25 49]
}

// ExampleConcat shows flattening heterogeneous sources into one sequence.
func ExampleConcat() {
	pending := []string{"b", "c"}
	produce := func() (string, bool) {
		if len(pending) == 0 {
			return "", false
		}
		v := pending[0]
		pending = pending[1:]
		return v, true
	}

	s := lazyutil.Concat(
		lazyutil.Value("a"),
		lazyutil.Func(produce),
		lazyutil.Seq(sequence.Of("d", "e")),
	)
	fmt.Println(s.Drain())

	// Output: [a b c d e]
}

// ExampleProd demonstrates the zero short-circuit: sources after the zero
// are never evaluated.
func ExampleProd() {
	expensive := func() (int, bool) {
		fmt.Println("never reached")
		return 0, false
	}

	fmt.Println(lazyutil.Prod(
		lazyutil.Value(1), lazyutil.Value(2), lazyutil.Value(0),
		lazyutil.Func(expensive),
	))

	// Output: 0
}

// ExampleMerge merges individually sorted sources into one sorted sequence.
func ExampleMerge() {
	s := lazyutil.Merge(
		lazyutil.Seq(sequence.Of(1, 4, 7)),
		lazyutil.Seq(sequence.Of(2, 5, 8)),
		lazyutil.Seq(sequence.Of(3, 6, 9)),
	)
	for v := range s.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleJoin aggregates a sequence into a separated string.
func ExampleJoin() {
	fmt.Println(lazyutil.Join(" -> ",
		lazyutil.Value("read"), lazyutil.Value("eval"), lazyutil.Value("print")))

	// Output: read -> eval -> print
}
