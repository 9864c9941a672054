// Package trace provides opt-in structured logging for sequence pipelines.
// Wrapping a sequence with Pulls logs every value pulled through it and the
// exhaustion transition at debug level, which makes it practical to see how
// far into a pipeline evaluation actually reached. The wrapper is
// behavior-transparent: the wrapped sequence yields exactly the same
// elements as the original.
//
// Basic usage:
//
//	log := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//
//	evens := lazyutil.Filter(func(v int) bool { return v%2 == 0 },
//	    lazyutil.Iter(slices.Values([]int{1, 2, 3, 4})))
//	fmt.Println(trace.Pulls(evens, log, "evens").Drain()) // [2 4]
package trace
