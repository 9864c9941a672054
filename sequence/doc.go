// Package sequence implements a lazily evaluated pull sequence. A Sequence
// wraps a zero-argument producer function and returns its values one at a
// time, on demand; nothing is computed between pulls and nothing is buffered
// beyond values explicitly pushed back.
//
// A Sequence tracks exhaustion permanently: once the producer reports that it
// has no more values, the producer is never invoked again and every later
// pull reports end-of-sequence. End-of-sequence is encoded as the comma-ok
// pair (zero value, false), so it can never collide with a legal element.
//
// Pushback re-injects values ahead of the producer. It is a stack: the most
// recently pushed value is returned by the very next pull. Pushed-back values
// are always honored, even after the producer has been exhausted.
//
// Basic usage:
//
//	// A producer counting down from 3.
//	n := 3
//	s := sequence.New(func() (int, bool) {
//	    if n == 0 {
//	        return 0, false
//	    }
//	    n--
//	    return n + 1, true
//	})
//
//	for v, ok := s.Pull(); ok; v, ok = s.Pull() {
//	    fmt.Println(v) // 3, 2, 1
//	}
//
//	// Peek at the next value without consuming it.
//	if v, ok := s.Pull(); ok {
//	    s.Pushback(v)
//	}
//
// A Sequence is not safe for concurrent use: Pull mutates the exhaustion
// flag and the pushback stack, so each instance requires exclusive access.
package sequence
