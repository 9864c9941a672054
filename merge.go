package lazyutil

import (
	"cmp"

	"github.com/pink-mist/lazyutil/sequence"
)

// MergeFunc merges individually sorted sources into one globally sorted
// sequence under less, pulling each source only as its next element is
// needed. A tournament tree keeps the merge at O(log n) comparisons per
// element, so merging many sources stays cheap. If a source is not sorted
// under less the output order is unspecified.
func MergeFunc[T any](less func(a, b T) bool, srcs ...Source[T]) *sequence.Sequence[T] {
	if len(srcs) == 0 {
		return sequence.Empty[T]()
	}
	if len(srcs) == 1 {
		return Concat(srcs[0])
	}
	t := &mergeTree[T]{
		nodes: make([]mergeNode[T], len(srcs)*2),
		srcs:  srcs,
		less:  less,
	}
	return sequence.New(t.next)
}

// Merge is MergeFunc under the natural ordering of T.
func Merge[T cmp.Ordered](srcs ...Source[T]) *sequence.Sequence[T] {
	return MergeFunc(cmp.Less[T], srcs...)
}

// A mergeTree is a binary tournament tree laid out in an array such that
// nodes N and N+1 have parent N/2. The M leaves sit at positions M..2M-1,
// each holding the pending element of one source; internal nodes 1..M-1 hold
// the loser of the contest between their subtrees, and node 0 holds the
// overall winner. An exhausted leaf (ok == false) compares greater than
// every element, so it never wins until all leaves are exhausted.
type mergeTree[T any] struct {
	nodes       []mergeNode[T]
	srcs        []Source[T]
	less        func(a, b T) bool
	initialized bool
}

type mergeNode[T any] struct {
	index int              // losing leaf position; winning leaf position for node 0
	value T                // value copied from that leaf
	ok    bool             // false once the leaf's source is exhausted
	pull  func() (T, bool) // only populated for leaf nodes
}

func (t *mergeTree[T]) next() (T, bool) {
	if !t.initialized {
		t.initialize()
	} else {
		// The previous winner was consumed; advance its leaf and replay.
		t.moveNext(t.nodes[0].index)
		t.replayGames(t.nodes[0].index)
	}
	if !t.nodes[0].ok {
		var zero T
		return zero, false
	}
	return t.nodes[0].value, true
}

// initialize materializes the sources, loads the first element of each into
// its leaf, and plays the initial games so node 0 holds the winner. Sources
// are not touched before the first pull of the merged sequence.
func (t *mergeTree[T]) initialize() {
	m := len(t.srcs)
	for i, src := range t.srcs {
		leaf := &t.nodes[i+m]
		leaf.pull = src.Sequence().Pull
		t.moveNext(i + m)
	}
	t.srcs = nil
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
	t.nodes[0].ok = t.nodes[winner].ok
	t.initialized = true
}

func (t *mergeTree[T]) moveNext(index int) {
	n := &t.nodes[index]
	n.value, n.ok = n.pull()
}

// playGame finds the winner at position pos; for a non-leaf node the loser
// is recorded in place. pos must be >= 1 and < len(t.nodes).
func (t *mergeTree[T]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.nodeLess(nodes[left].value, nodes[left].ok, nodes[right].value, nodes[right].ok) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	nodes[pos].ok = nodes[loser].ok
	return winner
}

// replayGames re-considers all contests from pos, which just advanced, up to
// the root, and stores the new winner in node 0.
func (t *mergeTree[T]) replayGames(pos int) {
	nodes := t.nodes
	winningValue := nodes[pos].value
	winningOK := nodes[pos].ok
	for n := pos / 2; n != 0; n /= 2 {
		node := &nodes[n]
		if t.nodeLess(node.value, node.ok, winningValue, winningOK) {
			// Record pos as the loser here; the old loser is the new winner.
			node.index, pos = pos, node.index
			node.value, winningValue = winningValue, node.value
			node.ok, winningOK = winningOK, node.ok
		}
	}
	nodes[0].index = pos
	nodes[0].value = winningValue
	nodes[0].ok = winningOK
}

func (t *mergeTree[T]) nodeLess(aVal T, aOK bool, bVal T, bOK bool) bool {
	if !aOK {
		return false
	}
	if !bOK {
		return true
	}
	return t.less(aVal, bVal)
}
