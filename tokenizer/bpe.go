package tokenizer

import (
	"github.com/emirpasic/gods/v2/trees/binaryheap"
)

// bpeNode is one element of the doubly linked list the merger operates
// on: a single token id plus its neighbors. prev/next are list
// positions, not byte offsets, so a merge is a constant-time splice
// rather than a slice rewrite.
type bpeNode struct {
	id       int32
	prev     *bpeNode
	next     *bpeNode
	alive    bool
	position int32 // original left-to-right index, for leftmost tie-break
}

// pairCandidate is a potential merge queued in the heap: the rule that
// would fire if node and node.next are both still alive, still
// adjacent to each other, and still hold the ids the rule was looked
// up for at the time it is popped.
type pairCandidate struct {
	left     *bpeNode
	leftID   int32
	rightID  int32
	newID    int32
	priority int32
}

// lessCandidate orders the heap so Pop always returns the next merge to apply:
// lowest priority first (priority 0 is the earliest, highest-ranked
// merge rule, mirroring merges.json order), leftmost position breaking
// ties between equal-priority candidates.
func lessCandidate(a, b pairCandidate) int {
	if a.priority != b.priority {
		if a.priority < b.priority {
			return -1
		}
		return 1
	}
	if a.left.position != b.left.position {
		if a.left.position < b.left.position {
			return -1
		}
		return 1
	}
	return 0
}

// bytePairEncode runs the greedy BPE merge loop over the ids produced
// by expanding chunk's bytes through the alphabet and vocabulary. This
// is the Go restatement of the reference implementation's merge loop,
// reshaped from its repeated O(n) rescans into a linked-list plus
// min-heap formulation: identical merge order and identical leftmost
// tie-break, without rescanning the whole sequence after every merge.
func bytePairEncode(ids []int32, merges *mergeTable) []int32 {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) == 1 {
		return append([]int32(nil), ids...)
	}

	nodes := make([]*bpeNode, len(ids))
	for i, id := range ids {
		nodes[i] = &bpeNode{id: id, alive: true, position: int32(i)}
	}
	for i := range nodes {
		if i > 0 {
			nodes[i].prev = nodes[i-1]
		}
		if i+1 < len(nodes) {
			nodes[i].next = nodes[i+1]
		}
	}

	heap := binaryheap.NewWith[pairCandidate](lessCandidate)

	tryQueue := func(n *bpeNode) {
		if n == nil || n.next == nil || !n.alive || !n.next.alive {
			return
		}
		newID, priority, ok := merges.lookup(n.id, n.next.id)
		if !ok {
			return
		}
		heap.Push(pairCandidate{left: n, leftID: n.id, rightID: n.next.id, newID: newID, priority: priority})
	}

	for _, n := range nodes {
		tryQueue(n)
	}

	for {
		cand, ok := heap.Pop()
		if !ok {
			break
		}
		left := cand.left
		if !left.alive || left.id != cand.leftID || left.next == nil || !left.next.alive || left.next.id != cand.rightID {
			// Stale: one side was already consumed by an earlier merge,
			// the left node now holds a different id, or the adjacency
			// no longer holds. Skip; a fresh candidate
			// for the new adjacency (if any) was already queued when
			// that merge happened.
			continue
		}

		right := left.next
		left.id = cand.newID
		left.next = right.next
		if right.next != nil {
			right.next.prev = left
		}
		right.alive = false

		tryQueue(left.prev)
		tryQueue(left)
	}

	out := make([]int32, 0, len(ids))
	for n := nodes[0]; n != nil; n = n.next {
		if n.alive {
			out = append(out, n.id)
		}
	}
	return out
}
