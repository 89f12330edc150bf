// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// uniqueTable is a fixed-capacity, chained hash table mapping the triple
// (variable, low, high) to the single node that may exist for it,
// enforcing invariant 2 of spec.md §3 ("Uniqueness"). Each bucket is the
// head of a singly linked list of node-arena indices, threaded through
// node.next — the same intrusive-chain trick the teacher library's
// buddy.go/bkernel.go use for their own node table, generalized here to
// live in a table separate from the free list rather than sharing one
// array of "buddyNode" for both roles.
type uniqueTable struct {
	buckets []int32
}

func (u *uniqueTable) init(size int) {
	size = bddPrimeGTE(size)
	u.buckets = make([]int32, size)
	for i := range u.buckets {
		u.buckets[i] = -1
	}
}

func (u *uniqueTable) bucket(variable uint16, low, high rawedge) int {
	return hashTriple(int32(variable), int32(low), int32(high), len(u.buckets))
}

func (u *uniqueTable) clear() {
	for i := range u.buckets {
		u.buckets[i] = -1
	}
}

// uniqueFind scans the bucket chain for a node with the given triple. It
// returns the node's arena index and true on success.
func (e *Engine) uniqueFind(variable uint16, low, high rawedge) (int32, bool) {
	b := e.unique.bucket(variable, low, high)
	for n := e.unique.buckets[b]; n != -1; n = e.nodes[n].next {
		nd := &e.nodes[n]
		if nd.variable == variable && nd.low == low && nd.high == high {
			return n, true
		}
	}
	return -1, false
}

// uniqueInsert links node idx into its bucket's chain. The caller must have
// already populated e.nodes[idx]'s variable/low/high fields.
func (e *Engine) uniqueInsert(idx int32) {
	nd := &e.nodes[idx]
	b := e.unique.bucket(nd.variable, nd.low, nd.high)
	nd.next = e.unique.buckets[b]
	e.unique.buckets[b] = idx
}

// uniqueRemove unlinks node idx from its bucket's chain.
func (e *Engine) uniqueRemove(idx int32) {
	nd := &e.nodes[idx]
	b := e.unique.bucket(nd.variable, nd.low, nd.high)
	prev := int32(-1)
	for n := e.unique.buckets[b]; n != -1; n = e.nodes[n].next {
		if n == idx {
			if prev == -1 {
				e.unique.buckets[b] = e.nodes[n].next
			} else {
				e.nodes[prev].next = e.nodes[n].next
			}
			return
		}
		prev = n
	}
}
