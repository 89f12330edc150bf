// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

import "github.com/pkg/errors"

// ErrTableFull is returned when the node arena cannot grow any further to
// satisfy a request, matching the teacher's errMemory sentinel in
// kernel.go (spec.md §7, error kind 2: resource exhaustion).
var ErrTableFull = errors.New("ibdd: unable to grow node table")

// makenode implements the Unique Table's find_or_create operation
// (spec.md §4.4). If low == high the node would be redundant (invariant
// 1) and low is returned directly with no allocation. Otherwise the
// unique table is consulted; on a miss a new node is allocated from the
// free list (triggering a collection, and if needed a resize, when the
// free list is empty) and its child edges are given their owning refcount
// increment, per spec.md §3's "an Edge OWNS a reference to its target
// node" applied to the low/high fields of a node, not only to
// externally-held Edges.
func (e *Engine) makenode(variable uint16, low, high rawedge) (rawedge, error) {
	if low == high {
		return low, nil
	}
	if idx, ok := e.uniqueFind(variable, low, high); ok {
		return mkraw(idx, false), nil
	}
	if e.freeHead == -1 {
		e.collect()
		if e.freeHead == -1 || e.belowMinFree() {
			if err := e.resize(); err != nil && e.freeHead == -1 {
				return 0, err
			}
		}
		if e.freeHead == -1 {
			return 0, ErrTableFull
		}
	}
	idx := e.freeHead
	e.freeHead = e.nodes[idx].next
	e.freeNum--
	e.nodes[idx] = node{variable: variable, low: low, high: high, refcount: 1}
	e.uniqueInsert(idx)
	e.produced++
	e.increfChild(low.index())
	e.increfChild(high.index())
	return mkraw(idx, false), nil
}

// increfChild increments the owning refcount an interior node holds on
// one of its children (spec.md §3: node.low/node.high "are owning Edges
// to the else- and then-children").
func (e *Engine) increfChild(idx int32) {
	e.nodes[idx].refcount = addref(e.nodes[idx].refcount)
}

// belowMinFree reports whether the fraction of free node slots left
// after a collection pass has dropped to or below Minfreenodes percent,
// the resize trigger the teacher's makenode checks in bkernel.go
// (`(b.freenum*100)/len(b.nodes) <= b.minfreenodes`) once a collection
// alone has not freed enough room to be worth collecting again soon.
func (e *Engine) belowMinFree() bool {
	return (e.freeNum*100)/len(e.nodes) <= e.minfreenodes
}

// resize grows the node arena, following the doubling-with-a-cap policy
// of the teacher's noderesize in hkernel.go.
func (e *Engine) resize() error {
	old := len(e.nodes)
	if e.maxnodesize > 0 && old >= e.maxnodesize {
		return errors.WithMessage(ErrTableFull, "at max node capacity")
	}
	next := old * 2
	if e.maxnodeincrease > 0 && next > old+e.maxnodeincrease {
		next = old + e.maxnodeincrease
	}
	if e.maxnodesize > 0 && next > e.maxnodesize {
		next = e.maxnodesize
	}
	if next <= old {
		return errors.WithMessage(ErrTableFull, "unable to grow node table")
	}
	grown := make([]node, next)
	copy(grown, e.nodes)
	for i := old; i < next; i++ {
		grown[i] = node{next: int32(i + 1), dead: true}
	}
	grown[next-1].next = -1
	e.nodes = grown
	e.freeHead = int32(old)
	e.freeNum += next - old

	e.unique.init(len(e.nodes))
	for i := 1; i < len(e.nodes); i++ {
		if !e.nodes[i].dead {
			e.uniqueInsert(int32(i))
		}
	}

	log().Debugf("ibdd: resized node table %d -> %d", old, next)
	return nil
}
