// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// node is an interior node of the shared BDD, or (at index 0) the single
// shared leaf. One allocation slot exists per distinct (variable, low,
// high) triple, per spec.md §3.
//
// Field next is dual-purpose, mirroring the free-list trick the teacher
// library plays with its low/high fields in hudd.go/hkernel.go: while the
// node is live and installed in the unique table, next chains it to the
// following node in the same hash bucket; while the node is dead (evicted
// by a collection pass) next chains it into the engine's free list
// instead. The two states are distinguished by the dead field, never by
// inspecting next in isolation.
type node struct {
	variable uint16  // variable's level in the order; Varnum (a sentinel past every real level) for the leaf, so it always sorts last (spec.md §3)
	low      rawedge // else-branch; may carry a complement bit
	high     rawedge // then-branch; never carries a complement bit (invariant 4)
	refcount uint16  // saturating reference count: owning Edges plus parent nodes
	mark     bool    // transient traversal flag; must be clear outside a traversal
	next     int32   // unique-table bucket chain, or free-list chain when dead
	dead     bool    // true when the slot has been reclaimed and awaits reuse
}

// addref increments a saturating refcount; once saturated it never moves,
// per spec.md §3/§4.2.
func addref(rc uint16) uint16 {
	if rc == _MAXREFCOUNT {
		return rc
	}
	return rc + 1
}

// delref decrements a saturating refcount; a saturated counter never
// decrements, and a counter already at zero stays at zero.
func delref(rc uint16) uint16 {
	if rc == _MAXREFCOUNT || rc == 0 {
		return rc
	}
	return rc - 1
}
