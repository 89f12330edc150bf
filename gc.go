// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// gcStat records cumulative collection statistics, the way the teacher
// library's gcstat/gcpoint pair does in gc.go, adapted to the single
// Engine-owned instance this package uses instead of a package-global.
type gcStat struct {
	Runs      int // number of collection passes performed
	Freed     int // total node slots reclaimed across all passes
	Nodes     int // node count as of the most recent pass
	Freenodes int // free node count as of the most recent pass
}

// pushref protects a rawedge across a recursive call that has not yet
// installed it as a permanent child of some node, the way the teacher
// library's ITE/AppEx pass a "resstack" of in-flight results into gbc via
// markrec. Every push must be matched by a pop in the same frame, on
// every return path, through explicit popref calls.
func (e *Engine) pushref(r rawedge) {
	e.refstack = append(e.refstack, r)
}

func (e *Engine) popref() {
	e.refstack = e.refstack[:len(e.refstack)-1]
}

// protect walks the current refstack, marking every reachable node so
// that collect will not reclaim a node still under construction by an
// outer stack frame even though its refcount has not yet been
// incremented by a permanent owner.
func (e *Engine) protect() {
	for _, r := range e.refstack {
		e.markrec(r.index())
	}
}

func (e *Engine) markrec(idx int32) {
	if idx == leafIndex {
		return
	}
	n := &e.nodes[idx]
	if n.mark {
		return
	}
	n.mark = true
	e.markrec(n.low.index())
	e.markrec(n.high.index())
}

func (e *Engine) unmarkall() {
	for i := range e.nodes {
		e.nodes[i].mark = false
	}
}

// collect implements the reclamation pass of spec.md §5: it scans the
// unique table for nodes that are both refcount-zero and unprotected,
// removes them, and cascades the resulting ownership loss into their
// children exactly as freeing an owning Edge would, following the
// teacher library's gbc in gc.go for the overall shape of a
// mark-then-sweep pass triggered on allocation failure.
func (e *Engine) collect() {
	e.gcstat.Runs++
	before := e.freeNum

	e.protect()
	defer e.unmarkall()

	e.computed.clear()

	for i := int32(1); i < int32(len(e.nodes)); i++ {
		n := &e.nodes[i]
		if n.dead || n.mark || n.refcount != 0 {
			continue
		}
		e.freeNode(i)
	}

	e.gcstat.Freed += e.freeNum - before
	e.gcstat.Nodes = len(e.nodes)
	e.gcstat.Freenodes = e.freeNum

	log().Debugf("ibdd: collection pass %d freed %d nodes (%d now free of %d)",
		e.gcstat.Runs, e.freeNum-before, e.freeNum, len(e.nodes))
}

// freeNode removes a single dead node from the unique table, returns its
// slot to the free list, and cascades a decrement to its children —
// spec.md §3's "cascading decrements" clause. A node protected by mark is
// never freed even if its refcount reads zero, since mark means some
// in-flight computation still intends to reference it.
func (e *Engine) freeNode(idx int32) {
	n := &e.nodes[idx]
	if n.dead || n.mark {
		return
	}
	e.uniqueRemove(idx)
	low, high := n.low, n.high
	*n = node{dead: true, next: e.freeHead}
	e.freeHead = idx
	e.freeNum++

	e.decrefChild(low.index())
	e.decrefChild(high.index())
}

// decrefChild releases the owning reference an interior node held on one
// of its children. If that reference was the child's last, the child is
// freed in turn, cascading further.
func (e *Engine) decrefChild(idx int32) {
	if idx == leafIndex {
		return
	}
	n := &e.nodes[idx]
	if n.refcount == _MAXREFCOUNT {
		return
	}
	n.refcount--
	if n.refcount == 0 && !n.mark {
		e.freeNode(idx)
	}
}

// GCStats reports cumulative collection statistics for diagnostics
// (spec.md §6.4's stats surface, generalizing the teacher's Stats /
// PrintStat text report into a structured value).
func (e *Engine) GCStats() gcStat {
	return e.gcstat
}
