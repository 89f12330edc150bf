// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// RawEdge is a read-only, exported view of an internal rawedge, letting
// external collaborator packages such as dot and trace inspect the
// shape of a diagram without reaching into unexported fields, the way
// the teacher library's stdio.go reaches directly into BDD.nodes because
// it lives in the same package. Nothing outside this package can
// construct one except through NodeFields.
type RawEdge struct {
	idx  int32
	comp bool
}

// Index returns the arena slot RawEdge refers to; 0 is always the
// shared leaf.
func (r RawEdge) Index() int32 { return r.idx }

// Compl reports whether RawEdge represents the negation of its target.
func (r RawEdge) Compl() bool { return r.comp }

func exposeEdge(r rawedge) RawEdge {
	return RawEdge{idx: r.index(), comp: r.compl()}
}

// NodeFields exposes the level and children of one arena slot, for
// diagram-rendering collaborators. Calling it with the leaf's index (0)
// returns level Varnum and both children equal to the leaf itself.
func (e *Engine) NodeFields(idx int32) (level uint16, low, high RawEdge) {
	n := &e.nodes[idx]
	return n.variable, exposeEdge(n.low), exposeEdge(n.high)
}

// IsComplement reports whether f represents the negation of its target
// node, i.e. whether its complement bit is set.
func (e *Engine) IsComplement(f Edge) bool {
	return rawedge(*f).compl()
}

// RefCount reports the current saturating reference count of the node f
// targets, for tests and diagnostics that need to observe the
// bookkeeping described in spec.md §4.2 directly.
func (e *Engine) RefCount(f Edge) int {
	e.enter()
	defer e.leave()
	return int(e.nodes[rawedge(*f).index()].refcount)
}

// Walk visits, exactly once each, the arena index of every interior node
// reachable from f, in no particular order. It is the exported
// counterpart of the mark/unmarkall traversal CountNodes uses
// internally (spec.md §6.2's traversal support for external tools).
func (e *Engine) Walk(f Edge, visit func(idx int32)) {
	e.enter()
	defer e.leave()
	e.walkRec(rawedge(*f).index(), visit)
	e.unmarkall()
}

func (e *Engine) walkRec(idx int32, visit func(idx int32)) {
	if idx == leafIndex {
		return
	}
	n := &e.nodes[idx]
	if n.mark {
		return
	}
	n.mark = true
	visit(idx)
	e.walkRec(n.low.index(), visit)
	e.walkRec(n.high.index(), visit)
}
