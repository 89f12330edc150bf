// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// A rawedge is the internal, unrefcounted encoding of an Edge: a node
// arena index in the upper bits and a one-bit complement flag in the
// lowest bit (spec.md §3, "Edge"). Internal recursion (Ite, cofactor,
// standardization, quantification) is carried out entirely in terms of
// rawedge values, exactly as the teacher library carries out its own
// recursion in terms of plain node indices (see hudd.go/operations.go in
// the reference library) — we simply widen that convention by one bit to
// also carry the complement flag.
type rawedge int32

// mkraw builds the rawedge referring to node index idx with the given
// complement bit.
func mkraw(idx int32, compl bool) rawedge {
	r := rawedge(idx) << 1
	if compl {
		r |= 1
	}
	return r
}

func (r rawedge) index() int32 {
	return int32(r >> 1)
}

func (r rawedge) compl() bool {
	return r&1 != 0
}

// not toggles the complement bit only; it never touches a refcount, per
// spec.md §4.1.
func (r rawedge) not() rawedge {
	return r ^ 1
}

// withCompl returns r with its complement bit forced to c.
func (r rawedge) withCompl(c bool) rawedge {
	return mkraw(r.index(), c)
}

// rawOne and rawZero are the two constant rawedges: both reference the
// shared leaf, distinguished only by their complement bit (spec.md §3,
// invariant 5).
const (
	rawOne  rawedge = rawedge(leafIndex << 1)
	rawZero rawedge = rawedge(leafIndex<<1) | 1
)

func (r rawedge) isLeaf() bool {
	return r.index() == leafIndex
}

func (r rawedge) isOne() bool {
	return r.isLeaf() && !r.compl()
}

func (r rawedge) isZero() bool {
	return r.isLeaf() && r.compl()
}

// Edge is an owning reference to a node in some Engine's arena plus a
// complement bit. It is the atomic unit of interaction with the package:
// every exported Engine method that returns a function returns an Edge.
//
// Like the teacher library's Node type (a bare *int pointing at a node
// index), Edge carries no methods of its own: its underlying type is a
// pointer, so all operations on it are Engine methods (Not, And, Ite,
// Cofactor, and so on) taking an Edge argument. This keeps the engine, rather
// than a global singleton, as the single source of truth for what an
// Edge means — the explicit-handle design spec.md §9 asks for instead of
// the process-wide statics the original C++ implementation used.
//
// An Edge owns a reference count increment on its target node for as long
// as it is reachable; the engine arranges for that increment to be
// released automatically when the Go garbage collector reclaims the
// pointer (see gc.go), the same trick the teacher library uses via
// runtime.SetFinalizer in hudd.go.
type Edge *rawedge

func newedge(r rawedge) Edge {
	v := r
	return &v
}
