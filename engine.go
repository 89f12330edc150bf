// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

import (
	"runtime"

	"github.com/pkg/errors"
)

// Engine owns one Shared ROBDD: the node arena, the Unique Table, the
// Computed Table, the declared variables, and the bookkeeping needed for
// reference-counted collection. It is the explicit handle spec.md §9 asks
// for in place of the teacher library's process-wide singletons: every
// Edge produced by an Engine is only meaningful when interpreted against
// that same Engine.
//
// An Engine is not safe for concurrent use (spec.md §5).
type Engine struct {
	configs

	nodes    []node  // node arena; index 0 is the shared leaf
	freeHead int32   // head of the free-slot list, -1 if none
	freeNum  int     // number of free slots in nodes
	produced int      // total nodes ever allocated, for stats

	unique   uniqueTable
	computed computedTable

	varset   []rawedge // [i] holds the canonical positive edge for variable i+1
	refstack []rawedge    // protects in-flight rawedges from collection

	quantset   []int32 // per-variable id marking membership in the active quantification set
	quantsetID int32
	quantlast  int32 // highest level (lowest in the order) in the active set, -1 if empty

	replaceSeq int // monotonic id source for Replacer caching

	gcstat gcStat

	entering int32 // reentrancy guard, see guard.go

	generation int32 // bumped by Clear, guards stale Edge finalizers

	err error // sticky error state, spec.md §7 kind 2/3
}

// New creates an Engine with the given number of variables. Table sizes
// are derived from options (see config.go) and rounded up to a prime, per
// spec.md §4.4/§4.5 ("Table sizes SHOULD be primes").
func New(varnum int, opts ...func(*configs)) (*Engine, error) {
	if varnum < 1 || varnum > _MAXVAR {
		return nil, errors.Errorf("ibdd: invalid variable count %d (must be in [1,%d])", varnum, _MAXVAR)
	}
	cfg := makeconfigs(varnum)
	for _, o := range opts {
		o(&cfg)
	}

	e := &Engine{configs: cfg}
	e.initArena(cfg.nodesize)
	e.unique.init(cfg.nodesize)
	e.computed.init(cfg.cachesize)
	e.refstack = make([]rawedge, 0, 2*varnum+4)
	e.varset = make([]rawedge, varnum)
	e.quantset = make([]int32, varnum)

	for i := 0; i < varnum; i++ {
		lvl := uint16(i)
		pos, err := e.makenode(lvl, rawZero, rawOne)
		if err != nil {
			return nil, errors.Wrapf(err, "ibdd: allocating variable %d", i+1)
		}
		e.pin(pos.index())
		e.varset[i] = pos
	}

	log().Debugf("ibdd: engine created with %d variables, %d node slots, %d cache slots", varnum, len(e.nodes), len(e.computed.slots))
	return e, nil
}

func (e *Engine) initArena(size int) {
	e.nodes = make([]node, size)
	for i := range e.nodes {
		e.nodes[i] = node{next: int32(i + 1), dead: true}
	}
	e.nodes[size-1].next = -1
	// slot 0 is the permanent leaf: pinned, never collected.
	e.nodes[0] = node{variable: uint16(e.varnum), low: rawOne, high: rawOne, refcount: _MAXREFCOUNT, dead: false}
	e.freeHead = 1
	e.freeNum = size - 1
}

// pin saturates a node's refcount so it is never considered for
// collection; used for the per-variable canonical nodes, matching the
// teacher's treatment of variable nodes in varnum.go (refcou =
// _MAXREFCOUNT).
func (e *Engine) pin(idx int32) {
	e.nodes[idx].refcount = _MAXREFCOUNT
}

// Varnum returns the number of declared variables.
func (e *Engine) Varnum() int {
	return e.varnum
}

// Variable returns the canonical Edge for the i'th variable, 1 <= i <=
// Varnum (spec.md §6.2).
func (e *Engine) Variable(i int) Edge {
	e.enter()
	defer e.leave()
	if i < 1 || i > e.varnum {
		panic(variableRangeError(i, e.varnum))
	}
	return e.retedge(e.varset[i-1])
}

// NVariable returns the canonical Edge for the negation of the i'th
// variable: the same node as Variable(i), with its complement bit set,
// never a second node (spec.md §3, invariant 5).
func (e *Engine) NVariable(i int) Edge {
	e.enter()
	defer e.leave()
	if i < 1 || i > e.varnum {
		panic(variableRangeError(i, e.varnum))
	}
	return e.retedge(e.varset[i-1].not())
}

// True returns the constant 1.
func (e *Engine) True() Edge { return e.retedge(rawOne) }

// False returns the constant 0.
func (e *Engine) False() Edge { return e.retedge(rawZero) }

// From returns the constant Edge for v.
func (e *Engine) From(v bool) Edge {
	if v {
		return e.True()
	}
	return e.False()
}

// Error returns the engine's sticky error, or nil.
func (e *Engine) Error() error { return e.err }

// retedge wraps a rawedge into a caller-owned Edge, incrementing the
// target node's refcount and arranging for that increment to be released
// when the Go garbage collector reclaims the returned pointer. This is
// the deterministic-destruction substitute described in spec.md §9's
// "Garbage collection timing" note, grounded on the teacher library's own
// use of runtime.SetFinalizer in hudd.go's makehudd/retnode.
func (e *Engine) retedge(r rawedge) Edge {
	idx := r.index()
	e.nodes[idx].refcount = addref(e.nodes[idx].refcount)
	handle := new(rawedge)
	*handle = r
	gen := e.generation
	runtime.SetFinalizer(handle, func(h *rawedge) { e.release(h, gen) })
	return handle
}

// release is the finalizer callback that mirrors an Edge's construction
// with the matching refcount decrement (spec.md §4.1: "Destroy:
// decrements"). gen is the engine's generation at the time the Edge was
// created: if Clear has since replaced the arena, the index the Edge
// remembers no longer names the node it was minted for, so the decrement
// is skipped instead of corrupting whatever now lives at that slot.
func (e *Engine) release(handle *rawedge, gen int32) {
	if gen != e.generation {
		return
	}
	idx := handle.index()
	e.nodes[idx].refcount = delref(e.nodes[idx].refcount)
}

// Clear tears down all tables and resets the engine to the state produced
// by New with the same variable count (spec.md §6.2).
func (e *Engine) Clear() error {
	e.enter()
	defer e.leave()
	varnum := e.varnum
	fresh, err := New(varnum, e.optionFuncs()...)
	if err != nil {
		return err
	}
	gen := e.generation + 1
	*e = *fresh
	e.generation = gen
	return nil
}

func (e *Engine) optionFuncs() []func(*configs) {
	c := e.configs
	return []func(*configs){
		Nodesize(len(e.nodes)),
		Cachesize(len(e.computed.slots)),
		Maxnodesize(c.maxnodesize),
		Maxnodeincrease(c.maxnodeincrease),
		Minfreenodes(c.minfreenodes),
	}
}
