// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// _MAXVAR is the maximal variable index the engine supports. Variable
// indices and node levels are kept in 16 bits (see spec.md §3), so we use
// the same budget the teacher library uses for its BDD levels.
const _MAXVAR int = 0xFFFF

// _MAXREFCOUNT is the maximal value of the saturating 16-bit reference
// counter. Once a node's refcount reaches this value it is considered
// pinned and is never collected; this is the compactness/correctness
// trade-off spec.md §3 and §4.2 call out explicitly.
const _MAXREFCOUNT uint16 = 0xFFFF

// _MINFREENODES is the minimal percentage of nodes that must remain free
// after a garbage collection before we resize the node arena instead.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC bounds how much the node arena grows in one resize.
const _DEFAULTMAXNODEINC int = 1 << 20

// leafIndex is the arena slot of the engine's single shared leaf. Both
// logical constants are Edges over this one node, distinguished only by
// their complement bit (spec.md §3, invariant 5).
const leafIndex int32 = 0
