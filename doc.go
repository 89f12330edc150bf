// Copyright (c) 2024 The ibdd Authors
//
// MIT License

/*
Package ibdd implements a Shared Reduced Ordered Binary Decision Diagram
(SBDD) engine with complement edges.

Each Engine owns a fixed number of variables, declared when it is created
with New, and every variable is identified by an (integer) index in the
range [1..Varnum]. Boolean functions over these variables are represented
as Edges: a reference to an interior node (or the engine's single shared
leaf) together with a complement bit. Two logically equal functions always
compare equal as Edges, because the engine maintains a canonical, reduced,
ordered representation and folds double negation into complement bits
rather than duplicate nodes.

All Boolean operators are defined in terms of a single synthesis primitive,
Ite (if-then-else): Ite(f, g, h) computes (f AND g) OR ((NOT f) AND h). A
Unique Table enforces that structurally identical nodes are shared, and a
Computed Table memoizes recent Ite/quantification results. Nodes are
reference counted; a node whose count returns to zero becomes eligible for
reclamation the next time the engine runs a collection pass.

The engine is single-threaded: there is no synchronization, and calling an
Engine from more than one goroutine at a time is undefined behavior.

Package trace (github.com/gobdd/ibdd/trace) and package dot
(github.com/gobdd/ibdd/dot) are external collaborators built on top of this
package's public API: a textual circuit-description parser and a Graphviz
DOT exporter, respectively. Command cmd/ibdd wires them together into a
small benchmarking tool.
*/
package ibdd
