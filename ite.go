// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// Tags disambiguate the different recursive operations that share one
// Computed Table (spec.md §4.5), the way the teacher library's cache.go
// uses a small integer operator id alongside the operand pair.
const (
	tagIte int32 = iota
	tagExist
	tagExistSet
	tagRelProd
	tagCofactor
	tagReplace
)

// levelOf returns a node's position in the variable order. The leaf's
// level is Varnum, a sentinel larger than every real variable's level,
// so that comparisons treat it as coming after every interior node
// (spec.md §4.2).
func (e *Engine) levelOf(idx int32) uint16 {
	return e.nodes[idx].variable
}

func (e *Engine) topVar(edges ...rawedge) uint16 {
	v := e.levelOf(edges[0].index())
	for _, r := range edges[1:] {
		if lv := e.levelOf(r.index()); lv < v {
			v = lv
		}
	}
	return v
}

// restrictAt returns the (else, then) cofactors of r with respect to the
// given variable level. If r's own top variable is not that level, r
// does not depend on it yet in the current order and both cofactors are
// r unchanged — the standard technique that lets a Shared BDD walk
// several operands "in lock step" even when they skip variables
// (spec.md §4.8's description of cofactoring applies the same way inside
// ITE's recursion).
func (e *Engine) restrictAt(r rawedge, variable uint16) (lo, hi rawedge) {
	idx := r.index()
	n := &e.nodes[idx]
	if n.variable != variable {
		return r, r
	}
	if r.compl() {
		return n.low.not(), n.high.not()
	}
	return n.low, n.high
}

// buildNode enforces the canonical-form invariant that only a low edge
// may carry the complement bit, never a high edge (spec.md §3, invariant
// 4). If the requested high child is complemented, both children and the
// resulting edge are flipped together, which leaves the node stored in
// the Unique Table unchanged in every other respect.
func (e *Engine) buildNode(variable uint16, low, high rawedge) (rawedge, error) {
	if high.compl() {
		r, err := e.makenode(variable, low.not(), high.not())
		if err != nil {
			return 0, err
		}
		return r.not(), nil
	}
	return e.makenode(variable, low, high)
}

// Ite computes the if-then-else of three functions: (f AND g) OR ((NOT
// f) AND h). Every other Boolean operator in this package is defined in
// terms of Ite (spec.md §4.7/§4.9).
func (e *Engine) Ite(f, g, h Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g), rawedge(*h))
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// iteRaw is the recursive synthesis engine of spec.md §4.7. It applies
// the fixed set of terminal-case shortcuts, standardizes the remaining
// triple, consults the Computed Table, and otherwise decomposes on the
// top variable and recurses on both cofactors before building (and
// caching) the resulting node.
func (e *Engine) iteRaw(f, g, h rawedge) (rawedge, error) {
	switch {
	case f == rawOne:
		return g, nil
	case f == rawZero:
		return h, nil
	case g == h:
		return g, nil
	}
	if g == rawOne && h == rawZero {
		return f, nil
	}
	if g == rawZero && h == rawOne {
		return f.not(), nil
	}
	if f == g {
		g = rawOne
	} else if f == g.not() {
		g = rawZero
	}
	if f == h {
		h = rawZero
	} else if f == h.not() {
		h = rawOne
	}
	if g == h {
		return g, nil
	}
	if g == rawOne && h == rawZero {
		return f, nil
	}
	if g == rawZero && h == rawOne {
		return f.not(), nil
	}

	sf, sg, sh, flip := e.standardize(f, g, h)

	k := key{f: int32(sf), g: int32(sg), h: int32(sh), tag: tagIte}
	if res, ok := e.computed.lookup(k); ok {
		if flip {
			return res.not(), nil
		}
		return res, nil
	}

	variable := e.topVar(sf, sg, sh)
	f0, f1 := e.restrictAt(sf, variable)
	g0, g1 := e.restrictAt(sg, variable)
	h0, h1 := e.restrictAt(sh, variable)

	e.pushref(sf)
	e.pushref(sg)
	e.pushref(sh)
	low, err := e.iteRaw(f0, g0, h0)
	if err != nil {
		e.popref()
		e.popref()
		e.popref()
		return 0, err
	}
	e.pushref(low)
	high, err := e.iteRaw(f1, g1, h1)
	e.popref()
	e.popref()
	e.popref()
	e.popref()
	if err != nil {
		return 0, err
	}

	res, err := e.buildNode(variable, low, high)
	if err != nil {
		return 0, err
	}
	e.computed.insert(k, res)
	if flip {
		return res.not(), nil
	}
	return res, nil
}

// cofactorRaw restricts f to variable = value, without requiring
// variable to be f's top variable: any node above variable in the order
// is rebuilt with its own children cofactored in turn, and any node at
// or past variable resolves immediately by picking a branch or returning
// f unchanged. Results are memoized under tagCofactor since large
// functions are frequently cofactored on the same variable during
// quantification (spec.md §4.8's "cofactor" building block).
func (e *Engine) cofactorRaw(f rawedge, variable uint16, value bool) (rawedge, error) {
	idx := f.index()
	n := &e.nodes[idx]
	if n.variable > variable {
		return f, nil
	}
	lo, hi := e.restrictAt(f, n.variable)
	if n.variable == variable {
		if value {
			return hi, nil
		}
		return lo, nil
	}

	valBit := int32(0)
	if value {
		valBit = 1
	}
	k := key{f: int32(f), g: int32(variable), h: valBit, tag: tagCofactor}
	if res, ok := e.computed.lookup(k); ok {
		return res, nil
	}

	e.pushref(lo)
	e.pushref(hi)
	newlo, err := e.cofactorRaw(lo, variable, value)
	if err != nil {
		e.popref()
		e.popref()
		return 0, err
	}
	e.pushref(newlo)
	newhi, err := e.cofactorRaw(hi, variable, value)
	e.popref()
	e.popref()
	e.popref()
	if err != nil {
		return 0, err
	}

	res, err := e.buildNode(n.variable, newlo, newhi)
	if err != nil {
		return 0, err
	}
	e.computed.insert(k, res)
	return res, nil
}

// Cofactor restricts f by setting variable i to value.
func (e *Engine) Cofactor(f Edge, i int, value bool) (Edge, error) {
	e.enter()
	defer e.leave()
	if i < 1 || i > e.varnum {
		panic(variableRangeError(i, e.varnum))
	}
	r, err := e.cofactorRaw(rawedge(*f), uint16(i-1), value)
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}
