// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// Exist computes the existential quantification of f over variable i:
// f|xi=0 OR f|xi=1 (spec.md §4.8).
func (e *Engine) Exist(f Edge, i int) (Edge, error) {
	e.enter()
	defer e.leave()
	if i < 1 || i > e.varnum {
		panic(variableRangeError(i, e.varnum))
	}
	r, err := e.existRaw(rawedge(*f), uint16(i-1))
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// existRaw walks past any node whose variable comes before the target,
// rebuilding it with recursively quantified children, and resolves a
// node at the target variable by OR-ing its two cofactors directly
// (spec.md §4.8's cofactor-then-combine definition of existential
// quantification, applied node-by-node rather than only at the top).
func (e *Engine) existRaw(f rawedge, variable uint16) (rawedge, error) {
	idx := f.index()
	n := &e.nodes[idx]
	if n.variable > variable {
		return f, nil
	}
	lo, hi := e.restrictAt(f, n.variable)
	if n.variable == variable {
		return e.orRaw(lo, hi)
	}

	k := key{f: int32(f), g: int32(variable), tag: tagExist}
	if res, ok := e.computed.lookup(k); ok {
		return res, nil
	}

	e.pushref(lo)
	e.pushref(hi)
	newlo, err := e.existRaw(lo, variable)
	if err != nil {
		e.popref()
		e.popref()
		return 0, err
	}
	e.pushref(newlo)
	newhi, err := e.existRaw(hi, variable)
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

func (e *Engine) orRaw(f, g rawedge) (rawedge, error) {
	return e.iteRaw(f, rawOne, g)
}

// ExistSet computes the existential quantification of f over an entire
// set of variables at once, generalizing Exist the way the teacher
// library's AppEx generalizes Apply with a quantification cube. Rather
// than materializing a cube Edge, the set is recorded directly against
// each variable's slot in e.quantset, tagged with a fresh quantsetID so
// that stale membership from an earlier call is never mistaken for
// membership in this one.
func (e *Engine) ExistSet(f Edge, vars []int) (Edge, error) {
	e.enter()
	defer e.leave()
	e.beginQuantSet(vars)
	r, err := e.existSetRaw(rawedge(*f))
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

func (e *Engine) beginQuantSet(vars []int) {
	e.quantsetID++
	e.quantlast = -1
	for _, i := range vars {
		if i < 1 || i > e.varnum {
			panic(variableRangeError(i, e.varnum))
		}
		lvl := int32(i - 1)
		e.quantset[lvl] = e.quantsetID
		if lvl > e.quantlast {
			e.quantlast = lvl
		}
	}
}

func (e *Engine) inQuantSet(level uint16) bool {
	return int32(level) <= e.quantlast && e.quantset[level] == e.quantsetID
}

// existSetRaw is existRaw generalized to a set: reaching a member
// variable eliminates it and continues eliminating any remaining set
// members from both cofactors before combining them with OR, so that a
// single top-down pass removes every variable in the set instead of
// requiring one pass per variable.
func (e *Engine) existSetRaw(f rawedge) (rawedge, error) {
	idx := f.index()
	n := &e.nodes[idx]
	if int32(n.variable) > e.quantlast {
		return f, nil
	}
	lo, hi := e.restrictAt(f, n.variable)

	k := key{f: int32(f), g: e.quantsetID, tag: tagExistSet}
	if res, ok := e.computed.lookup(k); ok {
		return res, nil
	}

	e.pushref(lo)
	e.pushref(hi)
	rlo, err := e.existSetRaw(lo)
	if err != nil {
		e.popref()
		e.popref()
		return 0, err
	}
	e.pushref(rlo)
	rhi, err := e.existSetRaw(hi)
	e.popref()
	e.popref()
	e.popref()
	if err != nil {
		return 0, err
	}

	var res rawedge
	if e.inQuantSet(n.variable) {
		e.pushref(rlo)
		e.pushref(rhi)
		res, err = e.orRaw(rlo, rhi)
		e.popref()
		e.popref()
	} else {
		res, err = e.buildNode(n.variable, rlo, rhi)
	}
	if err != nil {
		return 0, err
	}
	e.computed.insert(k, res)
	return res, nil
}

// RelProduct computes the "relational product" of f and g over vars: the
// conjunction f AND g with every variable in vars existentially
// quantified, as used to advance a set of states across a transition
// relation (spec.md's EXPANSION over §4.9, after the teacher's AppEx). The
// conjunction is built in full first and then passed to the ExistSet
// pass; the two steps are not fused into a single recursion.
func (e *Engine) RelProduct(f, g Edge, vars []int) (Edge, error) {
	e.enter()
	defer e.leave()
	e.beginQuantSet(vars)
	conj, err := e.iteRaw(rawedge(*f), rawedge(*g), rawZero)
	if err != nil {
		return nil, err
	}
	e.pushref(conj)
	r, err := e.existSetRaw(conj)
	e.popref()
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}
