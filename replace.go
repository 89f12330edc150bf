// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// Replacer describes a variable renaming to apply with Replace, adapted
// from the teacher library's bddPair/correctify machinery in replace.go.
// Unlike a raw index-to-index table, a Replacer is opaque and
// Engine-scoped: it carries an id used to key Computed Table entries, so
// that two different renamings of the same function never share a cache
// slot.
type Replacer struct {
	table []int32 // table[level] = replacement level, or -1 for unchanged
	id    int32
}

// NewReplacer builds a Replacer that substitutes, for every (from, to)
// pair, occurrences of variable from with variable to. Variables not
// named in pairs are left alone.
func (e *Engine) NewReplacer(pairs map[int]int) (*Replacer, error) {
	table := make([]int32, e.varnum)
	for i := range table {
		table[i] = -1
	}
	for from, to := range pairs {
		if from < 1 || from > e.varnum {
			return nil, variableRangeError(from, e.varnum)
		}
		if to < 1 || to > e.varnum {
			return nil, variableRangeError(to, e.varnum)
		}
		table[from-1] = int32(to - 1)
	}
	e.replaceSeq++
	return &Replacer{table: table, id: int32(e.replaceSeq)}, nil
}

// Replace substitutes variables in f according to r, returning the
// result (spec.md §6.2/§9's replace EXPANSION).
func (e *Engine) Replace(f Edge, r *Replacer) (Edge, error) {
	e.enter()
	defer e.leave()
	res, err := e.replaceRaw(rawedge(*f), r)
	if err != nil {
		return nil, err
	}
	return e.retedge(res), nil
}

// replaceRaw rebuilds f bottom-up, remapping each interior node's
// variable through r.table and reinserting it with Ite rather than with
// a direct node allocation. Reconstructing through Ite, instead of
// mutating the variable field of a fresh node in place, is what makes
// this safe even when a renaming would otherwise put two variables out
// of order along some path: Ite always decomposes on the true top
// variable of its arguments and so restores a valid ordering on its own,
// the functional equivalent of the teacher's correctify pass.
func (e *Engine) replaceRaw(f rawedge, r *Replacer) (rawedge, error) {
	idx := f.index()
	if idx == leafIndex {
		return f, nil
	}
	n := &e.nodes[idx]
	lo0, hi0 := n.low, n.high
	if f.compl() {
		lo0, hi0 = lo0.not(), hi0.not()
	}

	k := key{f: int32(f), g: r.id, tag: tagReplace}
	if res, ok := e.computed.lookup(k); ok {
		return res, nil
	}

	e.pushref(lo0)
	e.pushref(hi0)
	newlo, err := e.replaceRaw(lo0, r)
	if err != nil {
		e.popref()
		e.popref()
		return 0, err
	}
	e.pushref(newlo)
	newhi, err := e.replaceRaw(hi0, r)
	e.popref()
	e.popref()
	e.popref()
	if err != nil {
		return 0, err
	}

	target := n.variable
	if mapped := r.table[n.variable]; mapped != -1 {
		target = uint16(mapped)
	}

	e.pushref(newlo)
	e.pushref(newhi)
	res, err := e.iteRaw(e.varset[target], newhi, newlo)
	e.popref()
	e.popref()
	if err != nil {
		return 0, err
	}
	e.computed.insert(k, res)
	return res, nil
}
