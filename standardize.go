// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// standardize puts an (f, g, h) ITE triple into the canonical form the
// Computed Table is keyed on (spec.md §4.6), so that logically identical
// requests reaching iteRaw through different argument permutations still
// share one cache entry. It applies the symmetry rules and the
// complement-normalization rules of the standardizer described in
// original_source/Manager.cpp's Manager::standardize (the identity
// collapses that method applies first are handled separately, inline in
// iteRaw's terminal-case checks).
//
// The symmetry rules recognize the five shapes in which one of f, g, h
// can be swapped for the argument that comes earlier in the variable
// order without changing the result: g==1, g==0, g==!h, h==1, and h==0.
// Swapping in each case picks whichever of f and the other operand has
// the lower variable level (spec.md §4.6's var(f) > var(h) test) to
// serve as the new f, so equivalent ITE calls that differ only in which
// operand plays f end up hashing to the same canonical triple. This
// mirrors DDNode::getIndex() in the ground truth, which is the node's
// variable level, not an arbitrary node id.
//
// The complement rules then exploit two further identities:
//
//	ite(!F, G, H)  == ite(F, H, G)
//	ite(F, !G, !H) == !ite(F, G, H)
//
// Applying both leaves f and g regular (uncomplemented) in the stored
// key; flip reports whether the caller must complement whatever iteRaw
// eventually computes and caches for the canonical triple.
func (e *Engine) standardize(f, g, h rawedge) (sf, sg, sh rawedge, flip bool) {
	sf, sg, sh = f, g, h

	switch {
	case sg.isOne():
		if e.levelOf(sf.index()) > e.levelOf(sh.index()) {
			sf, sh = sh, sf
		}
	case sg.isZero():
		if e.levelOf(sf.index()) > e.levelOf(sh.index()) {
			sf, sh = sh, sf
			sf = sf.not()
			sh = sh.not()
		}
	case sg == sh.not():
		if e.levelOf(sf.index()) > e.levelOf(sg.index()) {
			sf, sg = sg, sf
			sh = sg.not()
		}
	case sh.isOne():
		if e.levelOf(sf.index()) > e.levelOf(sg.index()) {
			sf, sg = sg, sf
			sf = sf.not()
			sg = sg.not()
		}
	case sh.isZero():
		if e.levelOf(sf.index()) > e.levelOf(sg.index()) {
			sf, sg = sg, sf
		}
	}

	if sf.compl() {
		sf = sf.not()
		sg, sh = sh, sg
	}
	if sg.compl() {
		sg = sg.not()
		sh = sh.not()
		flip = !flip
	}
	return sf, sg, sh, flip
}
