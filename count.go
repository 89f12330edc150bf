// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

import "math/big"

// CountNodes returns the number of distinct nodes reachable from f,
// including the shared leaf when it is reachable (spec.md §6.2: "number
// of unique nodes reachable, including the leaf when present").
func (e *Engine) CountNodes(f Edge) int {
	e.enter()
	defer e.leave()
	n := e.countRec(rawedge(*f).index())
	e.unmarkall()
	return n
}

func (e *Engine) countRec(idx int32) int {
	n := &e.nodes[idx]
	if n.mark {
		return 0
	}
	n.mark = true
	if idx == leafIndex {
		return 1
	}
	return 1 + e.countRec(n.low.index()) + e.countRec(n.high.index())
}

// SatCount returns the number of satisfying variable assignments of f,
// counted over all Varnum variables regardless of whether f's diagram
// mentions them, the way the teacher library's Satcount does by scaling
// for skipped levels along each path.
//
// The recursive step below memoizes the count local to a node — its
// subtree only, ignoring how many levels were skipped to reach it —
// exactly as the teacher's own satcount/satc map does, since that local
// count does not depend on the path used to reach the node. Skipped
// levels are scaled in at each call site instead, once per edge crossed
// rather than once per node visited.
func (e *Engine) SatCount(f Edge) *big.Int {
	e.enter()
	defer e.leave()
	r := rawedge(*f)
	if r.isLeaf() {
		if r.isOne() {
			return new(big.Int).Lsh(big.NewInt(1), uint(e.varnum))
		}
		return big.NewInt(0)
	}
	memo := make(map[int32]*big.Int)
	top := e.levelOf(r.index())
	c := e.satcountLocal(r.index(), memo)
	if r.compl() {
		total := new(big.Int).Lsh(big.NewInt(1), uint(int(e.varnum)-int(top)))
		c = new(big.Int).Sub(total, c)
	}
	return new(big.Int).Lsh(c, uint(top))
}

// satcountLocal returns the number of satisfying assignments of the
// function rooted at (uncomplemented) node idx, counted over the levels
// from idx's own variable through Varnum-1.
func (e *Engine) satcountLocal(idx int32, memo map[int32]*big.Int) *big.Int {
	if c, ok := memo[idx]; ok {
		return c
	}
	n := &e.nodes[idx]
	lo := e.satcountBranch(n.low, n.variable, memo)
	hi := e.satcountBranch(n.high, n.variable, memo)
	c := new(big.Int).Add(lo, hi)
	memo[idx] = c
	return c
}

// satcountBranch scales a child edge's count by the levels skipped
// between parentLevel and the child, and corrects for a complemented low
// edge by subtracting the child's own count from its subtree total.
func (e *Engine) satcountBranch(edge rawedge, parentLevel uint16, memo map[int32]*big.Int) *big.Int {
	idx := edge.index()
	if idx == leafIndex {
		gap := int(e.varnum) - int(parentLevel) - 1
		if edge.isOne() {
			return new(big.Int).Lsh(big.NewInt(1), uint(gap))
		}
		return big.NewInt(0)
	}
	childLevel := e.levelOf(idx)
	gap := int(childLevel) - int(parentLevel) - 1
	c := e.satcountLocal(idx, memo)
	if edge.compl() {
		total := new(big.Int).Lsh(big.NewInt(1), uint(int(e.varnum)-int(childLevel)))
		c = new(big.Int).Sub(total, c)
	}
	return new(big.Int).Lsh(c, uint(gap))
}
