// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// computedEntry is one slot of the Computed Table (spec.md §4.5).
type computedEntry struct {
	used   bool
	k      key
	result rawedge
}

// computedTable is a fixed-capacity, direct-mapped cache of recent
// Ite, cofactor, quantification and replacement results. Unlike the
// Unique Table it has no collision chain: a slot collision simply
// overwrites whatever was there, since every entry is an advisory memo,
// never a source of truth (spec.md §4.5, "no chaining, no collision
// resolution"). One table per Engine serves all of these operations: the
// tag field of key keeps their entries from being mistaken for one
// another, but an entry of any kind may overwrite an entry of any other
// kind that hashes to the same slot.
type computedTable struct {
	slots []computedEntry
}

func (c *computedTable) init(size int) {
	size = bddPrimeGTE(size)
	c.slots = make([]computedEntry, size)
}

func (c *computedTable) clear() {
	for i := range c.slots {
		c.slots[i] = computedEntry{}
	}
}

func (c *computedTable) lookup(k key) (rawedge, bool) {
	if len(c.slots) == 0 {
		return 0, false
	}
	s := &c.slots[k.hash(len(c.slots))]
	if s.used && s.k.equal(k) {
		return s.result, true
	}
	return 0, false
}

func (c *computedTable) insert(k key, result rawedge) {
	if len(c.slots) == 0 {
		return
	}
	s := &c.slots[k.hash(len(c.slots))]
	s.used = true
	s.k = k
	s.result = result
}
