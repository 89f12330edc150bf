// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// hashTriple implements the hash function of spec.md §4.3: it mixes the
// low bits of g and h, then shifts by an amount correlated with f, before
// reducing modulo the table size. It backs both the Unique Table (keyed
// on (var, low, high)) and the Computed Table (keyed on (f, g, h) plus an
// operator tag folded into h), matching the "used by both tables" wording
// of spec.md §4.3.
//
// The teacher library's own hash functions (hashing.go's _TRIPLE/_PAIR)
// use a different, order-sensitive pairing scheme; spec.md prescribes a
// specific shift-and-mix formula instead, so this is a fresh
// implementation grounded on the SHAPE of the teacher's per-table hash
// helpers (one small pure function per table, taking the raw key fields
// and the table size) rather than on their exact arithmetic.
func hashTriple(f, g, h int32, size int) int {
	shift := uint(f) & 0xF
	mixed := uint32(g) + uint32(h)
	return int((mixed >> shift) % uint32(size))
}

// key is a value-equal triple of rawedges (or a rawedge plus a variable,
// for the unique table) used to look up shared structure. tag disambiguates
// the different operations that share the Computed Table (ITE, cofactor,
// exist) the way the teacher's cacheData.c field disambiguates apply
// operators, not/ite entries sharing table slots (see hashing.go).
type key struct {
	f, g, h int32
	tag     int32
}

func (k key) hash(size int) int {
	return hashTriple(k.f, k.g, k.h^k.tag, size)
}

func (k key) equal(o key) bool {
	return k.f == o.f && k.g == o.g && k.h == o.h && k.tag == o.tag
}
