package arena

import "github.com/zeebo/xxh3"

// Atom is an arena-backed interned string slice. Two Atoms with equal text
// allocated from the same AtomTable compare equal as strings; the point of
// interning is that identifiers, string-literal text, and the thousands of
// repeated property names in a typical file's AST are stored once.
type Atom string

// AtomTable interns strings for a single Arena, hashing with xxh3 (a
// teacher dependency otherwise unused in this module — a non-cryptographic
// hash over short identifier strings is exactly what it's for) to keep
// lookup close to O(1) even for files with tens of thousands of identifier
// occurrences.
type AtomTable struct {
	buckets map[uint64][]Atom
}

// NewAtomTable creates an empty interning table.
func NewAtomTable() *AtomTable {
	return &AtomTable{buckets: make(map[uint64][]Atom)}
}

// Intern returns the canonical Atom for s, allocating a new entry only the
// first time a given string is seen.
func (t *AtomTable) Intern(s string) Atom {
	h := xxh3.HashString(s)
	for _, candidate := range t.buckets[h] {
		if string(candidate) == s {
			return candidate
		}
	}
	a := Atom(s)
	t.buckets[h] = append(t.buckets[h], a)
	return a
}

// Len reports the number of distinct interned strings, mostly useful for
// tests asserting that interning actually deduplicates.
func (t *AtomTable) Len() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}
