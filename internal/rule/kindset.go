// Package rule defines the bitset-dispatched rule-runner: every rule
// declares the Kinds it wants to be called at, and a Runner walks the tree
// once, invoking only the rules whose KindSet matches the node it is
// standing on.
package rule

import "github.com/web-infra-dev/rslint-core/internal/ast"

const wordBits = 64

// KindSet is a fixed-width bitset over ast.Kind, wide enough for every
// kind the ast package defines. A plain uint64 is not wide enough once the
// kind count passes 64, which it does here — KindCount is in the hundreds —
// so KindSet is a small word array instead.
type KindSet struct {
	words [(ast.KindCount + wordBits - 1) / wordBits]uint64
}

// NewKindSet builds a KindSet containing exactly the given kinds.
func NewKindSet(kinds ...ast.Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

// Add sets k's bit.
func (s *KindSet) Add(k ast.Kind) {
	s.words[int(k)/wordBits] |= 1 << (uint(k) % wordBits)
}

// Has reports whether k's bit is set.
func (s KindSet) Has(k ast.Kind) bool {
	return s.words[int(k)/wordBits]&(1<<(uint(k)%wordBits)) != 0
}

// IsEmpty reports whether no bit is set — the "None" sentinel meaning a
// rule's Run should fire at every node rather than a restricted subset.
func (s KindSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Kinds returns every kind present in the set, in ascending order — used by
// the Runner to build its dense per-kind dispatch table.
func (s KindSet) Kinds() []ast.Kind {
	var out []ast.Kind
	for k := 0; k < ast.KindCount; k++ {
		if s.Has(ast.Kind(k)) {
			out = append(out, ast.Kind(k))
		}
	}
	return out
}
