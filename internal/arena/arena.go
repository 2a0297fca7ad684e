// Package arena implements the bump allocator that owns every AST node and
// child collection produced for a single file. Nothing allocated through an
// Arena outlives the Arena itself — there is no free list and no per-node
// deallocation, only one bulk drop when the file's processing is done.
package arena

import "sync/atomic"

// slabSize is the number of elements in the first slab of a pool; each
// subsequent slab doubles, mirroring a typical bump-allocator growth curve
// (bumpalo-style) without ever moving previously returned pointers.
const slabSize = 64

// pool holds every T allocated from one Arena. Slabs never move or shrink,
// so a *T handed out by Alloc stays valid for the Arena's whole lifetime.
type pool[T any] struct {
	slabs [][]T
}

func (p *pool[T]) alloc(v T) *T {
	if len(p.slabs) == 0 {
		p.slabs = append(p.slabs, make([]T, 0, slabSize))
	}
	last := &p.slabs[len(p.slabs)-1]
	if len(*last) == cap(*last) {
		next := cap(*last) * 2
		p.slabs = append(p.slabs, make([]T, 0, next))
		last = &p.slabs[len(p.slabs)-1]
	}
	*last = append(*last, v)
	return &(*last)[len(*last)-1]
}

// Arena is the bump allocator for one file's AST. It is not safe for
// concurrent use — the core is single-threaded per file (spec.md section 5)
// — and every pool it owns is type-erased behind the untyped pools map,
// resolved generically through Alloc.
type Arena struct {
	pools map[any]any
	id    uint64
}

var nextID uint64

// New creates an empty Arena. Construction is cheap: no slabs are allocated
// until the first Alloc call for a given type.
func New() *Arena {
	return &Arena{
		pools: make(map[any]any),
		id:    atomic.AddUint64(&nextID, 1),
	}
}

// ID returns a process-unique identifier for this arena: no two arenas
// created in the same process share one.
func (a *Arena) ID() uint64 {
	return a.id
}

type poolKey[T any] struct{}

// Alloc copies v into the arena and returns a stable pointer to the copy.
// The returned pointer remains valid for the lifetime of the Arena.
func Alloc[T any](a *Arena, v T) *T {
	key := poolKey[T]{}
	p, ok := a.pools[key].(*pool[T])
	if !ok {
		p = &pool[T]{}
		a.pools[key] = p
	}
	return p.alloc(v)
}

// Vec is a growable array standing in for oxc_allocator's Vec<'a, T>. Its
// backing storage is an ordinary Go slice on the heap; it is not taken from
// an Arena's pools, and Go's GC — not an Arena — reclaims the memory.
type Vec[T any] struct {
	items []T
}

// NewVec creates a Vec with the given initial capacity hint.
func NewVec[T any](capHint int) Vec[T] {
	return Vec[T]{items: make([]T, 0, capHint)}
}

// Push appends v, returning the updated Vec (Vec is a value type; callers
// reassign, matching how a resizable array is threaded through builder code).
func (v Vec[T]) Push(item T) Vec[T] {
	v.items = append(v.items, item)
	return v
}

// Slice exposes the underlying elements for iteration. The returned slice
// must not be retained past the arena's lifetime in spirit (it is in
// practice GC-managed, but callers should treat it as arena-scoped).
func (v Vec[T]) Slice() []T {
	return v.items
}

// Len reports the number of elements.
func (v Vec[T]) Len() int {
	return len(v.items)
}

// At returns the element at index i.
func (v Vec[T]) At(i int) T {
	return v.items[i]
}
