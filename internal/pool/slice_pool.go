package pool

import "sync"

// Slice is a generic pool of reusable slices of a single element type T.
//
// It generalizes the old int64/float64/string slice pool trio into one
// generic pool type: callers instantiate Slice[T] once per element type they
// need (e.g. a package-level var of type *Slice[*doc.LayerObject]) instead of
// a hand-written pool per type.
type Slice[T any] struct {
	pool sync.Pool
}

// NewSlice creates a new Slice pool for element type T.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{
		pool: sync.Pool{
			New: func() any { s := []T{}; return &s },
		},
	}
}

// Get retrieves and resizes a []T from the pool.
//
// The returned slice has length equal to size. If the pooled slice has
// insufficient capacity, a new slice is allocated. The caller must call the
// returned cleanup function (typically via defer) to return the slice to
// the pool.
func (p *Slice[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}
