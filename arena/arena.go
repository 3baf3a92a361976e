package arena

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// DefaultChunkCap is the per-chunk element capacity used when a caller
// passes a non-positive capacity to New.
const DefaultChunkCap = 64

// Arena is a typed bump allocator. It hands out pointers with stable
// addresses: allocation appends into fixed-capacity chunks and never
// reallocates a chunk, so a pointer obtained from Alloc stays valid until
// Reset.
//
// Arenas pair with intrusive trees as the record owner the trees
// themselves refuse to be: a tree links records but never allocates or
// frees them. There is no per-element free — records die in bulk with the
// arena.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	chunkCap int
	chunks   [][]T
	n        int
}

// New creates an arena allocating elements in chunks of chunkCap.
// A non-positive chunkCap selects DefaultChunkCap.
func New[T any](chunkCap int) *Arena[T] {
	if chunkCap <= 0 {
		chunkCap = DefaultChunkCap
	}
	return &Arena[T]{chunkCap: chunkCap}
}

// Alloc stores v in the arena and returns its stable address.
func (a *Arena[T]) Alloc(v T) *T {
	last := len(a.chunks) - 1
	if last < 0 || len(a.chunks[last]) == cap(a.chunks[last]) {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkCap))
		last++
	}
	a.chunks[last] = append(a.chunks[last], v)
	a.n++
	return &a.chunks[last][len(a.chunks[last])-1]
}

// Len returns the number of elements allocated since the last Reset.
func (a *Arena[T]) Len() int {
	return a.n
}

// Reset discards all chunks at once. Every pointer previously returned by
// Alloc becomes invalid; the caller must ensure no tree still links any
// of the arena's records.
func (a *Arena[T]) Reset() {
	a.chunks = nil
	a.n = 0
}
