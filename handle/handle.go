package handle

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Handle is an opaque reference handed across a host boundary in place of
// a Go pointer. The zero Handle is never valid.
type Handle int32

// Invalid is the zero, never-valid handle.
const Invalid Handle = 0

// Table maps handles to host-owned values of one type. The zero value is
// an empty table ready for use.
//
// Dropped slots are reused; a stale handle may therefore resolve to a
// newer value. Hosts that need to detect staleness should keep their own
// generation counters — the table is deliberately as thin as the foreign
// call surface it backs.
//
// A Table is not safe for concurrent use.
type Table[T any] struct {
	slots []slot[T]
	free  []int32
}

type slot[T any] struct {
	val  T
	live bool
}

// Put stores v and returns its handle.
func (tb *Table[T]) Put(v T) Handle {
	if n := len(tb.free); n > 0 {
		idx := tb.free[n-1]
		tb.free = tb.free[:n-1]
		tb.slots[idx] = slot[T]{val: v, live: true}
		return Handle(idx + 1)
	}
	tb.slots = append(tb.slots, slot[T]{val: v, live: true})
	return Handle(len(tb.slots))
}

// Get resolves h. The second return is false for Invalid, dropped, or
// out-of-range handles.
func (tb *Table[T]) Get(h Handle) (T, bool) {
	idx := int(h) - 1
	if idx < 0 || idx >= len(tb.slots) || !tb.slots[idx].live {
		var zero T
		return zero, false
	}
	return tb.slots[idx].val, true
}

// Drop releases h's slot for reuse. Reports whether h was live. The
// stored value is zeroed so the table does not retain references.
func (tb *Table[T]) Drop(h Handle) bool {
	idx := int(h) - 1
	if idx < 0 || idx >= len(tb.slots) || !tb.slots[idx].live {
		return false
	}
	tb.slots[idx] = slot[T]{}
	tb.free = append(tb.free, int32(idx))
	return true
}

// Len returns the number of live handles.
func (tb *Table[T]) Len() int {
	return len(tb.slots) - len(tb.free)
}
