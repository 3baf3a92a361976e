package splay

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/splay/topdown"
)

// Range returns an in-order iterator over all elements of the index.
//
// This is the canonical early-exit traversal contract: breaking out of the
// range loop stops the walk. Walking does not splay, and the tree must not
// be mutated while ranging.
func (t *Tree[E]) Range() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		t.tree.Walk(func(n *topdown.Node) bool {
			return yield(t.elem(n))
		})
	}
}

// ForEach visits all elements in index order, unconditionally.
func (t *Tree[E]) ForEach(f func(*E)) {
	t.tree.Walk(func(n *topdown.Node) bool {
		f(t.elem(n))
		return true
	})
}

// Each visits elements in index order. Iteration stops at the first
// callback error and returns that error to the caller.
func (t *Tree[E]) Each(f func(*E) error) error {
	var err error
	t.tree.Walk(func(n *topdown.Node) bool {
		err = f(t.elem(n))
		return err == nil
	})
	return err
}

// SearchInOrder walks t in index order until f produces a value, and
// returns that value. The second return reports whether f ever matched.
//
// This is a top-level function rather than a method because Go methods
// cannot introduce the result type parameter V.
func SearchInOrder[E, V any](t *Tree[E], f func(*E) (V, bool)) (V, bool) {
	var result V
	var found bool
	t.tree.Walk(func(n *topdown.Node) bool {
		v, ok := f(t.elem(n))
		if ok {
			result, found = v, true
			return false
		}
		return true
	})
	return result, found
}
