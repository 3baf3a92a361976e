package splay

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/splay/topdown"
)

// Node is the intrusive link structure clients embed into their records,
// one per index. The zero value is an unlinked node.
//
// Node is an alias for the engine's node type, so records need to import
// this package only.
type Node = topdown.Node

// Tree is an intrusive splay tree maintaining one index over elements of
// type E.
//
// A tree created by New is empty. Elements are owned by the caller and
// must stay valid while linked; the tree only rewires the element's
// embedded link node and hands elements back on removal.
//
// Performance follows the usual splay-tree characteristics:
//
//	Operation     |   amortized   |  worst case
//	--------------+---------------+------------
//	Find          |   O(log n)    |   O(n)
//	Insert        |   O(log n)    |   O(n)
//	Remove        |   O(log n)    |   O(n)
//	Min/Max       |   O(log n)    |   O(n)
//	Walk          |   O(n)        |   O(n)
//
// with frequently accessed elements settling near the root.
type Tree[E any] struct {
	cfg    Config[E]
	offset uintptr // byte offset of the index's node within E
	tree   topdown.Tree
}

// New creates an empty tree with a validated index configuration.
func New[E any](cfg Config[E]) (*Tree[E], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	offset, err := nodeOffset(cfg.NodeOf)
	if err != nil {
		return nil, err
	}
	return &Tree[E]{cfg: cfg, offset: offset}, nil
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t.tree.IsEmpty()
}

// Len returns the number of elements in the tree.
//
// The tree stores no size counter; Len counts by walking and is O(n).
func (t *Tree[E]) Len() int {
	n := 0
	t.tree.Walk(func(*topdown.Node) bool {
		n++
		return true
	})
	return n
}

// Root returns the element currently at the root, or nil for an empty
// tree. Since every successful query splays, Root reports the most
// recently accessed element.
func (t *Tree[E]) Root() *E {
	return t.elem(t.tree.Root())
}

// Insert links elem into the tree and splays it to the root.
//
// Reports whether the insert happened. False means an element comparing
// equal under the index ordering is already present; in that case the
// extant element stays in the tree and elem is left unlinked.
//
// Inserting an element that is already linked into a tree of this index
// is a contract violation and panics.
func (t *Tree[E]) Insert(elem *E) bool {
	return t.tree.Insert(t.byElem(elem), t.cfg.NodeOf(elem))
}

// Extend inserts all given elements, skipping duplicates.
func (t *Tree[E]) Extend(elems ...*E) {
	for _, e := range elems {
		t.Insert(e)
	}
}

// Find returns the element comparing equal to elem, or nil. The match is
// splayed to the root; a near miss still splays, so repeated probes near
// the same key amortize cheaply.
func (t *Tree[E]) Find(elem *E) *E {
	return t.elem(t.tree.Find(t.byElem(elem)))
}

// FindBy returns the element matched by cmp, or nil. cmp receives a
// candidate element and reports whether the wanted key orders before (<0),
// equal to (0) or after (>0) it. This allows searching the index without
// constructing a full element.
func (t *Tree[E]) FindBy(cmp func(*E) int) *E {
	return t.elem(t.tree.Find(t.byKey(cmp)))
}

// Remove unlinks and returns the element comparing equal to elem, or nil
// if no such element exists. The removed element's link node is cleared;
// the element itself is untouched and stays owned by the caller.
func (t *Tree[E]) Remove(elem *E) *E {
	return t.elem(t.tree.Remove(t.byElem(elem)))
}

// RemoveBy unlinks and returns the element matched by cmp, or nil. See
// FindBy for the comparator contract.
func (t *Tree[E]) RemoveBy(cmp func(*E) int) *E {
	return t.elem(t.tree.Remove(t.byKey(cmp)))
}

// PopRoot unlinks and returns the element at the root, or nil for an
// empty tree. Combined with Min or Max this pops an extreme element
// without a second traversal.
func (t *Tree[E]) PopRoot() *E {
	return t.elem(t.tree.PopRoot())
}

// Min splays the minimum element to the root and returns it, or nil for
// an empty tree.
func (t *Tree[E]) Min() *E {
	return t.elem(t.tree.Min())
}

// Max splays the maximum element to the root and returns it, or nil for
// an empty tree.
func (t *Tree[E]) Max() *E {
	return t.elem(t.tree.Max())
}

// PopMin unlinks and returns the minimum element, or nil for an empty
// tree.
func (t *Tree[E]) PopMin() *E {
	return t.elem(t.tree.PopMin())
}

// PopMax unlinks and returns the maximum element, or nil for an empty
// tree.
func (t *Tree[E]) PopMax() *E {
	return t.elem(t.tree.PopMax())
}

// Engine exposes the underlying erased tree. Intended for visualization
// and host embeddings (see splay/viz and splay/handle); mutating the
// engine directly bypasses the index binding.
func (t *Tree[E]) Engine() *topdown.Tree {
	return &t.tree
}
