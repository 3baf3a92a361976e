package splay

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unsafe"

	"github.com/npillmayer/splay/topdown"
)

// Config describes one index over element type E.
//
// An index is identified by the pair of capabilities below; clients that
// maintain several indices over the same element type define one Config
// per embedded node field.
type Config[E any] struct {
	// NodeOf projects an element to the link node embedded for this index.
	// It must return the address of a Node field of its argument.
	NodeOf func(*E) *Node
	// Compare is the total ordering of the index. It must be a strict weak
	// ordering, consistent across all calls for this index.
	Compare func(a, b *E) int
}

func (cfg Config[E]) validate() error {
	if cfg.NodeOf == nil {
		return ErrInvalidConfig
	}
	if cfg.Compare == nil {
		return ErrInvalidConfig
	}
	return nil
}

// nodeOffset determines the byte offset of the index's embedded node
// within E by probing a zero element. The offset is a property of the
// element layout and is computed once per tree, not per operation.
func nodeOffset[E any](nodeOf func(*E) *Node) (uintptr, error) {
	var probe E
	base := uintptr(unsafe.Pointer(&probe))
	field := uintptr(unsafe.Pointer(nodeOf(&probe)))
	if field < base || field+unsafe.Sizeof(Node{}) > base+unsafe.Sizeof(probe) {
		return 0, ErrBadNodeProjection
	}
	return field - base, nil
}

// elem recovers the owning element from one of its embedded link nodes
// (the reverse direction of Config.NodeOf). This is the one sharp edge of
// the package: it is sound only because every node the engine dereferences
// for this tree was obtained through NodeOf on an *E, so subtracting the
// offset stays within the element's allocation.
func (t *Tree[E]) elem(n *topdown.Node) *E {
	if n == nil {
		return nil
	}
	return (*E)(unsafe.Add(unsafe.Pointer(n), -int(t.offset)))
}

// byElem erases a full-element query into an engine comparator.
func (t *Tree[E]) byElem(e *E) topdown.Comparator {
	return func(n *topdown.Node) int {
		return t.cfg.Compare(e, t.elem(n))
	}
}

// byKey erases a narrow-key query into an engine comparator.
func (t *Tree[E]) byKey(cmp func(*E) int) topdown.Comparator {
	return func(n *topdown.Node) int {
		return cmp(t.elem(n))
	}
}
