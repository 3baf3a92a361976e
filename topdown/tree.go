package topdown

// Comparator compares an abstract key to the record behind a node. The
// result is negative if the key orders before the record, zero if they
// are equal under the index ordering, and positive otherwise.
//
// The comparator is handed in per call and never stored. Implementations
// are expected to recover the record from the node (the intrusive
// back-reference) before comparing; the engine itself never does any
// type-specific work.
type Comparator func(*Node) int

// Constant comparators that never match any node; they drive a splay all
// the way to an extreme of the tree.
func cmpBefore(*Node) int { return -1 }
func cmpAfter(*Node) int  { return 1 }

// Tree is one binary search tree of link nodes. It holds nothing but the
// root link; there is no size counter and no balance metadata. The zero
// value is an empty tree ready for use.
//
// A tree must be accessed by one goroutine at a time. Queries splay and
// therefore mutate structure, so there are no read-only operations.
type Tree struct {
	root *Node
}

// IsEmpty reports whether the tree contains no nodes.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// Root returns the node currently at the root, or nil.
func (t *Tree) Root() *Node { return t.root }

// Find splays the comparator's best match to the root and returns the new
// root iff it compares equal. A near miss still splays; repeated probes
// near the same key amortize cheaply.
func (t *Tree) Find(cmp Comparator) *Node {
	if t.root == nil {
		return nil
	}
	root := t.splay(t.root, cmp)
	if cmp(root) == 0 {
		return root
	}
	return nil
}

// Insert links node into the tree and splays it to the root. Reports
// whether the insert happened; false means a node comparing equal is
// already present, in which case the tree keeps the extant node and the
// argument stays unlinked.
//
// The node's slots must be empty. Inserting a node that is still linked
// into a tree of the same index is a caller contract violation and
// panics.
func (t *Tree) Insert(cmp Comparator, node *Node) bool {
	assert(node.left == nil && node.right == nil,
		"topdown: inserted node is already linked into a tree")

	if t.root == nil {
		t.root = node
		return true
	}
	root := t.splay(t.root, cmp)
	switch c := cmp(root); {
	case c == 0:
		return false
	case c < 0:
		node.left = root.left
		node.right = root
		root.left = nil
	default:
		node.right = root.right
		node.left = root
		root.right = nil
	}
	t.root = node
	return true
}

// Remove splays on the comparator and, if the new root compares equal,
// unlinks and returns it. Returns nil if no node matches; the splay's
// restructuring is kept even then.
//
// The removed node's slots are cleared before it is returned.
func (t *Tree) Remove(cmp Comparator) *Node {
	if t.root == nil {
		return nil
	}
	node := t.splay(t.root, cmp)
	if cmp(node) != 0 {
		return nil
	}
	t.detachRoot(node, cmp)
	return node
}

// PopRoot unlinks and returns whatever node currently sits at the root,
// without a preceding search. Used after Min/Max to pop in one step.
func (t *Tree) PopRoot() *Node {
	node := t.root
	if node == nil {
		return nil
	}
	t.detachRoot(node, cmpAfter)
	return node
}

// detachRoot removes the tree's root node and joins the two subtrees.
//
// cmp must order every node of the left subtree as Less (it either is the
// key just splayed to the root, or a constant always-after comparator).
// Splaying the left subtree with it moves the subtree's maximum up, which
// then has a free right slot for the detached root's right subtree.
func (t *Tree) detachRoot(node *Node, cmp Comparator) {
	if node.left != nil {
		right := node.right
		t.splay(node.left, cmp).right = right
	} else {
		t.root = node.right
	}
	node.left = nil
	node.right = nil
}

// Min splays the minimum node to the root and returns it, or nil for an
// empty tree.
func (t *Tree) Min() *Node {
	if t.root == nil {
		return nil
	}
	return t.splay(t.root, cmpBefore)
}

// Max splays the maximum node to the root and returns it, or nil for an
// empty tree.
func (t *Tree) Max() *Node {
	if t.root == nil {
		return nil
	}
	return t.splay(t.root, cmpAfter)
}

// PopMin unlinks and returns the minimum node, or nil for an empty tree.
func (t *Tree) PopMin() *Node {
	t.Min()
	return t.PopRoot()
}

// PopMax unlinks and returns the maximum node, or nil for an empty tree.
func (t *Tree) PopMax() *Node {
	t.Max()
	return t.PopRoot()
}

// Walk visits all nodes in-order. Traversal stops early if f returns
// false. Walk does not splay.
func (t *Tree) Walk(f func(*Node) bool) {
	if t.root != nil {
		t.root.walk(f)
	}
}

// splay moves the comparator's best match to the top of the subtree
// rooted in current and installs it as the tree's root.
//
// This is the simple top-down variant: while descending, nodes passed on
// the way are hung off two accumulator chains (`left` collects nodes less
// than the key, `right` collects nodes greater), with a zig-zig rotation
// whenever the search direction repeats. A local sentinel node anchors
// both chains so the loop needs no nil checks on the accumulators; the
// sentinel never becomes reachable from the resulting tree.
func (t *Tree) splay(current *Node, cmp Comparator) *Node {
	var null Node
	left, right := &null, &null

loop:
	for {
		switch c := cmp(current); {
		case c < 0:
			child := current.left
			if child == nil {
				break loop
			}
			if cmp(child) < 0 { // zig-zig: rotate right
				current.left = child.right
				child.right = current
				current = child
				child = current.left
				if child == nil {
					break loop
				}
			}
			right.left = current // link right
			right = current
			current = child
		case c > 0:
			child := current.right
			if child == nil {
				break loop
			}
			if cmp(child) > 0 { // zig-zig: rotate left
				current.right = child.left
				child.left = current
				current = child
				child = current.right
				if child == nil {
					break loop
				}
			}
			left.right = current // link left
			left = current
			current = child
		default:
			break loop
		}
	}

	// Reassemble: the accumulated chains adopt current's subtrees, then
	// become current's children.
	left.right = current.left
	right.left = current.right
	current.left = null.right
	current.right = null.left
	t.root = current
	return current
}
