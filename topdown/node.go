package topdown

// Node is the intrusive link structure of a splay tree.
//
// Records participating in an index embed one Node per index. A Node owns
// no memory and carries no payload, it consists of exactly two child
// slots. The zero value is an unlinked node, ready for insertion.
//
// A node that is linked into a tree must not be inserted into another
// tree for the same index until it has been removed; see Tree.Insert.
type Node struct {
	left  *Node
	right *Node
}

// Left returns the left child slot.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child slot.
func (n *Node) Right() *Node { return n.right }

// SetLeft replaces the left child slot.
func (n *Node) SetLeft(child *Node) { n.left = child }

// SetRight replaces the right child slot.
func (n *Node) SetRight(child *Node) { n.right = child }

// IsLinked reports whether the node currently has any child links.
//
// A linked interior node always has at least one non-nil slot, but a leaf
// linked into a tree looks exactly like an unlinked node. IsLinked is
// therefore a necessary, not a sufficient, unlinked-ness check.
func (n *Node) IsLinked() bool { return n.left != nil || n.right != nil }

// walk visits the subtree under n in-order. Returns false if the visitor
// stopped the traversal.
func (n *Node) walk(f func(*Node) bool) bool {
	if n.left != nil && !n.left.walk(f) {
		return false
	}
	if !f(n) {
		return false
	}
	if n.right != nil {
		return n.right.walk(f)
	}
	return true
}
