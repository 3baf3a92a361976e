/*
Package topdown implements the self-adjusting core of the splay module.

The implementation is deliberately not generic. It operates on bare link
nodes and a dynamically dispatched comparator, so that one copy of the
rotation code serves every index type a client defines. The generic
`splay.Tree` façade erases its element types into a Comparator closure
before calling into this package; keeping the splay loop free of type
parameters is what keeps code size independent of the number of indices.

The algorithm is the "simple top-down splay" from Sleator and Tarjan,
Self-Adjusting Binary Search Trees (JACM 32/3, 1985). Every access —
including failed lookups and removals — restructures the tree, which is
what yields the amortized O(log n) bound.

Trees in this package do not own their nodes. Nodes live inside caller
records, the tree only rewires their two child slots. Consequently there
is no allocation anywhere in this package.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package topdown

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
