/*
Package handle backs host embeddings of the splay module.

A foreign-call surface (wasm export, cgo shim, plugin boundary) cannot
hand Go pointers to its host. This package provides the thin adapter
layer such a surface needs: dense opaque handles mapping to host-owned
values — trees, records, arenas — with free-list reuse.

A typical embedding keeps one Table per exposed type:

	var trees   handle.Table[*splay.Tree[Monster]]
	var records handle.Table[*Monster]

	// allocate-tree
	func NewTreeByID() handle.Handle { ... trees.Put(t) ... }
	// insert-record
	func InsertMonster(th handle.Handle, id, health uint32) handle.Handle
	// query-by-field
	func QueryByID(th handle.Handle, id uint32) handle.Handle

The algorithmic core never sees handles; resolution happens entirely in
the adapter.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package handle
