/*
Package arena provides a typed bump allocator for tree records.

The splay trees in the parent package are intrusive: they link caller-owned
records and never manage record lifetime. This package is the canonical
collaborator on the other side of that contract — a region allocator whose
records have stable addresses and die in bulk.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena
