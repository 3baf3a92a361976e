/*
Package splay provides intrusive, multi-index splay trees.

# Intrusive trees

A splay tree in this package never allocates tree nodes of its own.
Instead, client records embed one link structure (Node) per index they
participate in, and the tree operates purely by rewiring those embedded
links. This makes it cheap to maintain several independent orderings —
several indices — over one set of records: a record with two embedded
nodes can be linked into a by-key tree and a by-priority tree at the same
time, with zero per-index heap allocation.

From Sleator & Tarjan, Self-Adjusting Binary Search Trees (1985):

Splay trees keep themselves balanced by access pattern rather than by
stored balance metadata. Every access — including unsuccessful lookups —
rotates the accessed node (or its nearest miss) to the root. Single
operations may degenerate to linear time, but any access sequence is
amortized O(log n), and frequently accessed records stay near the root.

_________________________________________________________________________

The package splits along the lines of type erasure:

▪︎ splay (this package) is the typed façade. Tree[E] binds an element
type to one index by way of a Config[E]: a projection from the element to
its embedded Node, plus the index's ordering. Queries may be phrased
against a full element or, through the *By variants, against any narrower
key.

▪︎ splay/topdown holds the single, non-generic splay engine. Instantiating
Tree[E] for many element types duplicates only thin comparison adapters,
never the rotation code.

Records are owned by the caller — typically an arena; see splay/arena —
and must outlive every tree that links them. The tree hands records back
on removal, it never frees them.

Trees are not safe for concurrent use. Queries splay, so even lookups
mutate the tree structure; callers share a tree across goroutines only
under their own mutual exclusion.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package splay

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SplayError is an error type for the splay module.
type SplayError string

func (e SplayError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged when a tree is created from a Config with
// missing capabilities.
const ErrInvalidConfig = SplayError("invalid index configuration")

// ErrBadNodeProjection is flagged when the NodeOf projection does not point
// into the element it was given.
const ErrBadNodeProjection = SplayError("node projection points outside of element")
