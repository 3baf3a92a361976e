package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/splay"
	"github.com/npillmayer/splay/arena"
	"github.com/npillmayer/splay/handle"
)

func TestPutGetDrop(t *testing.T) {
	var tb handle.Table[string]
	h1 := tb.Put("alpha")
	h2 := tb.Put("beta")
	require.NotEqual(t, handle.Invalid, h1)
	require.NotEqual(t, h1, h2)

	v, ok := tb.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	assert.True(t, tb.Drop(h1))
	_, ok = tb.Get(h1)
	assert.False(t, ok, "dropped handle must not resolve")
	assert.False(t, tb.Drop(h1), "double drop must report false")
	assert.Equal(t, 1, tb.Len())
}

func TestInvalidAndOutOfRangeHandles(t *testing.T) {
	var tb handle.Table[int]
	_, ok := tb.Get(handle.Invalid)
	assert.False(t, ok)
	_, ok = tb.Get(handle.Handle(99))
	assert.False(t, ok)
	assert.False(t, tb.Drop(handle.Handle(-3)))
}

func TestDroppedSlotsAreReused(t *testing.T) {
	var tb handle.Table[int]
	h1 := tb.Put(1)
	tb.Put(2)
	tb.Drop(h1)
	h3 := tb.Put(3)
	assert.Equal(t, h1, h3, "free-listed slot should be reused")
	v, ok := tb.Get(h3)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

// monster mirrors the element type a host embedding would expose through
// opaque handles: one record, two independent indices.
type monster struct {
	id       uint32
	health   uint32
	byID     splay.Node
	byHealth splay.Node
}

// embedding bundles what a foreign-call surface would hold behind its
// exported functions: tables for trees and records, plus the record arena.
type embedding struct {
	trees    handle.Table[*splay.Tree[monster]]
	monsters handle.Table[*monster]
	records  *arena.Arena[monster]
}

func newEmbedding(t *testing.T) (*embedding, handle.Handle, handle.Handle) {
	t.Helper()
	emb := &embedding{records: arena.New[monster](0)}
	byID, err := splay.New(splay.Config[monster]{
		NodeOf:  func(m *monster) *splay.Node { return &m.byID },
		Compare: func(a, b *monster) int { return int(a.id) - int(b.id) },
	})
	require.NoError(t, err)
	byHealth, err := splay.New(splay.Config[monster]{
		NodeOf:  func(m *monster) *splay.Node { return &m.byHealth },
		Compare: func(a, b *monster) int { return int(a.health) - int(b.health) },
	})
	require.NoError(t, err)
	return emb, emb.trees.Put(byID), emb.trees.Put(byHealth)
}

func (emb *embedding) newMonster(id, health uint32, trees ...handle.Handle) handle.Handle {
	m := emb.records.Alloc(monster{id: id, health: health})
	for _, th := range trees {
		if tree, ok := emb.trees.Get(th); ok {
			tree.Insert(m)
		}
	}
	return emb.monsters.Put(m)
}

func (emb *embedding) queryByID(th handle.Handle, id uint32) *monster {
	tree, ok := emb.trees.Get(th)
	if !ok {
		return nil
	}
	return tree.FindBy(func(m *monster) int { return int(id) - int(m.id) })
}

func TestHostEmbeddingRoundTrip(t *testing.T) {
	emb, byID, byHealth := newEmbedding(t)
	mh := emb.newMonster(7, 100, byID, byHealth)
	emb.newMonster(3, 250, byID, byHealth)

	found := emb.queryByID(byID, 7)
	require.NotNil(t, found)
	assert.EqualValues(t, 100, found.health)

	wanted, ok := emb.monsters.Get(mh)
	require.True(t, ok)
	assert.Same(t, wanted, found, "handle and query must resolve to the same record")

	healthTree, ok := emb.trees.Get(byHealth)
	require.True(t, ok)
	weakest := healthTree.Min()
	require.NotNil(t, weakest)
	assert.EqualValues(t, 7, weakest.id)
}
