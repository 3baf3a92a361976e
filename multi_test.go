package splay

import (
	"testing"

	"github.com/npillmayer/splay/arena"
)

// record participates in two independent indices at once.
type record struct {
	x, y int
	byX  Node
	byY  Node
}

func xyTrees(t *testing.T) (*Tree[record], *Tree[record]) {
	t.Helper()
	byX, err := New(Config[record]{
		NodeOf:  func(r *record) *Node { return &r.byX },
		Compare: func(a, b *record) int { return a.x - b.x },
	})
	if err != nil {
		t.Fatalf("New(byX) failed: %v", err)
	}
	byY, err := New(Config[record]{
		NodeOf:  func(r *record) *Node { return &r.byY },
		Compare: func(a, b *record) int { return a.y - b.y },
	})
	if err != nil {
		t.Fatalf("New(byY) failed: %v", err)
	}
	return byX, byY
}

func TestTwoIndicesOverSameRecords(t *testing.T) {
	byX, byY := xyTrees(t)
	recs := arena.New[record](0)
	for _, xy := range [][2]int{{3, 9}, {1, 2}, {7, 5}} {
		r := recs.Alloc(record{x: xy[0], y: xy[1]})
		byX.Insert(r)
		byY.Insert(r)
	}
	if got := byX.FindBy(func(r *record) int { return 3 - r.x }); got == nil || got.y != 9 {
		t.Errorf("x-index lookup of x=3 should yield the (3,9) record")
	}
	if got := byY.FindBy(func(r *record) int { return 5 - r.y }); got == nil || got.x != 7 {
		t.Errorf("y-index lookup of y=5 should yield the (7,5) record")
	}
}

func TestIndexIndependenceOnRemoval(t *testing.T) {
	byX, byY := xyTrees(t)
	recs := arena.New[record](0)
	a := recs.Alloc(record{x: 3, y: 9})
	b := recs.Alloc(record{x: 1, y: 2})
	for _, r := range []*record{a, b} {
		byX.Insert(r)
		byY.Insert(r)
	}

	removed := byX.RemoveBy(func(r *record) int { return 3 - r.x })
	if removed != a {
		t.Fatalf("removing x=3 should return the (3,9) record")
	}
	if byX.FindBy(func(r *record) int { return 3 - r.x }) != nil {
		t.Errorf("x-index should no longer find x=3")
	}
	// the y-index must be oblivious to the x-side removal
	if got := byY.FindBy(func(r *record) int { return 9 - r.y }); got != a {
		t.Errorf("y-index lost the (3,9) record after x-side removal")
	}
	if got := byY.FindBy(func(r *record) int { return 2 - r.y }); got != b {
		t.Errorf("y-index lost the (1,2) record")
	}
	if byY.Len() != 2 {
		t.Errorf("y-index should still hold 2 records, has %d", byY.Len())
	}
}

func TestIndexIndependenceOnInsertOrder(t *testing.T) {
	byX, byY := xyTrees(t)
	recs := arena.New[record](0)
	// x ascending, y descending: the two trees end up with opposite shapes
	for i := range 20 {
		r := recs.Alloc(record{x: i, y: 20 - i})
		byX.Insert(r)
		byY.Insert(r)
	}
	prevX := -1
	byX.ForEach(func(r *record) {
		if r.x <= prevX {
			t.Errorf("x-index out of order at %d", r.x)
		}
		prevX = r.x
	})
	prevY := -1
	byY.ForEach(func(r *record) {
		if r.y <= prevY {
			t.Errorf("y-index out of order at %d", r.y)
		}
		prevY = r.y
	})
}
