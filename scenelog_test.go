package easel

import "testing"

func TestSceneLogAppendOrder(t *testing.T) {
	log := NewSceneLog()
	if !log.Empty() {
		t.Error("new log is not Empty")
	}

	a := NewStroke(Red, 2, StyleSolid, Pt(0, 0))
	b := NewShape(ShapeCircle, Blue, 2, StyleSolid, Pt(5, 5), Pt(8, 5))
	log.Append(a)
	log.Append(b)
	log.Append(nil) // ignored

	if log.Len() != 2 {
		t.Fatalf("Len = %d, want 2", log.Len())
	}
	if log.At(0) != Entry(a) || log.At(1) != Entry(b) {
		t.Error("entries out of draw order")
	}

	var got []int
	for i := range log.All() {
		got = append(got, i)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("All yielded indices %v", got)
	}
}

func TestSceneLogClone(t *testing.T) {
	log := NewSceneLog()
	s := NewStroke(Black, 2, StyleSolid, Pt(1, 1))
	log.Append(s)

	snap := log.Clone()
	s.Extend(Pt(9, 9))
	log.Append(NewStroke(Black, 2, StyleSolid, Pt(0, 0)))

	if snap.Len() != 1 {
		t.Fatalf("snapshot Len = %d, want 1", snap.Len())
	}
	if cs := snap.At(0).(*Stroke); len(cs.Points) != 1 {
		t.Errorf("snapshot stroke has %d points, want 1", len(cs.Points))
	}
}

func TestSceneLogClear(t *testing.T) {
	log := NewSceneLog()
	log.Append(NewStroke(Black, 2, StyleSolid, Pt(0, 0)))
	log.Clear()
	if !log.Empty() {
		t.Error("log not empty after Clear")
	}
	if _, ok := log.Bounds(); ok {
		t.Error("empty log reported bounds")
	}
}

func TestSceneLogBounds(t *testing.T) {
	log := NewSceneLog()
	log.Append(NewShape(ShapeRectangle, Black, 2, StyleSolid, Pt(10, 10), Pt(30, 20)))
	log.Append(NewShape(ShapeRectangle, Black, 2, StyleSolid, Pt(0, 15), Pt(5, 50)))

	b, ok := log.Bounds()
	if !ok {
		t.Fatal("Bounds reported empty")
	}
	want := Rect{MinX: 0, MinY: 10, MaxX: 30, MaxY: 50}
	if b != want {
		t.Errorf("Bounds = %v, want %v", b, want)
	}
}
