package easel

import (
	"fmt"
	"testing"
)

func strokeAt(x float64) *Stroke {
	s := NewStroke(Black, 2, StyleSolid, Pt(x, 0))
	s.Finish()
	return s
}

func TestHistoryUndoRedo(t *testing.T) {
	log := NewSceneLog()
	h := NewHistory()

	if h.Undo(log) || h.Redo(log) {
		t.Fatal("empty history reported a successful undo/redo")
	}

	h.Snapshot(log) // before first entry
	log.Append(strokeAt(1))
	h.Snapshot(log) // before second entry
	log.Append(strokeAt(2))

	if !h.Undo(log) {
		t.Fatal("first Undo failed")
	}
	if log.Len() != 1 {
		t.Fatalf("after Undo, Len = %d, want 1", log.Len())
	}
	if !h.Undo(log) {
		t.Fatal("second Undo failed")
	}
	if !log.Empty() {
		t.Fatalf("after second Undo, Len = %d, want 0", log.Len())
	}

	if !h.Redo(log) || log.Len() != 1 {
		t.Fatalf("first Redo gave Len = %d, want 1", log.Len())
	}
	if !h.Redo(log) || log.Len() != 2 {
		t.Fatalf("second Redo gave Len = %d, want 2", log.Len())
	}
	if h.Redo(log) {
		t.Error("redo stack not exhausted")
	}
}

func TestHistorySnapshotClearsRedo(t *testing.T) {
	log := NewSceneLog()
	h := NewHistory()

	h.Snapshot(log)
	log.Append(strokeAt(1))
	h.Undo(log)
	if !h.CanRedo() {
		t.Fatal("no redo after Undo")
	}

	h.Snapshot(log)
	log.Append(strokeAt(5))
	if h.CanRedo() {
		t.Error("redo survived a new snapshot")
	}
}

func TestHistoryDepthLimit(t *testing.T) {
	log := NewSceneLog()
	h := NewHistory()

	for i := 0; i < maxUndoDepth+10; i++ {
		h.Snapshot(log)
		log.Append(strokeAt(float64(i)))
	}

	undos := 0
	for h.Undo(log) {
		undos++
	}
	if undos != maxUndoDepth {
		t.Errorf("performed %d undos, want %d", undos, maxUndoDepth)
	}
	// The oldest snapshots were dropped, so the log bottoms out at the
	// state 10 entries in, not at empty.
	if log.Len() != 10 {
		t.Errorf("after exhausting undo, Len = %d, want 10", log.Len())
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	log := NewSceneLog()
	h := NewHistory()

	s := NewStroke(Black, 2, StyleSolid, Pt(0, 0))
	log.Append(s)
	h.Snapshot(log)
	s.Extend(Pt(50, 50)) // mutate the live entry after the snapshot

	h.Undo(log)
	restored := log.At(0).(*Stroke)
	if len(restored.Points) != 1 {
		t.Errorf("restored stroke has %d points, want 1", len(restored.Points))
	}
}

func TestHistoryRoundTripContent(t *testing.T) {
	log := NewSceneLog()
	h := NewHistory()

	for i := 0; i < 5; i++ {
		h.Snapshot(log)
		log.Append(strokeAt(float64(i * 10)))
	}
	want := fingerprint(log)

	for i := 0; i < 5; i++ {
		h.Undo(log)
	}
	for i := 0; i < 5; i++ {
		h.Redo(log)
	}

	if got := fingerprint(log); got != want {
		t.Errorf("round trip changed the log:\n got  %s\n want %s", got, want)
	}
}

func fingerprint(log *SceneLog) string {
	out := ""
	for _, e := range log.All() {
		out += fmt.Sprintf("%v;", e.Bounds())
	}
	return out
}
