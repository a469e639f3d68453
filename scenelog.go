package easel

import "iter"

// SceneLog is the ordered, append-only store of finalized drawable
// entities. Draw order equals log order equals z-order: later entries
// paint on top. Every entry in the log is geometry-complete; entries are
// mutated in place only by the resize rescaler, truncated wholesale by
// Clear, and replaced wholesale by undo/redo.
type SceneLog struct {
	entries []Entry
}

// NewSceneLog returns an empty scene log.
func NewSceneLog() *SceneLog {
	return &SceneLog{}
}

// Append adds a finalized entry at the top of the z-order.
func (l *SceneLog) Append(e Entry) {
	if e == nil {
		return
	}
	l.entries = append(l.entries, e)
}

// Len returns the number of entries.
func (l *SceneLog) Len() int {
	return len(l.entries)
}

// Empty reports whether the log has no entries.
func (l *SceneLog) Empty() bool {
	return len(l.entries) == 0
}

// At returns the entry at index i in draw order.
func (l *SceneLog) At(i int) Entry {
	return l.entries[i]
}

// All iterates the entries in draw order.
func (l *SceneLog) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Clone returns a deep semantic copy: every entry is cloned, and no
// backing storage is shared with the receiver. Snapshots taken for
// undo/redo and export isolation use this.
func (l *SceneLog) Clone() *SceneLog {
	out := &SceneLog{entries: make([]Entry, len(l.entries))}
	for i, e := range l.entries {
		out.entries[i] = e.Clone()
	}
	return out
}

// ReplaceAll adopts the entries of other, discarding the current content.
// The other log must not be used afterwards; undo/redo hands ownership of
// popped snapshots to the live log through this.
func (l *SceneLog) ReplaceAll(other *SceneLog) {
	l.entries = other.entries
}

// Clear drops all entries.
func (l *SceneLog) Clear() {
	l.entries = nil
}

// Bounds returns the union of all entry bounds, and false when the log is
// empty.
func (l *SceneLog) Bounds() (Rect, bool) {
	if len(l.entries) == 0 {
		return Rect{}, false
	}
	r := l.entries[0].Bounds()
	for _, e := range l.entries[1:] {
		r = r.Union(e.Bounds())
	}
	return r, true
}
