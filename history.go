package easel

// maxUndoDepth bounds the undo stack. When a fresh snapshot would exceed
// it, the oldest snapshot is dropped.
const maxUndoDepth = 50

// History manages undo/redo snapshots of a scene log. Snapshots are deep
// semantic copies with no aliasing against the live log or each other.
// The redo stack is only ever non-empty immediately after an Undo, until
// the next Snapshot invalidates it.
type History struct {
	undo []*SceneLog
	redo []*SceneLog
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Snapshot records the current log state ahead of a mutating action and
// invalidates any redo history.
func (h *History) Snapshot(log *SceneLog) {
	h.undo = append(h.undo, log.Clone())
	if len(h.undo) > maxUndoDepth {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Undo restores the most recent snapshot into live, pushing the current
// content onto the redo stack. It reports false when there is nothing to
// undo.
func (h *History) Undo(live *SceneLog) bool {
	if len(h.undo) == 0 {
		return false
	}
	h.redo = append(h.redo, live.Clone())
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	live.ReplaceAll(top)
	return true
}

// Redo reverses the most recent Undo. It reports false when there is
// nothing to redo.
func (h *History) Redo(live *SceneLog) bool {
	if len(h.redo) == 0 {
		return false
	}
	h.undo = append(h.undo, live.Clone())
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	live.ReplaceAll(top)
	return true
}

// CanUndo reports whether an Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a Redo would succeed.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
