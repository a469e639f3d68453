package easel

import (
	"sync/atomic"
	"time"
)

// Minimum editable region for a text session, so an empty editor is still
// clickable.
const (
	minEditorWidth  = 120.0
	minEditorHeight = 1.5 // multiple of the font size
)

// TextSession is the transient state of one text annotation being edited.
// At most one session exists per surface at a time; it becomes a Text
// entry on commit and leaves no trace on discard. The host binds its text
// editor widget to the session and mirrors the typed content in with
// SetText.
type TextSession struct {
	anchor   Point
	fontSize float64
	color    RGBA
	measure  MeasureFunc

	text string

	dismissed  atomic.Bool
	focusTimer *time.Timer
}

func newTextSession(anchor Point, fontSize float64, c RGBA, measure MeasureFunc) *TextSession {
	return &TextSession{
		anchor:   anchor,
		fontSize: fontSize,
		color:    c,
		measure:  measure,
	}
}

// Anchor returns the top-left corner of the editor in surface coordinates.
func (ts *TextSession) Anchor() Point {
	return ts.anchor
}

// FontSize returns the font size the annotation will be committed at.
func (ts *TextSession) FontSize() float64 {
	return ts.fontSize
}

// SetText mirrors the host editor's current content into the session.
func (ts *TextSession) SetText(v string) {
	ts.text = v
}

// Text returns the session's current content, untrimmed.
func (ts *TextSession) Text() string {
	return ts.text
}

// Region returns the editable region. Presses inside it belong to the
// editor; presses outside it commit or discard the session. The region
// grows with the typed content but never shrinks below a usable minimum.
func (ts *TextSession) Region() Rect {
	w, h := minEditorWidth, minEditorHeight*ts.fontSize
	if ts.measure != nil && ts.text != "" {
		m := ts.measure(ts.text, ts.fontSize)
		if m.W > w {
			w = m.W
		}
		if m.H > h {
			h = m.H
		}
	}
	return Rect{
		MinX: ts.anchor.X,
		MinY: ts.anchor.Y - h,
		MaxX: ts.anchor.X + w,
		MaxY: ts.anchor.Y,
	}
}

// scheduleFocus arms the deferred focus callback. The delay gives the host
// time to attach its editor widget; the callback is a single-shot
// continuation that must tolerate the session having been dismissed before
// it fires.
func (ts *TextSession) scheduleFocus(delay time.Duration, fn func(*TextSession)) {
	if fn == nil {
		return
	}
	ts.focusTimer = time.AfterFunc(delay, func() {
		if ts.dismissed.Load() {
			return
		}
		fn(ts)
	})
}

// dismiss ends the session's lifetime, cancelling any pending focus
// callback. Safe to call more than once.
func (ts *TextSession) dismiss() {
	ts.dismissed.Store(true)
	if ts.focusTimer != nil {
		ts.focusTimer.Stop()
	}
}
