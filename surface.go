package easel

import (
	"time"

	"github.com/gogpu/easel/internal/typeface"
)

// defaultFocusDelay is how long the deferred focus callback waits for the
// host to attach its text editor widget.
const defaultFocusDelay = 100 * time.Millisecond

// Surface is the drawing-state engine for one canvas. It consumes pointer
// events, tool-configuration changes, resize notifications, and commands
// from the host UI layer, and owns the scene log, the gesture state
// machine, and undo/redo history.
//
// Surface is not safe for concurrent use: all calls must arrive on one
// logical thread in event order. See ExportPNG for the one operation whose
// heavy part may be moved off that thread.
type Surface struct {
	log     *SceneLog
	history *History

	size       Size
	background RGBA

	// Tool configuration.
	color      RGBA
	width      float64
	style      LineStyle
	mode       Mode
	fontFamily string

	measure    MeasureFunc
	onRedraw   func()
	onFocus    func(*TextSession)
	focusDelay time.Duration

	// Transient gesture state. At most one of active/preview/session is
	// non-nil at a time; gestures are serialized by the host event loop.
	active       *Stroke
	preview      *Shape
	gestureStart Point
	lastInside   Point
	session      *TextSession
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithBackground sets the canvas background color used by export.
func WithBackground(c RGBA) SurfaceOption {
	return func(s *Surface) { s.background = c }
}

// WithColor sets the initial drawing color.
func WithColor(c RGBA) SurfaceOption {
	return func(s *Surface) { s.color = c }
}

// WithWidth sets the initial stroke width in pixels.
func WithWidth(w float64) SurfaceOption {
	return func(s *Surface) {
		if w > 0 {
			s.width = w
		}
	}
}

// WithStyle sets the initial line style.
func WithStyle(st LineStyle) SurfaceOption {
	return func(s *Surface) { s.style = st }
}

// WithMode sets the initial tool mode.
func WithMode(m Mode) SurfaceOption {
	return func(s *Surface) { s.mode = m }
}

// WithFontFamily sets the preferred font family for text annotations.
// Resolution falls back to an embedded face, and finally to a placeholder
// box, when the family cannot be loaded.
func WithFontFamily(name string) SurfaceOption {
	return func(s *Surface) { s.fontFamily = name }
}

// WithMeasure overrides the text measurement function. Mainly a test seam;
// the default measures through the same font chain the exporter draws
// with.
func WithMeasure(m MeasureFunc) SurfaceOption {
	return func(s *Surface) { s.measure = m }
}

// WithRedraw registers the host's full-redraw trigger, invoked after
// finalize, undo, redo, clear, and rescale.
func WithRedraw(fn func()) SurfaceOption {
	return func(s *Surface) { s.onRedraw = fn }
}

// WithFocus registers the deferred focus callback for text sessions.
func WithFocus(fn func(*TextSession)) SurfaceOption {
	return func(s *Surface) { s.onFocus = fn }
}

// WithFocusDelay overrides the deferred focus delay.
func WithFocusDelay(d time.Duration) SurfaceOption {
	return func(s *Surface) {
		if d > 0 {
			s.focusDelay = d
		}
	}
}

// NewSurface creates a drawing surface of the given size in surface
// coordinates (bottom-left origin).
func NewSurface(width, height float64, opts ...SurfaceOption) *Surface {
	s := &Surface{
		log:        NewSceneLog(),
		history:    NewHistory(),
		size:       Size{W: width, H: height},
		background: White,
		color:      Black,
		width:      DefaultWidth,
		style:      StyleSolid,
		mode:       ModeFreehand,
		focusDelay: defaultFocusDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.measure == nil {
		s.measure = s.measureText
	}
	return s
}

// measureText measures through the exporter's font chain so committed
// sizes match rendered sizes. With no renderable font it estimates the
// placeholder box instead.
func (s *Surface) measureText(content string, fontSize float64) Size {
	src, err := typeface.Resolve(s.fontFamily)
	if err != nil {
		Logger().Debug("font resolution failed", "family", s.fontFamily, "err", err)
	}
	if src == nil {
		return Size{W: 0.6 * fontSize * float64(len([]rune(content))), H: 1.2 * fontSize}
	}
	w, h := src.Measure(content, fontSize)
	return Size{W: w, H: h}
}

// Log exposes the scene log for the host's redraw pass. The host must not
// mutate it.
func (s *Surface) Log() *SceneLog {
	return s.log
}

// Size returns the current surface size.
func (s *Surface) Size() Size {
	return s.size
}

// SetColor sets the drawing color for subsequent entries.
func (s *Surface) SetColor(c RGBA) {
	s.color = c
}

// SetWidth sets the stroke width for subsequent entries. Non-positive
// widths are ignored.
func (s *Surface) SetWidth(w float64) {
	if w > 0 {
		s.width = w
	}
}

// SetStyle sets the line style for subsequent entries.
func (s *Surface) SetStyle(st LineStyle) {
	s.style = st
}

// SetMode selects the active tool.
func (s *Surface) SetMode(m Mode) {
	s.mode = m
}

// HasDrawings reports whether the log has any content.
func (s *Surface) HasDrawings() bool {
	return !s.log.Empty()
}

// CanUndo reports whether Undo would succeed.
func (s *Surface) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (s *Surface) CanRedo() bool {
	return s.history.CanRedo()
}

// DrawingBounds returns the union of all entry bounds, and false when the
// canvas is empty.
func (s *Surface) DrawingBounds() (Rect, bool) {
	return s.log.Bounds()
}

// Preview returns the transient shape preview for the in-progress gesture,
// if any. The preview is recomputed on every pointer move and is never a
// scene log entry; the host draws it on top of the log.
func (s *Surface) Preview() (*Shape, bool) {
	if s.preview == nil {
		return nil, false
	}
	return s.preview, true
}

// TextSession returns the active text-edit session, if any.
func (s *Surface) TextSession() (*TextSession, bool) {
	if s.session == nil {
		return nil, false
	}
	return s.session, true
}

func (s *Surface) inBounds(p Point) bool {
	return p.X >= 0 && p.X <= s.size.W && p.Y >= 0 && p.Y <= s.size.H
}

// PointerDown begins a gesture. It reports whether the engine consumed the
// event: presses outside the canvas bounds, or inside an active text
// editor's region, are not consumed.
func (s *Surface) PointerDown(p Point) bool {
	if !s.inBounds(p) {
		return false
	}
	if s.session != nil {
		if s.session.Region().Contains(p) {
			// The press belongs to the host's editor widget.
			return false
		}
		// A press elsewhere ends the session before the new gesture.
		s.CommitText()
	}

	switch s.mode {
	case ModeFreehand:
		s.history.Snapshot(s.log)
		s.active = NewStroke(s.color, s.width, s.style, p)
		s.log.Append(s.active)
	case ModeText:
		s.history.Snapshot(s.log)
		s.session = newTextSession(p, FontSizeFor(s.width), s.color, s.measure)
		s.session.scheduleFocus(s.focusDelay, s.onFocus)
	default:
		kind, ok := s.mode.shapeKind()
		if !ok {
			return false
		}
		s.history.Snapshot(s.log)
		s.gestureStart = p
		s.preview = NewShape(kind, s.color, s.width, s.style, p, p)
	}
	s.lastInside = p
	return true
}

// PointerMove extends the active gesture. Positions outside the canvas
// bounds are ignored; the gesture stays open but does not extend. Move
// handling is cheap: one point append for freehand, one preview rebuild
// for shapes.
func (s *Surface) PointerMove(p Point) bool {
	if !s.inBounds(p) {
		return false
	}
	switch {
	case s.active != nil:
		s.active.Extend(p)
	case s.preview != nil:
		// Rebuild from the preview's own config: a tool change mid-drag
		// must not restyle the gesture in progress.
		s.preview = NewShape(s.preview.Kind, s.preview.Color, s.preview.Width, s.preview.Style, s.gestureStart, p)
	default:
		return false
	}
	s.lastInside = p
	return true
}

// PointerUp finalizes the active gesture. Freehand strokes are marked
// Closed; shape gestures append their finalized entry, degenerate ones
// included. An up position outside the bounds falls back to the last
// in-bounds position.
func (s *Surface) PointerUp(p Point) bool {
	pos := p
	if !s.inBounds(p) {
		pos = s.lastInside
	}
	switch {
	case s.active != nil:
		s.active.Finish()
		s.active = nil
	case s.preview != nil:
		pv := s.preview
		s.preview = nil
		s.log.Append(NewShape(pv.Kind, pv.Color, pv.Width, pv.Style, s.gestureStart, pos))
	default:
		return false
	}
	s.redraw()
	return true
}

// CommitText ends the active text session. Non-empty trimmed content
// becomes a Text entry measured at the session's font size; empty content
// is discarded silently. Reports whether an entry was appended.
func (s *Surface) CommitText() bool {
	sess := s.session
	if sess == nil {
		return false
	}
	s.session = nil
	sess.dismiss()

	t := NewText(sess.Text(), sess.color, sess.fontSize, sess.anchor, Size{})
	if t.Content == "" {
		return false
	}
	t.Measured = s.measure(t.Content, t.FontSize)
	s.log.Append(t)
	s.redraw()
	return true
}

// CancelText discards the active text session without committing.
func (s *Surface) CancelText() {
	if s.session == nil {
		return
	}
	s.session.dismiss()
	s.session = nil
}

// Clear empties the canvas. An open text session is committed (non-empty)
// or discarded (empty) first, so the log never holds a partial edit. The
// truncation itself is snapshotted only when there is content to restore.
func (s *Surface) Clear() {
	s.CommitText()
	s.active = nil
	s.preview = nil
	if !s.log.Empty() {
		s.history.Snapshot(s.log)
		s.log.Clear()
	}
	s.redraw()
}

// Undo restores the scene log to its most recent snapshot. Any active text
// session is committed or discarded first. Reports false when there is
// nothing to undo.
func (s *Surface) Undo() bool {
	s.CommitText()
	s.active = nil
	s.preview = nil
	if !s.history.Undo(s.log) {
		return false
	}
	s.redraw()
	return true
}

// Redo reverses the most recent Undo. Reports false when there is nothing
// to redo.
func (s *Surface) Redo() bool {
	s.CommitText()
	if !s.history.Redo(s.log) {
		return false
	}
	s.redraw()
	return true
}

// Resize notifies the engine of a surface size change. Entry geometry is
// rescaled per RescaleLog; the stored size is always updated, so rapid
// resize sequences apply sequentially against the most recent size.
func (s *Surface) Resize(newSize Size) {
	old := s.size
	s.size = newSize
	if RescaleLog(s.log, old, newSize, s.measure) {
		s.redraw()
	}
}

// ExportPNG renders the scene log to a PNG file at the surface size times
// an integer scale factor. The log is deep-cloned before rendering, so the
// raster and encode work observes a consistent snapshot even if the host
// runs it off the interactive thread.
func (s *Surface) ExportPNG(path string, scale int) error {
	snap := s.log.Clone()
	img, err := Export(snap, s.size, scale, ExportFont(s.fontFamily), ExportBackground(s.background))
	if err != nil {
		return err
	}
	return writePNG(path, img)
}

func (s *Surface) redraw() {
	if s.onRedraw != nil {
		s.onRedraw()
	}
}
