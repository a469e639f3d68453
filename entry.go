package easel

import (
	"fmt"
	"math"
	"strings"
)

// Entry is one finalized drawable unit in the scene log: a freehand stroke,
// a parametric shape, or a text annotation. The set of implementations is
// closed; entries are geometry-complete from construction, deep-copyable,
// and mutated only by the resize rescaler.
type Entry interface {
	// Clone returns a deep semantic copy with no shared backing storage.
	Clone() Entry

	// Bounds returns the bounding rectangle of the entry's geometry.
	Bounds() Rect

	// validate reports why the entry cannot be rendered, if it cannot.
	validate() error

	// rescale applies a surface resize: coordinates componentwise by
	// (sx, sy), widths and other isotropic quantities by the mean factor.
	rescale(sx, sy, mean float64)
}

// Stroke is a freehand polyline. It is Open while the gesture that draws
// it is still extending the point list and Closed once finalized.
type Stroke struct {
	Color  RGBA
	Width  float64
	Style  LineStyle
	Points []Point

	open bool
}

// NewStroke starts a new Open stroke at the given point.
func NewStroke(c RGBA, width float64, style LineStyle, start Point) *Stroke {
	if width <= 0 {
		width = 1
	}
	return &Stroke{
		Color:  c,
		Width:  width,
		Style:  style,
		Points: []Point{start},
		open:   true,
	}
}

// Extend appends a point to an Open stroke. Closed strokes are immutable
// and ignore the call.
func (s *Stroke) Extend(p Point) {
	if !s.open {
		return
	}
	s.Points = append(s.Points, p)
}

// Finish marks the stroke Closed. The stored point list stays continuous;
// dashed rendering is derived at draw time, never written back.
func (s *Stroke) Finish() {
	s.open = false
}

// Open reports whether the stroke is still being extended.
func (s *Stroke) Open() bool {
	return s.open
}

// Clone implements Entry.
func (s *Stroke) Clone() Entry {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return &Stroke{
		Color:  s.Color,
		Width:  s.Width,
		Style:  s.Style,
		Points: pts,
		open:   s.open,
	}
}

// Bounds implements Entry.
func (s *Stroke) Bounds() Rect {
	return rectOf(s.Points)
}

func (s *Stroke) validate() error {
	if len(s.Points) == 0 {
		return fmt.Errorf("stroke has no points")
	}
	for _, p := range s.Points {
		if !p.IsFinite() {
			return fmt.Errorf("stroke point %v is not finite", p)
		}
	}
	return nil
}

func (s *Stroke) rescale(sx, sy, mean float64) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].ScaleXY(sx, sy)
	}
	s.Width *= mean
}

// ShapeKind identifies the parametric shape variants.
type ShapeKind int

const (
	ShapeStraightLine ShapeKind = iota
	ShapeCircle
	ShapeRectangle
	ShapeTriangle
)

// String returns the shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeStraightLine:
		return "line"
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape is a parametric shape defined by the gesture's start and end
// positions plus kind-specific derived geometry computed at construction:
//
//   - StraightLine: Outline holds the 2-point segment.
//   - Circle: Radius is the start-to-end distance and Outline is a fixed
//     64-segment boundary ring centered on Start.
//   - Rectangle: Min/W/H are the normalized bounds; Outline is the closed
//     corner ring.
//   - Triangle: isosceles with apex at Start, base on the end's Y level
//     centered under the apex with half-width End.X-Start.X; Outline is the
//     closed 4-point ring.
type Shape struct {
	Kind  ShapeKind
	Color RGBA
	Width float64
	Style LineStyle
	Start Point
	End   Point

	// Derived geometry, valid for the kinds noted above.
	Radius  float64
	Min     Point
	W, H    float64
	Outline []Point
}

// NewShape builds a shape entry with all derived geometry computed.
// Degenerate gestures (zero radius, zero-size rectangle) are valid and
// produce coincident outline points.
func NewShape(kind ShapeKind, c RGBA, width float64, style LineStyle, start, end Point) *Shape {
	if width <= 0 {
		width = 1
	}
	sh := &Shape{
		Kind:  kind,
		Color: c,
		Width: width,
		Style: style,
		Start: start,
		End:   end,
	}
	sh.derive()
	return sh
}

// derive recomputes the kind-specific geometry from Start and End.
func (sh *Shape) derive() {
	switch sh.Kind {
	case ShapeStraightLine:
		sh.Outline = []Point{sh.Start, sh.End}
	case ShapeCircle:
		sh.Radius = sh.Start.Distance(sh.End)
		sh.Outline = CirclePoints(sh.Start, sh.Radius, circleSegments)
	case ShapeRectangle:
		sh.Min = Point{X: math.Min(sh.Start.X, sh.End.X), Y: math.Min(sh.Start.Y, sh.End.Y)}
		sh.W = math.Abs(sh.End.X - sh.Start.X)
		sh.H = math.Abs(sh.End.Y - sh.Start.Y)
		sh.Outline = []Point{
			sh.Min,
			{X: sh.Min.X + sh.W, Y: sh.Min.Y},
			{X: sh.Min.X + sh.W, Y: sh.Min.Y + sh.H},
			{X: sh.Min.X, Y: sh.Min.Y + sh.H},
			sh.Min,
		}
	case ShapeTriangle:
		half := sh.End.X - sh.Start.X
		sh.Outline = []Point{
			sh.Start,
			{X: sh.Start.X - half, Y: sh.End.Y},
			{X: sh.Start.X + half, Y: sh.End.Y},
			sh.Start,
		}
	}
}

// Edges returns the four rectangle edges in drawing order. Dashed
// rectangles restart their arc-length parameterization at each edge's
// start corner, so each edge is dashed independently.
func (sh *Shape) Edges() [4][2]Point {
	a := sh.Min
	b := Point{X: sh.Min.X + sh.W, Y: sh.Min.Y}
	c := Point{X: sh.Min.X + sh.W, Y: sh.Min.Y + sh.H}
	d := Point{X: sh.Min.X, Y: sh.Min.Y + sh.H}
	return [4][2]Point{{a, b}, {b, c}, {c, d}, {d, a}}
}

// Clone implements Entry.
func (sh *Shape) Clone() Entry {
	out := *sh
	out.Outline = make([]Point, len(sh.Outline))
	copy(out.Outline, sh.Outline)
	return &out
}

// Bounds implements Entry.
func (sh *Shape) Bounds() Rect {
	return rectOf(sh.Outline)
}

func (sh *Shape) validate() error {
	if len(sh.Outline) == 0 {
		return fmt.Errorf("%s shape has no outline", sh.Kind)
	}
	for _, p := range sh.Outline {
		if !p.IsFinite() {
			return fmt.Errorf("%s shape point %v is not finite", sh.Kind, p)
		}
	}
	return nil
}

func (sh *Shape) rescale(sx, sy, mean float64) {
	sh.Start = sh.Start.ScaleXY(sx, sy)
	sh.End = sh.End.ScaleXY(sx, sy)
	sh.Width *= mean

	switch sh.Kind {
	case ShapeCircle:
		// The radius scales by the mean factor and the ring is regenerated
		// from the scaled center, so circles stay circular under
		// non-uniform resizes. Other kinds scale pointwise and may
		// distort; that asymmetry is deliberate.
		sh.Radius *= mean
		sh.Outline = CirclePoints(sh.Start, sh.Radius, circleSegments)
	case ShapeRectangle:
		sh.Min = sh.Min.ScaleXY(sx, sy)
		sh.W *= sx
		sh.H *= sy
		for i := range sh.Outline {
			sh.Outline[i] = sh.Outline[i].ScaleXY(sx, sy)
		}
	default:
		for i := range sh.Outline {
			sh.Outline[i] = sh.Outline[i].ScaleXY(sx, sy)
		}
	}
}

// Text is a single-line text annotation. Anchor is the top-left corner of
// the glyph box in surface coordinates; Measured is the glyph bounding box
// captured at commit time.
type Text struct {
	Content  string
	Color    RGBA
	FontSize float64
	Anchor   Point
	Measured Size
}

// NewText builds a text entry. The content is trimmed of surrounding
// whitespace; callers must not commit empty text.
func NewText(content string, c RGBA, fontSize float64, anchor Point, measured Size) *Text {
	return &Text{
		Content:  strings.TrimSpace(content),
		Color:    c,
		FontSize: fontSize,
		Anchor:   anchor,
		Measured: measured,
	}
}

// Clone implements Entry.
func (t *Text) Clone() Entry {
	out := *t
	return &out
}

// Bounds implements Entry. The glyph box extends downward from the anchor
// in the bottom-left-origin surface space.
func (t *Text) Bounds() Rect {
	return Rect{
		MinX: t.Anchor.X,
		MinY: t.Anchor.Y - t.Measured.H,
		MaxX: t.Anchor.X + t.Measured.W,
		MaxY: t.Anchor.Y,
	}
}

func (t *Text) validate() error {
	if t.Content == "" {
		return fmt.Errorf("text entry is empty")
	}
	if !t.Anchor.IsFinite() || t.FontSize <= 0 {
		return fmt.Errorf("text entry has invalid placement")
	}
	return nil
}

// rescale scales the anchor and font size by the mean factor; the glyph
// box is re-measured by the rescaler afterwards.
func (t *Text) rescale(_, _, mean float64) {
	t.Anchor = t.Anchor.Mul(mean)
	t.FontSize *= mean
}
