package easel

// LineStyle selects between solid and dashed stroking.
type LineStyle int

const (
	StyleSolid LineStyle = iota
	StyleDashed
)

// String returns the style name.
func (s LineStyle) String() string {
	switch s {
	case StyleSolid:
		return "solid"
	case StyleDashed:
		return "dashed"
	default:
		return "unknown"
	}
}

// Mode selects the active drawing tool.
type Mode int

const (
	ModeFreehand Mode = iota
	ModeStraightLine
	ModeCircle
	ModeRectangle
	ModeTriangle
	ModeText
)

// String returns the tool name.
func (m Mode) String() string {
	switch m {
	case ModeFreehand:
		return "freehand"
	case ModeStraightLine:
		return "line"
	case ModeCircle:
		return "circle"
	case ModeRectangle:
		return "rectangle"
	case ModeTriangle:
		return "triangle"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// shapeKind maps a shape tool mode to its entry shape kind.
func (m Mode) shapeKind() (ShapeKind, bool) {
	switch m {
	case ModeStraightLine:
		return ShapeStraightLine, true
	case ModeCircle:
		return ShapeCircle, true
	case ModeRectangle:
		return ShapeRectangle, true
	case ModeTriangle:
		return ShapeTriangle, true
	default:
		return 0, false
	}
}

// Line width presets offered to the host toolbar, in pixels.
const (
	WidthThin   = 2.0
	WidthNormal = 4.0
	WidthThick  = 8.0
)

// DefaultWidth is the stroke width applied by NewSurface until the host
// configures otherwise.
const DefaultWidth = 6.0

// FontSizeFor derives the text-annotation font size from the current width
// preset. Thin widths still produce legible text.
func FontSizeFor(width float64) float64 {
	size := 4 * width
	if size < 12 {
		size = 12
	}
	return size
}
