package easel

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/easel/internal/raster"
	"github.com/gogpu/easel/internal/typeface"
)

// ExportOption configures Export.
type ExportOption func(*exportOptions)

type exportOptions struct {
	fontFamily string
	background RGBA
}

// ExportFont sets the preferred font family for text entries. The same
// fallback chain as on-screen measurement applies.
func ExportFont(family string) ExportOption {
	return func(o *exportOptions) { o.fontFamily = family }
}

// ExportBackground overrides the background fill. The default is opaque
// white.
func ExportBackground(c RGBA) ExportOption {
	return func(o *exportOptions) { o.background = c }
}

// Export renders a scene log to an offscreen bitmap of base size times an
// integer scale factor. It is a pure function of the log, the base size,
// and the options: identical inputs produce pixel-identical output, and
// the same content is rendered at proportionally higher density for
// larger scale factors rather than being pixel-doubled.
//
// Geometry is converted from the surface's bottom-left origin to the
// raster top-left origin. An entry that cannot be rendered is skipped
// with a warning; export continues for the remaining entries. Only
// invalid arguments fail the whole call.
func Export(log *SceneLog, base Size, scale int, opts ...ExportOption) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("export scale must be a positive integer, got %d", scale)
	}
	if !base.IsPositive() {
		return nil, fmt.Errorf("export base size must be positive, got %gx%g", base.W, base.H)
	}
	o := exportOptions{background: White}
	for _, opt := range opts {
		opt(&o)
	}

	w := int(math.Ceil(base.W)) * scale
	h := int(math.Ceil(base.H)) * scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background.Color()), image.Point{}, draw.Src)

	p := raster.NewPainter(img)
	r := &entryRenderer{
		painter:    p,
		base:       base,
		scale:      float64(scale),
		fontFamily: o.fontFamily,
	}
	for i, e := range log.All() {
		if err := r.render(e); err != nil {
			Logger().Warn("skipping unrenderable entry", "index", i, "err", err)
		}
	}
	return img, nil
}

// writePNG encodes the image to a file. A failed write is reported as an
// error, never a panic.
func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding export: %w", err)
	}
	return f.Close()
}

// entryRenderer holds per-export state: the coordinate transform and the
// lazily resolved font source.
type entryRenderer struct {
	painter    *raster.Painter
	base       Size
	scale      float64
	fontFamily string

	font      *typeface.Source
	fontTried bool
}

// xform maps a surface point to raster coordinates: scale up and flip the
// Y axis.
func (r *entryRenderer) xform(p Point) raster.Point {
	return raster.Point{X: p.X * r.scale, Y: (r.base.H - p.Y) * r.scale}
}

func (r *entryRenderer) xformAll(pts []Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = r.xform(p)
	}
	return out
}

func (r *entryRenderer) render(e Entry) error {
	if err := e.validate(); err != nil {
		return err
	}
	switch v := e.(type) {
	case *Stroke:
		r.renderPath(v.Points, v.Width, v.Style, v.Color, raster.CapRound, raster.JoinRound)
	case *Shape:
		r.renderShape(v)
	case *Text:
		return r.renderText(v)
	default:
		return fmt.Errorf("unknown entry type %T", e)
	}
	return nil
}

// renderPath draws a polyline entry, expanding dashes in surface space
// first so dash placement is identical across scale factors and matches
// the on-screen dash generator. Degenerate paths collapse to a dot.
func (r *entryRenderer) renderPath(pts []Point, width float64, style LineStyle, col RGBA, lineCap raster.Cap, join raster.Join) {
	if isDegenerate(pts) {
		r.painter.Dot(r.xform(pts[0]), width/2*r.scale, col.Color())
		return
	}
	if style == StyleDashed {
		dash, gap := DashLengths(width)
		for _, piece := range DashPolyline(pts, dash, gap) {
			r.painter.StrokePolyline(r.xformAll(piece), width*r.scale, lineCap, join, col.Color())
		}
		return
	}
	r.painter.StrokePolyline(r.xformAll(pts), width*r.scale, lineCap, join, col.Color())
}

func (r *entryRenderer) renderShape(sh *Shape) {
	switch sh.Kind {
	case ShapeStraightLine, ShapeCircle:
		// Rounded joints, like freehand strokes.
		r.renderPath(sh.Outline, sh.Width, sh.Style, sh.Color, raster.CapRound, raster.JoinRound)
	case ShapeRectangle:
		if sh.Style == StyleDashed {
			// Per-edge parameterization, square dash ends, no rounding.
			if isDegenerate(sh.Outline) {
				r.painter.Dot(r.xform(sh.Min), sh.Width/2*r.scale, sh.Color.Color())
				return
			}
			for _, piece := range DashShape(sh) {
				r.painter.StrokePolyline(r.xformAll(piece), sh.Width*r.scale, raster.CapButt, raster.JoinMiter, sh.Color.Color())
			}
			return
		}
		r.renderPath(sh.Outline, sh.Width, StyleSolid, sh.Color, raster.CapButt, raster.JoinMiter)
	case ShapeTriangle:
		if sh.Style == StyleDashed {
			r.renderPath(sh.Outline, sh.Width, sh.Style, sh.Color, raster.CapButt, raster.JoinMiter)
			return
		}
		r.renderPath(sh.Outline, sh.Width, StyleSolid, sh.Color, raster.CapButt, raster.JoinMiter)
	}
}

func (r *entryRenderer) renderText(t *Text) error {
	topLeft := r.xform(t.Anchor)
	src := r.resolveFont()
	if src == nil {
		// End of the fallback chain: draw the measured bounding box as a
		// placeholder so the annotation's placement survives.
		w := t.Measured.W * r.scale
		h := t.Measured.H * r.scale
		box := []raster.Point{
			topLeft,
			{X: topLeft.X + w, Y: topLeft.Y},
			{X: topLeft.X + w, Y: topLeft.Y + h},
			{X: topLeft.X, Y: topLeft.Y + h},
			topLeft,
		}
		r.painter.StrokePolyline(box, r.scale, raster.CapButt, raster.JoinMiter, t.Color.Color())
		return nil
	}
	return src.Draw(r.painter.Image(), t.Content, t.FontSize*r.scale, topLeft.X, topLeft.Y, t.Color.Color())
}

func (r *entryRenderer) resolveFont() *typeface.Source {
	if !r.fontTried {
		r.fontTried = true
		src, err := typeface.Resolve(r.fontFamily)
		if err != nil {
			Logger().Warn("no renderable font, using placeholder boxes", "family", r.fontFamily, "err", err)
		}
		r.font = src
	}
	return r.font
}

// isDegenerate reports whether every point of the path coincides with the
// first within epsilon.
func isDegenerate(pts []Point) bool {
	if len(pts) == 0 {
		return false
	}
	const eps = 1e-9
	for _, p := range pts[1:] {
		if math.Abs(p.X-pts[0].X) > eps || math.Abs(p.Y-pts[0].Y) > eps {
			return false
		}
	}
	return true
}
