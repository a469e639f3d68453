package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// dotSegments is the tessellation used for degenerate marks (dots).
const dotSegments = 32

// Painter rasterizes stroked polylines and filled polygons into an RGBA
// image with antialiased coverage. One Painter is created per export and
// reuses its rasterizer across draw calls.
type Painter struct {
	dst *image.RGBA
	ras vector.Rasterizer
}

// NewPainter wraps the destination image.
func NewPainter(dst *image.RGBA) *Painter {
	return &Painter{dst: dst}
}

// Image returns the destination image.
func (p *Painter) Image() *image.RGBA {
	return p.dst
}

// Fill rasterizes closed subpaths with the nonzero winding rule and
// composites them over the destination.
func (p *Painter) Fill(subpaths [][]Point, col color.Color) {
	b := p.dst.Bounds()
	p.ras.Reset(b.Dx(), b.Dy())
	p.ras.DrawOp = draw.Over
	drawn := false
	for _, sp := range subpaths {
		if len(sp) < 3 {
			continue
		}
		p.ras.MoveTo(float32(sp[0].X), float32(sp[0].Y))
		for _, q := range sp[1:] {
			p.ras.LineTo(float32(q.X), float32(q.Y))
		}
		p.ras.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	p.ras.Draw(p.dst, b, image.NewUniform(col), image.Point{})
}

// StrokePolyline strokes a polyline with the given width, cap, and join.
// A single distinct point is drawn as a dot sized to the stroke width.
func (p *Painter) StrokePolyline(pts []Point, width float64, lineCap Cap, join Join, col color.Color) {
	pts = dedupe(pts)
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		p.Dot(pts[0], math.Max(width/2, 0.5), col)
	default:
		p.Fill(StrokeOutline(pts, width, lineCap, join), col)
	}
}

// Dot draws a filled circle, used for degenerate geometry (single-point
// strokes, zero-radius circles, zero-size rectangles).
func (p *Painter) Dot(c Point, r float64, col color.Color) {
	if r <= 0 {
		r = 0.5
	}
	ring := make([]Point, dotSegments+1)
	for i := 0; i < dotSegments; i++ {
		a := 2 * math.Pi * float64(i) / dotSegments
		ring[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	ring[dotSegments] = ring[0]
	p.Fill([][]Point{ring}, col)
}
