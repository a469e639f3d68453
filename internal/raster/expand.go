// Package raster provides the CPU rasterization backend for export:
// stroke expansion of polylines into filled outlines, and antialiased
// polygon filling via golang.org/x/image/vector.
//
// Stroke expansion follows the tiny-skia/kurbo pattern: a stroked polyline
// becomes a fill path whose outer offset side runs forward, whose inner
// offset side runs backward, with caps connecting the endpoints and joins
// connecting the segments.
package raster

import "math"

// Point represents a 2D point in raster coordinates (top-left origin,
// Y down).
type Point struct {
	X, Y float64
}

// Cap specifies the shape of open stroke endpoints and dash-piece ends.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join specifies the shape of the corner where two segments meet.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// miterLimit is the ratio of miter length to stroke width above which a
// miter join degrades to a bevel. 4.0 matches the SVG default.
const miterLimit = 4.0

// arcStep is the largest angle one arc subdivision may span.
const arcStep = math.Pi / 8

const dedupeEpsilon = 1e-9

func add(p, q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func sub(p, q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func mul(p Point, s float64) Point { return Point{p.X * s, p.Y * s} }
func dot(p, q Point) float64    { return p.X*q.X + p.Y*q.Y }
func length(p Point) float64    { return math.Hypot(p.X, p.Y) }

func normalize(p Point) Point {
	l := length(p)
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// perp returns p rotated 90 degrees counter-clockwise in raster space.
func perp(p Point) Point { return Point{-p.Y, p.X} }

// dedupe drops consecutive points closer together than dedupeEpsilon.
func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if math.Abs(p.X-last.X) > dedupeEpsilon || math.Abs(p.Y-last.Y) > dedupeEpsilon {
			out = append(out, p)
		}
	}
	return out
}

// StrokeOutline expands a polyline into closed outlines suitable for a
// nonzero-winding fill. A polyline whose first and last points coincide is
// stroked as a closed loop: two rings, the inner one wound opposite so the
// fill leaves a hole. Returns nil for degenerate input.
func StrokeOutline(pts []Point, width float64, lineCap Cap, join Join) [][]Point {
	pts = dedupe(pts)
	if len(pts) < 2 || width <= 0 {
		return nil
	}
	half := width / 2

	last := pts[len(pts)-1]
	if math.Abs(last.X-pts[0].X) <= dedupeEpsilon && math.Abs(last.Y-pts[0].Y) <= dedupeEpsilon {
		loop := pts[:len(pts)-1]
		if len(loop) >= 3 {
			outer := offsetLoop(loop, half, join)
			inner := offsetLoop(reversed(loop), half, join)
			return [][]Point{outer, inner}
		}
		pts = pts[:len(pts)-1]
		if len(pts) < 2 {
			return nil
		}
	}

	var out []Point
	out = appendSide(out, pts, half, join)
	endDir := normalize(sub(pts[len(pts)-1], pts[len(pts)-2]))
	out = appendCap(out, pts[len(pts)-1], endDir, half, lineCap)
	rev := reversed(pts)
	out = appendSide(out, rev, half, join)
	startDir := normalize(sub(pts[0], pts[1]))
	out = appendCap(out, pts[0], startDir, half, lineCap)
	return [][]Point{out}
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// appendSide walks the polyline forward emitting the left-offset edge of
// every segment, inserting join geometry at interior vertices.
func appendSide(dst []Point, pts []Point, half float64, join Join) []Point {
	for i := 0; i < len(pts)-1; i++ {
		d := normalize(sub(pts[i+1], pts[i]))
		n := mul(perp(d), half)
		dst = append(dst, add(pts[i], n), add(pts[i+1], n))
		if i+2 < len(pts) {
			d2 := normalize(sub(pts[i+2], pts[i+1]))
			n2 := mul(perp(d2), half)
			dst = appendJoin(dst, pts[i+1], n, n2, half, join)
		}
	}
	return dst
}

// offsetLoop emits the left-offset ring of a closed loop, with a join at
// every vertex including the wrap-around one.
func offsetLoop(loop []Point, half float64, join Join) []Point {
	n := len(loop)
	var dst []Point
	for i := 0; i < n; i++ {
		a, b, c := loop[i], loop[(i+1)%n], loop[(i+2)%n]
		d := normalize(sub(b, a))
		off := mul(perp(d), half)
		dst = append(dst, add(a, off), add(b, off))
		d2 := normalize(sub(c, b))
		off2 := mul(perp(d2), half)
		dst = appendJoin(dst, b, off, off2, half, join)
	}
	return dst
}

// appendJoin bridges the gap between two adjacent offset edges at a
// vertex. n1 and n2 are the half-width offset vectors of the incoming and
// outgoing segments. Bevel joins add nothing: the two offset endpoints
// already span the corner.
func appendJoin(dst []Point, vertex, n1, n2 Point, half float64, join Join) []Point {
	switch join {
	case JoinRound:
		from := math.Atan2(n1.Y, n1.X)
		to := math.Atan2(n2.Y, n2.X)
		delta := to - from
		for delta > math.Pi {
			delta -= 2 * math.Pi
		}
		for delta < -math.Pi {
			delta += 2 * math.Pi
		}
		dst = appendArc(dst, vertex, half, from, delta)
	case JoinMiter:
		bis := add(n1, n2)
		if length(bis) < 1e-12 {
			return dst // 180 degree turn, no miter exists
		}
		nb := normalize(bis)
		cosHalf := dot(nb, normalize(n1))
		if cosHalf < 1e-6 || 1/cosHalf > miterLimit {
			return dst // too sharp, fall back to bevel
		}
		dst = append(dst, add(vertex, mul(nb, half/cosHalf)))
	}
	return dst
}

// appendCap closes an open end. The forward direction points out of the
// stroke; the cap sweeps from the left offset around to the right offset.
func appendCap(dst []Point, end, dir Point, half float64, lineCap Cap) []Point {
	n := mul(perp(dir), half)
	switch lineCap {
	case CapRound:
		from := math.Atan2(n.Y, n.X)
		dst = appendArc(dst, end, half, from, -math.Pi)
	case CapSquare:
		ext := mul(dir, half)
		dst = append(dst, add(end, add(n, ext)), add(end, sub(ext, n)))
	}
	return dst
}

// appendArc emits intermediate points of a circular arc starting at angle
// from and sweeping by delta radians. The arc's end point is included;
// its start point is assumed already emitted.
func appendArc(dst []Point, center Point, r, from, delta float64) []Point {
	steps := int(math.Ceil(math.Abs(delta) / arcStep))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		a := from + delta*float64(i)/float64(steps)
		dst = append(dst, Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	return dst
}
