package easel

import "math"

// Point represents a 2D point or vector in surface coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// ScaleXY returns the point scaled componentwise.
func (p Point) ScaleXY(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Size represents the dimensions of a surface.
type Size struct {
	W, H float64
}

// IsPositive reports whether both dimensions are greater than zero.
func (s Size) IsPositive() bool {
	return s.W > 0 && s.H > 0
}

// Rect is an axis-aligned rectangle given by its extreme coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether the point lies inside the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Union returns the smallest rectangle covering both r and q.
func (r Rect) Union(q Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, q.MinX),
		MinY: math.Min(r.MinY, q.MinY),
		MaxX: math.Max(r.MaxX, q.MaxX),
		MaxY: math.Max(r.MaxY, q.MaxY),
	}
}

// rectOf returns the bounding rectangle of a point sequence.
func rectOf(pts []Point) Rect {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range pts {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// circleSegments is the fixed tessellation used for circle boundary rings.
const circleSegments = 64

// CirclePoints returns a closed ring of points approximating a circle.
// The ring has segments+1 points: the last point repeats the first so the
// outline closes. A zero or negative radius yields a degenerate ring of
// coincident points at the center.
func CirclePoints(center Point, radius float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	if radius < 0 {
		radius = 0
	}
	ring := make([]Point, segments+1)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	ring[segments] = ring[0]
	return ring
}

// PolylineLength returns the total arc length of a point sequence.
func PolylineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}
