package easel

// Dash generation converts any path or outline into alternating drawn and
// blank pieces using arc-length parameterization: the dash phase advances
// with distance along the path, not with vertex count, so a dash that
// crosses an interior vertex continues through it instead of restarting.
//
// The same generator serves stroke finalization, full redraws, and export,
// keeping on-screen and exported dashes identical.

// DashLengths derives the dash and gap lengths for a stroke width.
// One dash cycle is dash+gap long.
func DashLengths(width float64) (dash, gap float64) {
	dash = 3 * width
	if dash < 15 {
		dash = 15
	}
	gap = 1.5 * dash
	return dash, gap
}

// DashPolyline splits an ordered point sequence into dash pieces. Each
// piece is itself a point sequence spanning the arc-length interval
// [d, min(d+dash, total)] for cursor positions d = 0, cycle, 2*cycle, ...:
// its endpoints are resolved by linear interpolation inside whichever
// source segment contains that arc-length position, and interior source
// vertices between them are preserved.
//
// Degenerate inputs (fewer than two points, zero total length, or a
// non-positive dash length) return nil.
func DashPolyline(pts []Point, dash, gap float64) [][]Point {
	if len(pts) < 2 || dash <= 0 || gap < 0 {
		return nil
	}

	// Cumulative arc length at each vertex.
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i-1].Distance(pts[i])
	}
	total := cum[len(pts)-1]
	if total <= 0 {
		return nil
	}

	cycle := dash + gap
	var pieces [][]Point
	seg := 0 // index of the segment the cursor walk is inside
	for d := 0.0; d < total; d += cycle {
		end := d + dash
		if end > total {
			end = total
		}

		// Advance to the segment containing d.
		for seg < len(cum)-2 && cum[seg+1] <= d {
			seg++
		}

		piece := []Point{pointAt(pts, cum, seg, d)}
		// Carry interior vertices that fall strictly inside (d, end).
		j := seg
		for j < len(cum)-2 && cum[j+1] < end {
			j++
			if cum[j] > d {
				piece = append(piece, pts[j])
			}
		}
		piece = append(piece, pointAt(pts, cum, j, end))
		pieces = append(pieces, piece)
	}
	return pieces
}

// DashShape returns the dash pieces for a shape's outline. Rectangles are
// dashed per edge, each edge restarting its own arc-length
// parameterization at the edge's start corner; circles, triangles, and
// straight lines use the single unrolled-ring parameterization.
func DashShape(sh *Shape) [][]Point {
	dash, gap := DashLengths(sh.Width)
	if sh.Kind == ShapeRectangle {
		var pieces [][]Point
		for _, e := range sh.Edges() {
			pieces = append(pieces, DashPolyline(e[:], dash, gap)...)
		}
		return pieces
	}
	return DashPolyline(sh.Outline, dash, gap)
}

// DashStroke returns the dash pieces for a freehand stroke's point list.
func DashStroke(s *Stroke) [][]Point {
	dash, gap := DashLengths(s.Width)
	return DashPolyline(s.Points, dash, gap)
}

// pointAt resolves the point at arc length d, given the segment index
// that contains d.
func pointAt(pts []Point, cum []float64, seg int, d float64) Point {
	segLen := cum[seg+1] - cum[seg]
	if segLen <= 0 {
		return pts[seg]
	}
	t := (d - cum[seg]) / segLen
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return pts[seg].Lerp(pts[seg+1], t)
}
