package easel

import (
	"math"
	"testing"
)

// fakeMeasure is a deterministic glyph-box stand-in for tests.
func fakeMeasure(content string, fontSize float64) Size {
	return Size{W: 0.6 * fontSize * float64(len(content)), H: 1.2 * fontSize}
}

func TestRescaleLogNoOps(t *testing.T) {
	log := NewSceneLog()
	log.Append(strokeAt(10))

	tests := []struct {
		name     string
		old, new Size
	}{
		{"zero old width", Size{W: 0, H: 100}, Size{W: 200, H: 100}},
		{"negative new height", Size{W: 100, H: 100}, Size{W: 100, H: -1}},
		{"identical sizes", Size{W: 100, H: 100}, Size{W: 100, H: 100}},
		{"within epsilon", Size{W: 1000, H: 1000}, Size{W: 1005, H: 995}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if RescaleLog(log, tt.old, tt.new, nil) {
				t.Error("RescaleLog reported a rescale")
			}
		})
	}

	empty := NewSceneLog()
	if RescaleLog(empty, Size{W: 100, H: 100}, Size{W: 200, H: 200}, nil) {
		t.Error("empty log reported a rescale")
	}
}

func TestRescaleLogStroke(t *testing.T) {
	log := NewSceneLog()
	s := NewStroke(Black, 4, StyleSolid, Pt(10, 20))
	s.Extend(Pt(50, 60))
	s.Finish()
	log.Append(s)

	if !RescaleLog(log, Size{W: 100, H: 100}, Size{W: 200, H: 50}, nil) {
		t.Fatal("RescaleLog reported no-op")
	}

	// sx=2, sy=0.5, mean=1.25
	if s.Points[0] != Pt(20, 10) || s.Points[1] != Pt(100, 30) {
		t.Errorf("points = %v", s.Points)
	}
	if !approx(s.Width, 5, eps) {
		t.Errorf("width = %g, want 5", s.Width)
	}
}

func TestRescaleLogCircleStaysCircular(t *testing.T) {
	log := NewSceneLog()
	sh := NewShape(ShapeCircle, Black, 2, StyleSolid, Pt(100, 100), Pt(140, 100))
	log.Append(sh)

	// Non-uniform resize: sx=2, sy=1, mean=1.5.
	if !RescaleLog(log, Size{W: 400, H: 400}, Size{W: 800, H: 400}, nil) {
		t.Fatal("RescaleLog reported no-op")
	}

	if sh.Start != Pt(200, 100) {
		t.Errorf("center = %v, want (200,100)", sh.Start)
	}
	if !approx(sh.Radius, 60, eps) {
		t.Errorf("radius = %g, want 60", sh.Radius)
	}
	// The ring is regenerated, not scaled pointwise: every ring point
	// stays at constant distance from the scaled center.
	for i, p := range sh.Outline {
		if d := p.Distance(sh.Start); !approx(d, 60, 1e-6) {
			t.Fatalf("ring[%d] at distance %g, want 60", i, d)
		}
	}
}

func TestRescaleLogRectangleDistorts(t *testing.T) {
	log := NewSceneLog()
	sh := NewShape(ShapeRectangle, Black, 2, StyleSolid, Pt(10, 10), Pt(30, 30))
	log.Append(sh)

	if !RescaleLog(log, Size{W: 100, H: 100}, Size{W: 200, H: 100}, nil) {
		t.Fatal("RescaleLog reported no-op")
	}

	if sh.Min != Pt(20, 10) || sh.W != 40 || sh.H != 20 {
		t.Errorf("rect = min %v size %gx%g, want min (20,10) size 40x20", sh.Min, sh.W, sh.H)
	}
}

func TestRescaleLogTextRemeasured(t *testing.T) {
	log := NewSceneLog()
	txt := NewText("hi", Black, 16, Pt(40, 80), fakeMeasure("hi", 16))
	log.Append(txt)

	// sx=2, sy=1, mean=1.5.
	if !RescaleLog(log, Size{W: 100, H: 100}, Size{W: 200, H: 100}, fakeMeasure) {
		t.Fatal("RescaleLog reported no-op")
	}

	if !approx(txt.FontSize, 24, eps) {
		t.Errorf("font size = %g, want 24", txt.FontSize)
	}
	if txt.Anchor != Pt(60, 120) {
		t.Errorf("anchor = %v, want (60,120)", txt.Anchor)
	}
	if want := fakeMeasure("hi", 24); txt.Measured != want {
		t.Errorf("measured = %v, want %v", txt.Measured, want)
	}
}

func TestRescaleLogRoundTrip(t *testing.T) {
	log := NewSceneLog()
	s := NewStroke(Black, 4, StyleSolid, Pt(10, 20))
	s.Extend(Pt(90, 70))
	s.Finish()
	log.Append(s)
	circ := NewShape(ShapeCircle, Black, 2, StyleSolid, Pt(50, 50), Pt(90, 50))
	log.Append(circ)

	// A uniform scale by f then by 1/f restores the original geometry.
	// (Only a scalar f inverts: the mean-ratio rule for radii is not
	// invertible under non-uniform resizes.)
	f := 1.75
	a := Size{W: 100, H: 100}
	b := Size{W: 100 * f, H: 100 * f}
	if !RescaleLog(log, a, b, nil) || !RescaleLog(log, b, a, nil) {
		t.Fatal("round trip reported a no-op")
	}

	if d := s.Points[0].Distance(Pt(10, 20)); d > 1e-9 {
		t.Errorf("point 0 drifted by %g", d)
	}
	if d := s.Points[1].Distance(Pt(90, 70)); d > 1e-9 {
		t.Errorf("point 1 drifted by %g", d)
	}
	if math.Abs(s.Width-4) > 1e-9 {
		t.Errorf("width drifted to %g", s.Width)
	}

	if d := circ.Start.Distance(Pt(50, 50)); d > 1e-9 {
		t.Errorf("circle center drifted by %g", d)
	}
	if math.Abs(circ.Radius-40) > 1e-9 {
		t.Errorf("circle radius drifted to %g", circ.Radius)
	}
	// The ring was regenerated both ways and is still a circle.
	if len(circ.Outline) != circleSegments+1 {
		t.Fatalf("ring has %d points, want %d", len(circ.Outline), circleSegments+1)
	}
	for i, p := range circ.Outline {
		if d := p.Distance(circ.Start); math.Abs(d-40) > 1e-6 {
			t.Fatalf("ring[%d] at distance %g, want 40", i, d)
		}
	}
}
