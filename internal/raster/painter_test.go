package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func newWhite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func inked(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y) != (color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestFillTriangle(t *testing.T) {
	img := newWhite(100, 100)
	p := NewPainter(img)
	p.Fill([][]Point{{{10, 90}, {90, 90}, {50, 10}}}, color.Black)

	if !inked(img, 50, 60) {
		t.Error("triangle interior not filled")
	}
	if inked(img, 5, 5) || inked(img, 95, 5) {
		t.Error("fill leaked outside the triangle")
	}
}

func TestFillSkipsShortSubpaths(t *testing.T) {
	img := newWhite(50, 50)
	p := NewPainter(img)
	p.Fill([][]Point{{{10, 10}, {40, 40}}}, color.Black) // 2 points: no area

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if inked(img, x, y) {
				t.Fatalf("2-point subpath inked pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestStrokePolyline(t *testing.T) {
	img := newWhite(100, 100)
	p := NewPainter(img)
	p.StrokePolyline([]Point{{10, 50}, {90, 50}}, 6, CapButt, JoinMiter, color.Black)

	if !inked(img, 50, 50) {
		t.Error("stroke center not inked")
	}
	if !inked(img, 50, 48) || !inked(img, 50, 52) {
		t.Error("stroke thinner than its width")
	}
	if inked(img, 50, 40) || inked(img, 50, 60) {
		t.Error("stroke wider than its width")
	}
}

func TestStrokePolylineSinglePointDot(t *testing.T) {
	img := newWhite(100, 100)
	p := NewPainter(img)
	p.StrokePolyline([]Point{{50, 50}}, 8, CapRound, JoinRound, color.Black)

	if !inked(img, 50, 50) {
		t.Error("single point left no dot")
	}
	if inked(img, 50, 40) {
		t.Error("dot larger than the stroke width")
	}
}

func TestDot(t *testing.T) {
	img := newWhite(40, 40)
	p := NewPainter(img)
	p.Dot(Point{20, 20}, 5, color.Black)

	if !inked(img, 20, 20) || !inked(img, 23, 20) {
		t.Error("dot interior not filled")
	}
	if inked(img, 20, 12) {
		t.Error("dot exceeds its radius")
	}
}
