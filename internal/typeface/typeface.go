// Package typeface resolves and renders fonts for text annotations.
//
// Resolution walks a fallback chain: the requested family among the
// system fonts discovered by go-text/typesetting's fontscan, then the
// embedded Go Regular face. Only when even the embedded face fails to
// parse does resolution fail; callers then render a placeholder box.
package typeface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Source is a parsed font usable at any size.
type Source struct {
	font *opentype.Font
}

var (
	mu    sync.Mutex
	cache = map[string]*Source{}

	scanOnce sync.Once
	scanned  []fontscan.Footprint
)

// Resolve returns a font source for the family, consulting the fallback
// chain. The family may be empty to request the embedded default
// directly. Results are cached per family.
func Resolve(family string) (*Source, error) {
	mu.Lock()
	defer mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(family))
	if src, ok := cache[key]; ok {
		return src, nil
	}
	if key != "" {
		if src, err := loadSystem(key); err == nil {
			cache[key] = src
			return src, nil
		}
	}
	src, err := embedded()
	if err != nil {
		return nil, err
	}
	cache[key] = src
	return src, nil
}

// loadSystem finds a system font file whose family matches, scanning the
// installed fonts once per process.
func loadSystem(family string) (*Source, error) {
	scanOnce.Do(func() {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		fps, err := fontscan.SystemFonts(nil, dir)
		if err == nil {
			scanned = fps
		}
	})
	for _, fp := range scanned {
		if !strings.EqualFold(fp.Family, family) {
			continue
		}
		data, err := os.ReadFile(fp.Location.File)
		if err != nil {
			continue
		}
		src, err := parse(data, int(fp.Location.Index))
		if err != nil {
			continue
		}
		return src, nil
	}
	return nil, fmt.Errorf("font family %q not found among system fonts", family)
}

// embedded parses the bundled Go Regular face.
func embedded() (*Source, error) {
	return parse(goregular.TTF, 0)
}

// parse handles both single fonts and collections; a plain TTF/OTF is a
// collection of one.
func parse(data []byte, index int) (*Source, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("font %d of collection: %w", index, err)
	}
	return &Source{font: f}, nil
}

func (s *Source) face(size float64) (font.Face, error) {
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Measure returns the glyph bounding box of a single line at the given
// size: the horizontal advance and the ascent-plus-descent height.
func (s *Source) Measure(text string, size float64) (w, h float64) {
	face, err := s.face(size)
	if err != nil {
		return 0, 0
	}
	defer face.Close()

	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return fixedToFloat(adv), fixedToFloat(m.Ascent + m.Descent)
}

// Draw renders a single line with the top-left corner of its glyph box at
// (x, y) in raster coordinates (top-left origin, Y down).
func (s *Source) Draw(dst draw.Image, text string, size, x, y float64, col color.Color) error {
	face, err := s.face(size)
	if err != nil {
		return err
	}
	defer face.Close()

	m := face.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + m.Ascent,
		},
	}
	d.DrawString(text)
	return nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
