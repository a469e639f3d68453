package easel

import "math"

// rescaleEpsilon: resizes where both axis ratios are within 1% of 1.0 are
// treated as no-ops to avoid churning geometry on jittery resize streams.
const rescaleEpsilon = 0.01

// MeasureFunc measures a single line of text at a font size, returning the
// glyph bounding box. The rescaler uses it to refresh text entries after
// their font size changes.
type MeasureFunc func(content string, fontSize float64) Size

// RescaleLog rewrites every entry's geometry in place for a surface size
// change from oldSize to newSize. Coordinates scale componentwise by
// (newW/oldW, newH/oldH); widths, circle radii, text anchors, and font
// sizes scale by the arithmetic mean of the two ratios. Circle boundary
// rings are regenerated from the scaled center and radius rather than
// scaled pointwise, so circles stay circular under non-uniform resizes.
//
// The call is a no-op when either size has a non-positive axis, when both
// ratios are within 1% of 1.0, or when the log is empty. It is idempotent
// under a (1,1) scale and safe to invoke repeatedly for resize streams,
// provided each call uses the size the previous call produced.
func RescaleLog(log *SceneLog, oldSize, newSize Size, measure MeasureFunc) bool {
	if !oldSize.IsPositive() || !newSize.IsPositive() || log.Empty() {
		return false
	}
	sx := newSize.W / oldSize.W
	sy := newSize.H / oldSize.H
	if math.Abs(sx-1) <= rescaleEpsilon && math.Abs(sy-1) <= rescaleEpsilon {
		return false
	}
	mean := (sx + sy) / 2

	for i, e := range log.All() {
		e.rescale(sx, sy, mean)
		if t, ok := e.(*Text); ok && measure != nil {
			t.Measured = measure(t.Content, t.FontSize)
		}
		if err := e.validate(); err != nil {
			Logger().Warn("rescaled entry is degenerate", "index", i, "err", err)
		}
	}
	return true
}
