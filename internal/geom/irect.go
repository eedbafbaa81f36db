// Package geom provides integer axis-aligned rectangle arithmetic shared by
// the rasterizer's distribution and viewport-clipping logic.
package geom

// IRect is an axis-aligned rectangle with a signed origin and unsigned
// extent. Width and height are unsigned so a negative extent can only come
// from a construction-time programmer error.
type IRect struct {
	X, Y          int32
	Width, Height uint32
}

// NewIRect constructs a rectangle from origin and extent.
func NewIRect(x, y int32, width, height uint32) IRect {
	return IRect{X: x, Y: y, Width: width, Height: height}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r IRect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// LastX returns the rightmost covered column. Only meaningful when
// !r.IsEmpty().
func (r IRect) LastX() int32 {
	return r.X + int32(r.Width) - 1
}

// LastY returns the bottommost covered row. Only meaningful when
// !r.IsEmpty().
func (r IRect) LastY() int32 {
	return r.Y + int32(r.Height) - 1
}

// Intersects reports whether r and o share at least one pixel.
func (r IRect) Intersects(o IRect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X <= o.LastX() && o.X <= r.LastX() &&
		r.Y <= o.LastY() && o.Y <= r.LastY()
}

// Intersection returns the overlap of r and o, or the empty rectangle if
// they don't intersect.
func (r IRect) Intersection(o IRect) IRect {
	if !r.Intersects(o) {
		return IRect{}
	}

	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.LastX(), o.LastX())
	y1 := min(r.LastY(), o.LastY())

	return IRect{
		X:      x0,
		Y:      y0,
		Width:  uint32(x1 - x0 + 1),
		Height: uint32(y1 - y0 + 1),
	}
}
