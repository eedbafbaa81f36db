package softrender

import "github.com/jonist/softrender/internal/geom"

// IRect is an integer axis-aligned rectangle: a signed origin and an
// unsigned extent. A negative extent cannot be represented, so a width or
// height of zero is the only way to be empty.
type IRect = geom.IRect

// NewIRect constructs a rectangle from origin (x, y) and extent
// (width, height).
func NewIRect(x, y int32, width, height uint32) IRect {
	return geom.NewIRect(x, y, width, height)
}
