package softrender

import "github.com/jonist/softrender/internal/raster"

// SpritePixel is an RGB triple plus a transparency flag. When Transparent
// is true the color channels are ignored and whatever is beneath this
// sprite shows through instead.
type SpritePixel = raster.Pixel

// Opaque constructs a fully opaque pixel with the given color.
func Opaque(r, g, b uint8) SpritePixel {
	return raster.Opaque(r, g, b)
}

// Transparent constructs a pixel that lets sprites beneath it show through.
func Transparent() SpritePixel {
	return raster.TransparentPixel()
}

// PixelAtFunc maps local sprite coordinates (0 <= u < width,
// 0 <= v < height) to a color/transparency value. It must be pure and safe
// to call concurrently with other calls against distinct or identical
// (u, v), since rows are rasterized in parallel.
type PixelAtFunc func(u, v int) SpritePixel

// Sprite is an axis-aligned rectangular picture: a position, a per-pixel
// color/transparency function, and a z-layer. Sprites are immutable for
// the duration of a render call.
type Sprite struct {
	// Position is the sprite's rectangle in framebuffer coordinates. It
	// may lie partially or entirely outside the viewport.
	Position IRect

	// Layer is the z-order key; larger values draw on top. Ties between
	// sprites of equal layer are broken by input order: the sprite that
	// appears later in the slice passed to [SpriteRenderer.Render] is
	// drawn on top.
	Layer uint32

	// PixelAt returns this sprite's pixel at local coordinates (u, v).
	PixelAt PixelAtFunc
}

// PixelPacker encodes an opaque RGB color into a framebuffer's native pixel
// word. It must be a pure function of its three inputs so it can be called
// concurrently from every row worker.
type PixelPacker func(r, g, b uint8) uint32

// ARGB8888 is the reference PixelPacker: little-endian ARGB8888 with
// A = 0xFF, R in bits 16-23, G in bits 8-15, B in bits 0-7.
func ARGB8888(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
