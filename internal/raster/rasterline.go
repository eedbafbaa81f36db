// Package raster implements the per-scanline rendering algorithm: an
// active-stack walk over sprites that begin on a row, resolved pixel by
// pixel against each sprite's opacity.
package raster

import "slices"

// Pixel is an RGB triple plus a transparency flag. When Transparent is
// true the color channels are ignored by the row renderer.
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// Opaque constructs a fully opaque pixel.
func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// TransparentPixel constructs a pixel that lets whatever is beneath it show
// through.
func TransparentPixel() Pixel {
	return Pixel{Transparent: true}
}

// SpriteHandle is everything a RasterLine needs to resolve one sprite's
// contribution to a single row, without needing to import the sprite's own
// package (avoiding an import cycle between the public API and this
// package).
type SpriteHandle struct {
	// BeginX is the clipped first visible column on this row:
	// max(sprite.Position.X, 0) after viewport intersection.
	BeginX int32

	// LastX is the clipped last visible column on this row.
	LastX int32

	// OriginX, OriginY are the sprite's unclipped position, used to turn a
	// framebuffer column/row into the sprite-local (u, v) passed to
	// PixelAt.
	OriginX, OriginY int32

	// Layer is the sprite's z-order key; larger draws on top.
	Layer uint32

	// Seq is the sprite's position in the input sequence, used to break
	// ties between sprites sharing a layer: later input wins.
	Seq uint32

	// PixelAt returns the sprite's color/transparency at local coordinates
	// (u, v). Must be safe to call concurrently with other rows.
	PixelAt func(u, v int) Pixel
}

// active is one entry in a row's active stack: a SpriteHandle plus the row
// y needed to compute v = y - OriginY.
type active struct {
	h SpriteHandle
	y int32
}

// RasterLine holds, for every x in [0, width), the sprites that begin
// there on this row, plus the scratch active stack used while rendering.
// Its pixel storage is allocated once and never freed or reallocated; it
// is only cleared between frames.
type RasterLine struct {
	width   int
	begins  []beginList
	stack   []active // scratch active stack, reused across Render calls
	mergeBuf []active // scratch merge target, reused across activate calls
}

// NewRasterLine allocates a RasterLine for a row of the given width.
func NewRasterLine(width int) *RasterLine {
	return &RasterLine{
		width:  width,
		begins: make([]beginList, width),
	}
}

// Add records that sprite h becomes visible starting at column h.BeginX on
// this row. h.BeginX must be in [0, width); callers clip against the
// viewport before calling Add so this never indexes out of bounds.
func (rl *RasterLine) Add(h SpriteHandle) {
	rl.begins[h.BeginX].append(h)
}

// Render resolves every pixel of this row into out (length >= width),
// using pack to encode the final color, then clears the row's scratch
// state so it is ready for the next frame.
//
// y is the row's position in the framebuffer, needed to compute each
// sprite's local v coordinate.
func (rl *RasterLine) Render(y int32, out []uint32, pack func(r, g, b uint8) uint32) {
	rl.stack = rl.stack[:0]

	for x := 0; x < rl.width; x++ {
		bl := &rl.begins[x]
		rl.activate(bl, y)

		out[x] = rl.resolve(x, y, pack)
	}

	rl.clear()
}

// activate merges the sprites beginning at this column into the active
// stack, preserving ascending-layer order (topmost at the back, largest
// layer last). Entries beginning together are first sorted among
// themselves, stably so a later position in the input sequence remains
// topmost among equal layers; the result is then merged into the
// already-sorted stack in one linear pass (a merge-sort merge step, not a
// full resort).
func (rl *RasterLine) activate(bl *beginList, y int32) {
	n := bl.len()
	if n == 0 {
		return
	}

	var freshArr [inlineCap]active
	fresh := freshArr[:0]
	for i := 0; i < n; i++ {
		fresh = append(fresh, active{h: bl.at(i), y: y})
	}
	slices.SortStableFunc(fresh, compareActive)

	total := len(rl.stack) + len(fresh)
	if cap(rl.mergeBuf) < total {
		rl.mergeBuf = make([]active, total)
	}
	merged := rl.mergeBuf[:total]

	i, j, k := 0, 0, 0
	for i < len(rl.stack) && j < len(fresh) {
		if compareActive(fresh[j], rl.stack[i]) < 0 {
			merged[k] = fresh[j]
			j++
		} else {
			merged[k] = rl.stack[i]
			i++
		}
		k++
	}
	for i < len(rl.stack) {
		merged[k] = rl.stack[i]
		i++
		k++
	}
	for j < len(fresh) {
		merged[k] = fresh[j]
		j++
		k++
	}

	rl.stack, rl.mergeBuf = merged, rl.stack[:0]
}

// compareActive orders active entries ascending by layer, breaking ties
// by input order (lower Seq, i.e. earlier in the input sequence, sorts
// first so a later sprite ends up topmost among equal layers).
func compareActive(a, b active) int {
	switch {
	case a.h.Layer != b.h.Layer:
		if a.h.Layer < b.h.Layer {
			return -1
		}
		return 1
	case a.h.Seq != b.h.Seq:
		if a.h.Seq < b.h.Seq {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// resolve walks the active stack from topmost (back) to bottom (front),
// compacting stale entries (sprites whose row-clipped range ended before
// x) in a single pass to avoid O(n^2) degradation under dense overlap, and
// returns the packed color of the first opaque hit or opaque black.
func (rl *RasterLine) resolve(x int, y int32, pack func(r, g, b uint8) uint32) uint32 {
	xi := int32(x)

	write := 0
	found := false
	var result Pixel

	for read := len(rl.stack) - 1; read >= 0; read-- {
		a := rl.stack[read]
		if xi > a.h.LastX {
			continue // stale: drop by not copying forward
		}

		// Keep this entry: copy it down to the compacted tail.
		rl.stack[len(rl.stack)-1-write] = a
		write++

		if found {
			continue
		}

		p := a.h.PixelAt(x-int(a.h.OriginX), int(y-a.h.OriginY))
		if !p.Transparent {
			result = p
			found = true
		}
	}

	rl.stack = rl.stack[len(rl.stack)-write:]

	if !found {
		return pack(0, 0, 0)
	}
	return pack(result.R, result.G, result.B)
}

// clear empties the row's begin-lists and active stack, restoring the
// per-frame reset invariant. Backing storage is retained, except that an
// oversized spill slice is reallocated smaller (see beginList.shrink).
func (rl *RasterLine) clear() {
	for i := range rl.begins {
		rl.begins[i].shrink()
		rl.begins[i].reset()
	}
	rl.stack = rl.stack[:0]
}

// Width returns the row's pixel width.
func (rl *RasterLine) Width() int {
	return rl.width
}
