package softrender

import (
	"encoding/binary"

	"github.com/jonist/softrender/internal/parallel"
	"github.com/jonist/softrender/internal/raster"
)

// defaultBlockSize is the reference row-block size for Pass A's
// distribution step.
const defaultBlockSize = 8

// Option configures a SpriteRenderer at construction time.
type Option func(*SpriteRenderer)

// WithWorkers overrides the number of goroutines driving both passes. The
// default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *SpriteRenderer) { r.workers = n }
}

// WithBlockSize overrides Pass A's row-block size (reference value 8).
func WithBlockSize(n int) Option {
	return func(r *SpriteRenderer) {
		if n > 0 {
			r.blockSize = n
		}
	}
}

// SpriteRenderer rasterizes a sequence of [Sprite]s into a caller-supplied
// framebuffer once per call to [SpriteRenderer.Render]. It owns one
// [raster.RasterLine] per row of its frame and a work-stealing pool driving
// both passes of the algorithm; it never allocates or owns the framebuffer
// itself.
//
// A SpriteRenderer is not safe for concurrent Render calls against the
// same instance, though the pixels it produces do not depend on how many
// workers carried out the work.
type SpriteRenderer struct {
	width, height int
	blockSize     int
	workers       int

	packer PixelPacker
	lines  []*raster.RasterLine
	rowBuf [][]uint32 // one reusable pixel scratch buffer per row
	pool   *parallel.WorkerPool
}

// New constructs a SpriteRenderer sized width x height, allocating one
// RasterLine (and all its pixel slots) per row.
func New(width, height int, packer PixelPacker, opts ...Option) *SpriteRenderer {
	r := &SpriteRenderer{
		width:     width,
		height:    height,
		blockSize: defaultBlockSize,
		packer:    packer,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.pool = parallel.NewWorkerPool(r.workers)

	r.lines = make([]*raster.RasterLine, height)
	r.rowBuf = make([][]uint32, height)
	for y := range r.lines {
		r.lines[y] = raster.NewRasterLine(width)
		r.rowBuf[y] = make([]uint32, width)
	}

	return r
}

// Close shuts down the renderer's worker pool. After Close, Render must not
// be called again.
func (r *SpriteRenderer) Close() {
	r.pool.Close()
}

// Render rasterizes sprites into framebuffer, a row-major buffer of at
// least height*pitch bytes with pitch >= width*4, a multiple of 4. Only the
// first width*4 bytes of each row are written; the remainder of the row's
// pitch is left untouched. After Render returns, all of the renderer's
// internal scratch state is empty again.
func (r *SpriteRenderer) Render(sprites []Sprite, framebuffer []byte, pitch int) {
	viewport := NewIRect(0, 0, uint32(r.width), uint32(r.height))

	blocks := parallel.RowBlocks(r.height, r.blockSize)
	Logger().Debug("render pass A starting",
		"sprites", len(sprites), "blocks", len(blocks), "workers", r.pool.Workers())

	work := make([]func(), len(blocks))
	for bi, block := range blocks {
		block := block
		work[bi] = func() { r.distributeBlock(block, sprites, viewport) }
	}
	r.pool.ExecuteAll(work)

	rowWork := make([]func(), r.height)
	for y := 0; y < r.height; y++ {
		y := y
		rowWork[y] = func() { r.renderRow(y, framebuffer, pitch) }
	}
	r.pool.ExecuteAll(rowWork)
}

// distributeBlock is Pass A's per-block unit of work: it owns exclusive
// write access to rows [block.Start, block.End) across every rasterLine,
// so no locking is needed even though every block runs concurrently.
func (r *SpriteRenderer) distributeBlock(block parallel.RowBlock, sprites []Sprite, viewport IRect) {
	blockRect := NewIRect(0, int32(block.Start), uint32(r.width), uint32(block.Len()))

	for seq, sprite := range sprites {
		if !blockRect.Intersects(sprite.Position) {
			continue
		}

		visible := viewport.Intersection(sprite.Position)
		if visible.IsEmpty() {
			continue
		}

		rowStart := max(visible.Y, int32(block.Start))
		rowEnd := min(visible.LastY(), int32(block.End-1))
		if rowStart > rowEnd {
			continue
		}

		handle := raster.SpriteHandle{
			BeginX:  visible.X,
			LastX:   visible.LastX(),
			OriginX: sprite.Position.X,
			OriginY: sprite.Position.Y,
			Layer:   sprite.Layer,
			Seq:     uint32(seq),
			PixelAt: sprite.PixelAt,
		}

		for y := rowStart; y <= rowEnd; y++ {
			r.lines[y].Add(handle)
		}
	}
}

// renderRow is Pass B's per-row unit of work: resolve one row's active
// stack into its framebuffer slice, then clear its scratch state.
func (r *SpriteRenderer) renderRow(y int, framebuffer []byte, pitch int) {
	rowBytes := framebuffer[y*pitch : y*pitch+r.width*4]

	out := r.rowBuf[y]
	r.lines[y].Render(int32(y), out, r.packer)

	for x, px := range out {
		binary.LittleEndian.PutUint32(rowBytes[x*4:], px)
	}
}
