// Package softrender implements a two-pass scanline rasterizer for
// axis-aligned, per-pixel-transparent sprites under integer z-layering.
//
// A [SpriteRenderer] owns one scratch row per scanline of its frame plus a
// caller-supplied [PixelPacker]. Calling [SpriteRenderer.Render] distributes
// sprites to the rows they cover (Pass A, block-striped and parallel), then
// rasterizes every row independently against its active sprites (Pass B,
// parallel over rows), writing packed pixels into the caller's framebuffer.
//
// The renderer never allocates or owns the framebuffer, never touches a
// GPU, and never blends: every pixel is either the color of the topmost
// opaque sprite covering it, or opaque black.
package softrender
