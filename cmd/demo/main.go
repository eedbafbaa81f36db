// Command demo renders a handful of overlapping, partly transparent sprites
// with softrender and saves the result as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/jonist/softrender"
)

func main() {
	var (
		width   = flag.Int("width", 320, "frame width")
		height  = flag.Int("height", 240, "frame height")
		output  = flag.String("output", "demo.png", "output PNG path")
		workers = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
	)
	flag.Parse()

	renderer := softrender.New(*width, *height, softrender.ARGB8888, softrender.WithWorkers(*workers))
	defer renderer.Close()

	sprites := demoSprites(*width, *height)

	pitch := *width * 4
	framebuffer := make([]byte, *height*pitch)
	renderer.Render(sprites, framebuffer, pitch)

	if err := savePNG(*output, framebuffer, *width, *height, pitch); err != nil {
		slog.Error("saving demo frame failed", "path", *output, "error", err)
		os.Exit(1)
	}

	slog.Info("wrote demo frame", "path", *output, "width", *width, "height", *height)
}

// demoSprites builds a small, fixed scene: an opaque backdrop panel and a
// ring of discs at ascending layers. Each disc is a square sprite whose
// pixels outside the disc are transparent, to exercise fallthrough.
func demoSprites(width, height int) []softrender.Sprite {
	backdrop := softrender.Sprite{
		Position: softrender.NewIRect(0, 0, uint32(width), uint32(height)),
		Layer:    0,
		PixelAt: func(u, v int) softrender.SpritePixel {
			return softrender.Opaque(20, 24, 32)
		},
	}

	const discCount = 6
	discs := make([]softrender.Sprite, discCount)
	cx, cy := width/2, height/2
	radius := float64(min(width, height)) * 0.35

	for i := range discs {
		angle := 2 * math.Pi * float64(i) / discCount
		dx := int32(cx + int(radius*math.Cos(angle)))
		dy := int32(cy + int(radius*math.Sin(angle)))
		const size = 48

		r := uint8(40 + i*35)
		g := uint8(220 - i*20)
		b := uint8(80 + i*25)

		discs[i] = softrender.Sprite{
			Position: softrender.NewIRect(dx-size/2, dy-size/2, size, size),
			Layer:    uint32(i + 1),
			PixelAt: func(u, v int) softrender.SpritePixel {
				// A disc punched out of its bounding square.
				cx, cy := float64(size)/2, float64(size)/2
				dx, dy := float64(u)-cx, float64(v)-cy
				if dx*dx+dy*dy > cx*cx {
					return softrender.Transparent()
				}
				return softrender.Opaque(r, g, b)
			},
		}
	}

	return append([]softrender.Sprite{backdrop}, discs...)
}

func savePNG(path string, framebuffer []byte, width, height, pitch int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := framebuffer[y*pitch : y*pitch+width*4]
		for x := 0; x < width; x++ {
			b, g, r, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			off := img.PixOffset(x, y)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = r, g, b, a
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
