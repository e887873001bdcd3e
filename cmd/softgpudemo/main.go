// Command softgpudemo renders a frame with the software renderer and saves
// the presented image as a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/backend"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/render"
	"github.com/gogpu/softgpu/surface"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "log renderer activity to stderr")
	)
	flag.Parse()

	if *verbose {
		softgpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*width, *height, *output); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// run renders one frame and saves it. Resources are released before it
// returns, on failure too.
func run(width, height int, output string) (err error) {
	r, screen, err := backend.InitDefault(nil, width, height)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer func() { err = errors.Join(err, r.Quit()) }()

	if err := drawGradientBackground(r, screen, width, height); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	sprite, err := newSprite(r, 64)
	if err != nil {
		return fmt.Errorf("create sprite: %w", err)
	}
	defer func() { err = errors.Join(err, r.FreeImage(sprite)) }()

	if err := drawSpritesDemo(r, screen, sprite); err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	if err := drawOffscreenDemo(r, screen, sprite); err != nil {
		return fmt.Errorf("offscreen: %w", err)
	}
	if err := drawPrimitivesDemo(r, screen); err != nil {
		return fmt.Errorf("primitives: %w", err)
	}

	if err := r.Flip(screen); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return savePNG(r, screen, output)
}

func drawGradientBackground(r render.Renderer, screen render.Target, w, h int) error {
	steps := 100
	for i := range steps {
		t := float64(i) / float64(steps)
		c := color.NRGBA{
			R: uint8(255 * (0.1 + t*0.4)),
			G: uint8(255 * (0.2 + t*0.3)),
			B: uint8(255 * (0.4 + t*0.2)),
			A: 255,
		}
		y := float32(float64(h) * t)
		if err := r.RectangleFilled(screen, 0, y, float32(w), y+float32(h)/float32(steps)+1, c); err != nil {
			return err
		}
	}
	return nil
}

// newSprite creates a size×size image holding a soft-edged disc.
func newSprite(r render.Renderer, size int) (render.Image, error) {
	src := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			if d > 1 {
				continue
			}
			src.SetNRGBA(x, y, color.NRGBA{
				R: 255,
				G: uint8(200 * (1 - d)),
				B: uint8(60 + 120*d),
				A: uint8(255 * math.Min(1, 4*(1-d))),
			})
		}
	}
	buf, err := pixel.FromImage(src)
	if err != nil {
		return render.Image{}, err
	}
	return r.CopyImageFromSurface(buf)
}

func drawSpritesDemo(r render.Renderer, screen render.Target, sprite render.Image) error {
	// Centred blits
	for i := range 5 {
		if err := r.Blit(sprite, nil, screen, float32(100+i*70), 120); err != nil {
			return err
		}
	}

	// Rotated and mirrored copies
	centerX, centerY := float32(600), float32(150)
	for i := range 8 {
		deg := float32(i * 45)
		if err := r.BlitRotate(sprite, nil, screen, centerX-32, centerY-32, deg); err != nil {
			return err
		}
	}
	if err := r.BlitScale(sprite, nil, screen, 80, 220, -1.5, 1); err != nil {
		return err
	}
	return r.BlitTransform(sprite, &render.Rect{W: 32, H: 64}, screen, 240, 220, 30, 2, -1)
}

// drawOffscreenDemo draws into an image through its target, then blits the
// result to the window.
func drawOffscreenDemo(r render.Renderer, screen render.Target, sprite render.Image) (err error) {
	canvas, err := r.CreateImage(200, 120, render.FormatRGBA)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, r.FreeImage(canvas)) }()

	off, err := r.LoadTarget(canvas)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, r.FreeTarget(off)) }()

	if err := r.ClearRGBA(off, 20, 20, 30, 220); err != nil {
		return err
	}
	if _, err := r.SetClip(off, 10, 10, 180, 100); err != nil {
		return err
	}
	for i := range 6 {
		if err := r.Blit(sprite, nil, off, float32(20+i*32), 60); err != nil {
			return err
		}
	}
	if err := r.UnsetClip(off); err != nil {
		return err
	}
	if err := r.Rectangle(off, 0, 0, 200, 120, color.NRGBA{R: 255, G: 255, B: 255, A: 255}); err != nil {
		return err
	}
	return r.Blit(canvas, nil, screen, 550, 420)
}

func drawPrimitivesDemo(r render.Renderer, screen render.Target) error {
	yellow := color.NRGBA{R: 255, G: 220, A: 255}
	for i := range 10 {
		x := float32(60 + i*30)
		if err := r.Line(screen, x, 380, x+60, 540, yellow); err != nil {
			return err
		}
	}
	if err := r.Rectangle(screen, 40, 360, 400, 560, color.NRGBA{R: 255, G: 255, B: 255, A: 255}); err != nil {
		return err
	}
	for i := range 40 {
		if err := r.Pixel(screen, float32(420+i*3), 560, yellow); err != nil {
			return err
		}
	}

	// Curved primitives are not implemented by the software renderer.
	err := r.Circle(screen, 100, 100, 20, yellow)
	if errors.Is(err, softgpu.ErrUnsupported) {
		softgpu.Logger().Info("skipping circle", "err", err)
		return nil
	}
	return err
}

func savePNG(r render.Renderer, screen render.Target, path string) error {
	sr, ok := r.(*render.SoftwareRenderer)
	if !ok {
		return fmt.Errorf("renderer %T has no surface", r)
	}
	s, err := sr.Surface(screen)
	if err != nil {
		return err
	}
	snap, ok := s.(surface.Snapshotter)
	if !ok {
		return fmt.Errorf("surface %T cannot snapshot", s)
	}
	img := snap.Snapshot()
	if img == nil {
		return fmt.Errorf("no frame presented")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
