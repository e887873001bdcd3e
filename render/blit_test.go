// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/surface"
)

func TestPlaceBlit(t *testing.T) {
	tests := []struct {
		name   string
		src    pixel.Rect
		x, y   float32
		ax, ay float32
		want   pixel.Rect
	}{
		{"centred", pixel.R(0, 0, 100, 100), 50, 50, 0.5, 0.5, pixel.R(0, 0, 100, 100)},
		{"top-left anchor", pixel.R(0, 0, 10, 20), 7, 9, 0, 0, pixel.R(7, 9, 10, 20)},
		{"bottom-right anchor", pixel.R(0, 0, 10, 20), 7, 9, 1, 1, pixel.R(-3, -11, 10, 20)},
		{"position truncated first", pixel.R(0, 0, 3, 3), 10.9, 10.9, 0.5, 0.5, pixel.R(8, 8, 3, 3)},
		{"sub-rect keeps size", pixel.R(5, 5, 4, 6), 0, 0, 0.5, 0.5, pixel.R(-2, -3, 4, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placeBlit(tt.src, tt.x, tt.y, tt.ax, tt.ay); got != tt.want {
				t.Errorf("placeBlit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformBlit(t *testing.T) {
	src := pixel.R(0, 0, 100, 100)
	tests := []struct {
		name       string
		x, y       float32
		px, py     float32
		deg        float32
		sx, sy     float32
		wantDst    pixel.Rect
		wantCenter image.Point
		wantFlip   surface.Flip
	}{
		{
			name: "negative x scale flips", x: 10, y: 20, px: 50, py: 50, sx: -2, sy: 1,
			wantDst: pixel.R(10, 20, 200, 100), wantCenter: image.Pt(100, 50), wantFlip: surface.FlipHorizontal,
		},
		{
			name: "both negative", px: 10, py: 20, sx: -1, sy: -0.5,
			wantDst: pixel.R(0, 0, 100, 50), wantCenter: image.Pt(10, 10), wantFlip: surface.FlipHorizontal | surface.FlipVertical,
		},
		{
			name: "no anchor offset on position", x: 50, y: 50, px: 50, py: 50, deg: 90, sx: 1, sy: 1,
			wantDst: pixel.R(50, 50, 100, 100), wantCenter: image.Pt(50, 50),
		},
		{
			name: "fractional values truncate", x: 1.7, y: -1.7, px: 3.3, py: 3.3, sx: 1.5, sy: 1.5,
			wantDst: pixel.R(1, -1, 150, 150), wantCenter: image.Pt(4, 4),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := transformBlit(src, tt.x, tt.y, tt.px, tt.py, tt.deg, tt.sx, tt.sy)
			if p.Src != src {
				t.Errorf("Src = %v, want %v", p.Src, src)
			}
			if p.Dst != tt.wantDst {
				t.Errorf("Dst = %v, want %v", p.Dst, tt.wantDst)
			}
			if p.Center != tt.wantCenter {
				t.Errorf("Center = %v, want %v", p.Center, tt.wantCenter)
			}
			if p.Flip != tt.wantFlip {
				t.Errorf("Flip = %v, want %v", p.Flip, tt.wantFlip)
			}
			if p.Degrees != float64(tt.deg) {
				t.Errorf("Degrees = %v, want %v", p.Degrees, tt.deg)
			}
		})
	}
}

func TestBlit_Scenario(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 100, 100)
	fillImage(t, r, img, red)

	if err := r.Blit(img, nil, screen, 50, 50); err != nil {
		t.Fatalf("Blit() error = %v", err)
	}
	if len(rec.copies) != 1 {
		t.Fatalf("Copy calls = %d, want 1", len(rec.copies))
	}
	c := rec.copies[0]
	if c.src != pixel.R(0, 0, 100, 100) || c.dst != pixel.R(0, 0, 100, 100) {
		t.Errorf("Copy(%v -> %v), want full image at origin", c.src, c.dst)
	}
	if got := rec.BackBuffer().RGBAAt(99, 99); got.R != 255 || got.A != 255 {
		t.Errorf("back buffer (99,99) = %v, want red", got)
	}
	if got := rec.BackBuffer().RGBAAt(100, 100); got.A != 0 {
		t.Errorf("back buffer (100,100) = %v, want untouched", got)
	}
}

func TestBlit_SourceRect(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 64, 64)
	_ = r.SetAnchor(img, 0, 0)

	if err := r.Blit(img, &Rect{X: 8, Y: 8, W: 16.9, H: 4}, screen, 3, 4); err != nil {
		t.Fatalf("Blit() error = %v", err)
	}
	c := rec.copies[0]
	if c.src != pixel.R(8, 8, 16, 4) || c.dst != pixel.R(3, 4, 16, 4) {
		t.Errorf("Copy(%v -> %v), want (8,8 16x4) -> (3,4 16x4)", c.src, c.dst)
	}
}

func TestBlitRotate(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 40, 20)

	if err := r.BlitRotate(img, nil, screen, 100, 100, 45); err != nil {
		t.Fatalf("BlitRotate() error = %v", err)
	}
	c := rec.copyExs[0]
	if c.dst != pixel.R(100, 100, 40, 20) {
		t.Errorf("dst = %v, want (100,100 40x20)", c.dst)
	}
	if c.center != image.Pt(20, 10) || c.degrees != 45 || c.flip != surface.FlipNone {
		t.Errorf("CopyEx center %v degrees %v flip %v", c.center, c.degrees, c.flip)
	}
}

func TestBlitScale(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 100, 100)

	if err := r.BlitScale(img, nil, screen, 0, 0, -2, 1); err != nil {
		t.Fatalf("BlitScale() error = %v", err)
	}
	c := rec.copyExs[0]
	if c.flip != surface.FlipHorizontal {
		t.Errorf("flip = %v, want Horizontal", c.flip)
	}
	if c.dst.W != 200 || c.dst.H != 100 {
		t.Errorf("dst size = %dx%d, want 200x100", c.dst.W, c.dst.H)
	}
	if c.center != image.Pt(100, 50) || c.degrees != 0 {
		t.Errorf("center %v degrees %v, want (100,50) 0", c.center, c.degrees)
	}
}

func TestBlitTransform(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 10, 10)
	_ = r.SetAnchor(img, 0, 1)

	if err := r.BlitTransform(img, &Rect{W: 4, H: 8}, screen, 5, 6, 30, 2, -3); err != nil {
		t.Fatalf("BlitTransform() error = %v", err)
	}
	c := rec.copyExs[0]
	if c.src != pixel.R(0, 0, 4, 8) || c.dst != pixel.R(5, 6, 8, 24) {
		t.Errorf("CopyEx(%v -> %v), want (0,0 4x8) -> (5,6 8x24)", c.src, c.dst)
	}
	if c.center != image.Pt(0, 24) || c.flip != surface.FlipVertical || c.degrees != 30 {
		t.Errorf("center %v flip %v degrees %v", c.center, c.flip, c.degrees)
	}
}

func TestBlitTransformX(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 10, 10)
	fillImage(t, r, img, green)

	if err := r.BlitTransformX(img, nil, screen, 20, 30, 0, 0, 0, 1, 1); err != nil {
		t.Fatalf("BlitTransformX() error = %v", err)
	}
	c := rec.copyExs[0]
	if c.dst != pixel.R(20, 30, 10, 10) || c.center != (image.Point{}) {
		t.Errorf("CopyEx dst %v center %v", c.dst, c.center)
	}
	if got := rec.BackBuffer().RGBAAt(20, 30); got.G != 255 {
		t.Errorf("back buffer (20,30) = %v, want green", got)
	}
	if got := rec.BackBuffer().RGBAAt(19, 30); got.A != 0 {
		t.Errorf("back buffer (19,30) = %v, want untouched", got)
	}
}

func TestBlit_OntoOffscreenTarget(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	canvas := mustImage(t, r, 20, 20)
	off, _ := r.LoadTarget(canvas)
	sprite := mustImage(t, r, 4, 4)
	fillImage(t, r, sprite, red)
	_ = r.SetAnchor(sprite, 0, 0)

	if err := r.Blit(sprite, nil, off, 2, 2); err != nil {
		t.Fatalf("Blit() error = %v", err)
	}
	if got := paintedBounds(textureOf(t, r, canvas).Image()); got != image.Rect(2, 2, 6, 6) {
		t.Errorf("painted = %v, want (2,2)-(6,6)", got)
	}
	// Drawing an image into its own target is rejected by the surface.
	if err := r.Blit(canvas, nil, off, 0, 0); !errors.Is(err, softgpu.ErrBackend) {
		t.Errorf("self blit error = %v, want backend error", err)
	}
	if err := r.Blit(canvas, nil, screen, 0, 0); err != nil {
		t.Errorf("Blit(canvas, screen) error = %v", err)
	}
}

func TestBlit_InvalidHandles(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	img := mustImage(t, r, 4, 4)

	if err := r.Blit(Image{}, nil, screen, 0, 0); !errors.Is(err, softgpu.ErrNullArgument) {
		t.Errorf("zero image error = %v, want null argument", err)
	}
	if err := r.Blit(img, nil, Target{}, 0, 0); !errors.Is(err, softgpu.ErrNullArgument) {
		t.Errorf("zero target error = %v, want null argument", err)
	}
	_ = r.FreeImage(img)
	if err := r.BlitRotate(img, nil, screen, 0, 0, 10); !errors.Is(err, softgpu.ErrUser) {
		t.Errorf("stale image error = %v, want user error", err)
	}
}
