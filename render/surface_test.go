// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/surface"
)

var errInjected = errors.New("injected failure")

type copyCall struct {
	tex      surface.Texture
	src, dst pixel.Rect
}

type copyExCall struct {
	copyCall
	degrees float64
	center  image.Point
	flip    surface.Flip
}

// recordingSurface wraps an ImageSurface and records the calls the
// renderer makes.
type recordingSurface struct {
	*surface.ImageSurface

	setTargets []surface.Texture
	clips      []*pixel.Rect
	copies     []copyCall
	copyExs    []copyExCall
	textures   []surface.Texture
	closed     int

	failSetTarget error
	failCreate    error
}

func (s *recordingSurface) CreateTexture(format pixel.Format, w, h int) (surface.Texture, error) {
	if s.failCreate != nil {
		return nil, s.failCreate
	}
	tex, err := s.ImageSurface.CreateTexture(format, w, h)
	if err == nil {
		s.textures = append(s.textures, tex)
	}
	return tex, err
}

func (s *recordingSurface) SetTarget(tex surface.Texture) error {
	if s.failSetTarget != nil {
		return s.failSetTarget
	}
	s.setTargets = append(s.setTargets, tex)
	return s.ImageSurface.SetTarget(tex)
}

func (s *recordingSurface) SetClipRect(r *pixel.Rect) error {
	if r != nil {
		c := *r
		r = &c
	}
	s.clips = append(s.clips, r)
	return s.ImageSurface.SetClipRect(r)
}

func (s *recordingSurface) Copy(tex surface.Texture, src, dst pixel.Rect) error {
	s.copies = append(s.copies, copyCall{tex: tex, src: src, dst: dst})
	return s.ImageSurface.Copy(tex, src, dst)
}

func (s *recordingSurface) CopyEx(tex surface.Texture, src, dst pixel.Rect, degrees float64, center image.Point, flip surface.Flip) error {
	s.copyExs = append(s.copyExs, copyExCall{
		copyCall: copyCall{tex: tex, src: src, dst: dst},
		degrees:  degrees,
		center:   center,
		flip:     flip,
	})
	return s.ImageSurface.CopyEx(tex, src, dst, degrees, center, flip)
}

func (s *recordingSurface) Close() error {
	s.closed++
	return s.ImageSurface.Close()
}

// newTestRenderer returns a renderer with an 800×600 window target backed
// by a recording surface.
func newTestRenderer(t *testing.T, opts ...Option) (*SoftwareRenderer, Target, *recordingSurface) {
	t.Helper()
	var rec *recordingSurface
	factory := func(w gpucontext.WindowProvider, o surface.Options) (surface.Surface, error) {
		s, err := surface.NewImageSurface(w, o)
		if err != nil {
			return nil, err
		}
		rec = &recordingSurface{ImageSurface: s}
		return rec, nil
	}
	r := New(append([]Option{WithSurfaceFactory(factory)}, opts...)...)
	screen, err := r.Init(nil, 800, 600)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return r, screen, rec
}

func mustImage(t *testing.T, r *SoftwareRenderer, w, h int) Image {
	t.Helper()
	img, err := r.CreateImage(w, h, FormatRGBA)
	if err != nil {
		t.Fatalf("CreateImage() error = %v", err)
	}
	return img
}

// fillImage uploads a solid colour to the whole image.
func fillImage(t *testing.T, r *SoftwareRenderer, img Image, c color.NRGBA) {
	t.Helper()
	info, _ := r.ImageInfo(img)
	buf, err := pixel.NewBuffer(info.Width, info.Height, pixel.FormatRGBA8)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	buf.Fill(c.R, c.G, c.B, c.A)
	if err := r.UpdateImage(img, nil, buf, nil); err != nil {
		t.Fatalf("UpdateImage() error = %v", err)
	}
}

// textureOf returns the native texture behind img.
func textureOf(t *testing.T, r *SoftwareRenderer, img Image) *surface.ImageTexture {
	t.Helper()
	rec, ok := r.images.Get(img.h)
	if !ok {
		t.Fatalf("%v is not live", img)
	}
	tex, ok := rec.data.tex.(*surface.ImageTexture)
	if !ok {
		t.Fatalf("texture type = %T, want *surface.ImageTexture", rec.data.tex)
	}
	return tex
}
