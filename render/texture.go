// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/softgpu"
)

// ErrForeignTexture is returned by a TextureDrawer for textures it did not
// create.
var ErrForeignTexture = errors.New("render: texture was not created by this renderer")

// Texture adapts an RGBA image to the gpucontext texture interfaces.
type Texture struct {
	r   *SoftwareRenderer
	img Image
}

var (
	_ gpucontext.Texture              = (*Texture)(nil)
	_ gpucontext.TextureUpdater       = (*Texture)(nil)
	_ gpucontext.TextureRegionUpdater = (*Texture)(nil)
)

// NewTextureFromRGBA creates an RGBA image from tightly packed
// width×height RGBA bytes and wraps it as a gpucontext.Texture.
func (r *SoftwareRenderer) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	img, err := r.CreateImage(width, height, FormatRGBA)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := r.UpdateImageBytes(img, nil, data, width*4); err != nil {
			_ = r.FreeImage(img)
			return nil, err
		}
	}
	return &Texture{r: r, img: img}, nil
}

// Image returns the image backing t.
func (t *Texture) Image() Image { return t.img }

// Width returns the texture width, or 0 once released.
func (t *Texture) Width() int {
	info, _ := t.r.ImageInfo(t.img)
	return info.Width
}

// Height returns the texture height, or 0 once released.
func (t *Texture) Height() int {
	info, _ := t.r.ImageInfo(t.img)
	return info.Height
}

// UpdateData replaces the whole texture with tightly packed RGBA bytes.
func (t *Texture) UpdateData(data []byte) error {
	return t.r.UpdateImageBytes(t.img, nil, data, t.Width()*4)
}

// UpdateRegion replaces a w×h region at (x, y) with tightly packed RGBA
// bytes.
func (t *Texture) UpdateRegion(x, y, w, h int, data []byte) error {
	rect := Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)}
	return t.r.UpdateImageBytes(t.img, &rect, data, w*4)
}

// Release frees the backing image.
func (t *Texture) Release() error {
	return t.r.FreeImage(t.img)
}

// TextureDrawer returns a gpucontext.TextureDrawer that draws onto target.
func (r *SoftwareRenderer) TextureDrawer(target Target) gpucontext.TextureDrawer {
	return &textureDrawer{r: r, target: target}
}

type textureDrawer struct {
	r      *SoftwareRenderer
	target Target
}

// DrawTexture draws tex with its top-left corner at (x, y).
func (d *textureDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	t, ok := tex.(*Texture)
	if !ok || t.r != d.r {
		return d.r.report(&softgpu.Error{
			Op:      "DrawTexture",
			Code:    softgpu.ErrorUser,
			Details: "foreign texture",
			Err:     ErrForeignTexture,
		})
	}
	return d.r.BlitTransformX(t.img, nil, d.target, x, y, 0, 0, 0, 1, 1)
}

func (d *textureDrawer) TextureCreator() gpucontext.TextureCreator { return d.r }
