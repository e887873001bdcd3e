// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/softgpu/pixel"
)

// ImageTexture is the texture type of ImageSurface.
//
// Pixels are stored as straight-alpha NRGBA. RGBX textures keep every
// alpha byte at 255.
type ImageTexture struct {
	owner  *ImageSurface
	img    *image.NRGBA
	format pixel.Format
	op     draw.Op
	blend  gputypes.BlendState
}

var _ Texture = (*ImageTexture)(nil)

// Width returns the texture width in pixels.
func (t *ImageTexture) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Rect.Dx()
}

// Height returns the texture height in pixels.
func (t *ImageTexture) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Rect.Dy()
}

// Format returns the texture's native pixel layout.
func (t *ImageTexture) Format() pixel.Format { return t.format }

// BlendState returns the blend state used when copying the texture.
func (t *ImageTexture) BlendState() gputypes.BlendState { return t.blend }

// Image returns the backing image. This is a direct reference, not a copy.
func (t *ImageTexture) Image() *image.NRGBA { return t.img }

// Update replaces the pixels of region r.
func (t *ImageTexture) Update(r pixel.Rect, pixels []byte, pitch int) error {
	if t.img == nil {
		return ErrForeignTexture
	}
	if r.Empty() || !r.Within(t.Width(), t.Height()) {
		return fmt.Errorf("surface: update region %v outside %dx%d texture", r, t.Width(), t.Height())
	}
	rowBytes := t.format.RowBytes(r.W)
	if pitch < rowBytes {
		return fmt.Errorf("surface: pitch %d smaller than row size %d", pitch, rowBytes)
	}
	if need := pitch*(r.H-1) + rowBytes; len(pixels) < need {
		return fmt.Errorf("surface: %d bytes supplied, %d needed", len(pixels), need)
	}

	for y := range r.H {
		row := pixels[y*pitch : y*pitch+rowBytes]
		off := t.img.PixOffset(r.X, r.Y+y)
		dst := t.img.Pix[off : off+rowBytes]
		copy(dst, row)
		if t.format == pixel.FormatRGBX8 {
			for i := 3; i < len(dst); i += 4 {
				dst[i] = 0xff
			}
		}
	}
	return nil
}

// SetBlendState selects the composite operator used by Copy and CopyEx.
// Replace maps to draw.Src; every other state composites with draw.Over.
func (t *ImageTexture) SetBlendState(state gputypes.BlendState) error {
	if t.img == nil {
		return ErrForeignTexture
	}
	t.blend = state
	if state == gputypes.BlendStateReplace() {
		t.op = draw.Src
	} else {
		t.op = draw.Over
	}
	return nil
}

// Destroy releases the pixels. If the texture is the owner's current
// destination, the owner falls back to the window.
func (t *ImageTexture) Destroy() {
	if t.img == nil {
		return
	}
	if t.owner != nil && t.owner.target == t {
		t.owner.target = nil
		t.owner.clip = nil
	}
	t.owner = nil
	t.img = nil
}
