// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/internal/clip"
	"github.com/gogpu/softgpu/pixel"
)

// UpdateImage copies bufRect of buf into imageRect of img.
//
// Both rectangles are clipped against their buffers; the copied extent is
// the overlap. Nil rectangles select the whole image or buffer. Pixels are
// converted when buf's format differs from the texture's. Nothing is
// written when the clipped extent is empty.
func (r *SoftwareRenderer) UpdateImage(img Image, imageRect *Rect, buf *pixel.Buffer, bufRect *Rect) error {
	const op = "UpdateImage"
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	if buf == nil {
		return r.fail(op, softgpu.ErrorNullArgument, "pixel buffer is nil")
	}

	dst := pixel.Rect{W: rec.w, H: rec.h}
	if imageRect != nil {
		dst = imageRect.pixels()
	}
	src := buf.Bounds()
	if bufRect != nil {
		src = bufRect.pixels()
	}
	src, dst, ok := clip.CopyRegion(src, buf.Width(), buf.Height(), dst, rec.w, rec.h)
	if !ok {
		return nil
	}
	// Only the overlap is copied.
	src.W, src.H = dst.W, dst.H

	pixels, pitch := []byte(nil), buf.Stride()
	if native := rec.data.format; buf.Format() != native {
		scratch, err := pixel.Scratch(src.W, src.H, native)
		if err != nil {
			return r.fail(op, softgpu.ErrorData, "cannot convert region %v: %v", src, err)
		}
		defer pixel.Release(scratch)
		if err := pixel.Convert(scratch, 0, 0, buf, src); err != nil {
			return r.fail(op, softgpu.ErrorData, "cannot convert region %v: %v", src, err)
		}
		pixels, pitch = scratch.Data(), scratch.Stride()
	} else {
		pixels, err = buf.Region(src)
		if err != nil {
			return r.fail(op, softgpu.ErrorData, "cannot read region %v: %v", src, err)
		}
	}

	if err := rec.data.tex.Update(dst, pixels, pitch); err != nil {
		return r.failNative(op, err, "failed to update texture region %v", dst)
	}
	return nil
}

// UpdateImageBytes writes rows of raw bytes into imageRect of img.
//
// bytes is laid out like the texture (BytesPerPixel per pixel) with
// bytesPerRow bytes between rows. Only the destination is clipped; rows
// and columns falling outside the image are skipped in bytes.
func (r *SoftwareRenderer) UpdateImageBytes(img Image, imageRect *Rect, bytes []byte, bytesPerRow int) error {
	const op = "UpdateImageBytes"
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	if bytes == nil {
		return r.fail(op, softgpu.ErrorNullArgument, "bytes is nil")
	}

	dst := pixel.Rect{W: rec.w, H: rec.h}
	if imageRect != nil {
		dst = imageRect.pixels()
	}
	dst, skipX, skipY, ok := clip.WriteRegion(dst, rec.w, rec.h)
	if !ok {
		return nil
	}

	bpp := rec.bytesPerPixel
	if bytesPerRow < dst.W*bpp {
		return r.fail(op, softgpu.ErrorData, "row size %d smaller than %d pixels", bytesPerRow, dst.W)
	}
	off := skipY*bytesPerRow + skipX*bpp
	if need := off + bytesPerRow*(dst.H-1) + dst.W*bpp; len(bytes) < need {
		return r.fail(op, softgpu.ErrorData, "%d bytes supplied, %d needed", len(bytes), need)
	}

	if err := rec.data.tex.Update(dst, bytes[off:], bytesPerRow); err != nil {
		return r.failNative(op, err, "failed to update texture region %v", dst)
	}
	return nil
}

// CopyImageFromSurface creates an RGBA image the size of buf holding its
// pixels.
func (r *SoftwareRenderer) CopyImageFromSurface(buf *pixel.Buffer) (Image, error) {
	const op = "CopyImageFromSurface"
	if buf == nil {
		return Image{}, r.fail(op, softgpu.ErrorNullArgument, "pixel buffer is nil")
	}
	img, err := r.CreateImage(buf.Width(), buf.Height(), FormatRGBA)
	if err != nil {
		return Image{}, err
	}
	if err := r.UpdateImage(img, nil, buf, nil); err != nil {
		_ = r.FreeImage(img)
		return Image{}, err
	}
	return img, nil
}
