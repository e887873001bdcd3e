// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/surface"
)

// BlitParams is a blit request resolved to surface coordinates.
type BlitParams struct {
	Src     pixel.Rect
	Dst     pixel.Rect
	Center  image.Point
	Flip    surface.Flip
	Degrees float64
}

// placeBlit positions an unscaled blit so that the anchor point of src
// lands on (x, y). The position is truncated before the anchor offset is
// subtracted.
func placeBlit(src pixel.Rect, x, y, anchorX, anchorY float32) pixel.Rect {
	return pixel.Rect{
		X: int(float32(int(x)) - float32(src.W)*anchorX),
		Y: int(float32(int(y)) - float32(src.H)*anchorY),
		W: src.W,
		H: src.H,
	}
}

// transformBlit resolves a rotated and scaled blit. Negative scale factors
// become a flip on that axis. The destination top-left is (x, y) itself:
// no anchor offset is applied here, only to the rotation centre.
func transformBlit(src pixel.Rect, x, y, pivotX, pivotY, degrees, sx, sy float32) BlitParams {
	flip := surface.FlipNone
	if sx < 0 {
		sx = -sx
		flip |= surface.FlipHorizontal
	}
	if sy < 0 {
		sy = -sy
		flip |= surface.FlipVertical
	}
	return BlitParams{
		Src: src,
		Dst: pixel.Rect{
			X: int(x),
			Y: int(y),
			W: int(float32(src.W) * sx),
			H: int(float32(src.H) * sy),
		},
		Center:  image.Pt(int(pivotX*sx), int(pivotY*sy)),
		Flip:    flip,
		Degrees: float64(degrees),
	}
}

// sourceRect returns src truncated to pixels, or the whole image.
func sourceRect(rec *imageRecord, src *Rect) pixel.Rect {
	if src == nil {
		return pixel.Rect{W: rec.w, H: rec.h}
	}
	return src.pixels()
}

// Blit draws src of img so that the image anchor lands on (x, y).
func (r *SoftwareRenderer) Blit(img Image, src *Rect, t Target, x, y float32) error {
	const op = "Blit"
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	_, ctx, err := r.bind(op, t)
	if err != nil {
		return err
	}

	sr := sourceRect(rec, src)
	dr := placeBlit(sr, x, y, rec.anchorX, rec.anchorY)
	if err := ctx.surface.Copy(rec.data.tex, sr, dr); err != nil {
		return r.failNative(op, err, "failed to copy %v to %v", sr, dr)
	}
	return nil
}

// BlitRotate draws img rotated clockwise by degrees about its anchor, with
// the source top-left at (x, y).
func (r *SoftwareRenderer) BlitRotate(img Image, src *Rect, t Target, x, y, degrees float32) error {
	return r.blitAnchored("BlitRotate", img, src, t, x, y, degrees, 1, 1)
}

// BlitScale draws img scaled by (sx, sy). Negative factors flip the image.
func (r *SoftwareRenderer) BlitScale(img Image, src *Rect, t Target, x, y, sx, sy float32) error {
	return r.blitAnchored("BlitScale", img, src, t, x, y, 0, sx, sy)
}

// BlitTransform draws img rotated about its anchor and scaled.
func (r *SoftwareRenderer) BlitTransform(img Image, src *Rect, t Target, x, y, degrees, sx, sy float32) error {
	return r.blitAnchored("BlitTransform", img, src, t, x, y, degrees, sx, sy)
}

func (r *SoftwareRenderer) blitAnchored(op string, img Image, src *Rect, t Target, x, y, degrees, sx, sy float32) error {
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	sr := sourceRect(rec, src)
	pivotX := float32(sr.W) * rec.anchorX
	pivotY := float32(sr.H) * rec.anchorY
	return r.blitTransform(op, rec, sr, t, x, y, pivotX, pivotY, degrees, sx, sy)
}

// BlitTransformX draws img with its top-left at (x, y), scaled by (sx, sy)
// and rotated clockwise by degrees about (pivotX, pivotY) in source pixels.
func (r *SoftwareRenderer) BlitTransformX(img Image, src *Rect, t Target, x, y, pivotX, pivotY, degrees, sx, sy float32) error {
	const op = "BlitTransformX"
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	return r.blitTransform(op, rec, sourceRect(rec, src), t, x, y, pivotX, pivotY, degrees, sx, sy)
}

func (r *SoftwareRenderer) blitTransform(op string, rec *imageRecord, sr pixel.Rect, t Target, x, y, pivotX, pivotY, degrees, sx, sy float32) error {
	_, ctx, err := r.bind(op, t)
	if err != nil {
		return err
	}

	p := transformBlit(sr, x, y, pivotX, pivotY, degrees, sx, sy)
	if err := ctx.surface.CopyEx(rec.data.tex, p.Src, p.Dst, p.Degrees, p.Center, p.Flip); err != nil {
		return r.failNative(op, err, "failed to copy %v to %v", p.Src, p.Dst)
	}
	return nil
}
