// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/surface"
)

// ClearRGBA fills t with the given colour. The clip is ignored.
func (r *SoftwareRenderer) ClearRGBA(t Target, red, green, blue, alpha uint8) error {
	return r.draw("ClearRGBA", t, color.NRGBA{R: red, G: green, B: blue, A: alpha}, surface.Surface.Clear)
}

// FlushBlitBuffer does nothing; every blit is issued immediately.
func (r *SoftwareRenderer) FlushBlitBuffer() {}

// Flip presents t.
func (r *SoftwareRenderer) Flip(t Target) error {
	const op = "Flip"
	_, ctx, err := r.bind(op, t)
	if err != nil {
		return err
	}
	if err := ctx.surface.Present(); err != nil {
		return r.failNative(op, err, "failed to present")
	}
	return nil
}

// Pixel sets one pixel of t.
func (r *SoftwareRenderer) Pixel(t Target, x, y float32, c color.NRGBA) error {
	return r.draw("Pixel", t, c, func(s surface.Surface) error {
		return s.DrawPoint(int(x), int(y))
	})
}

// Line draws a one pixel wide line on t.
func (r *SoftwareRenderer) Line(t Target, x1, y1, x2, y2 float32, c color.NRGBA) error {
	return r.draw("Line", t, c, func(s surface.Surface) error {
		return s.DrawLine(int(x1), int(y1), int(x2), int(y2))
	})
}

// Rectangle outlines the rectangle spanning (x1, y1) to (x2, y2).
func (r *SoftwareRenderer) Rectangle(t Target, x1, y1, x2, y2 float32, c color.NRGBA) error {
	return r.draw("Rectangle", t, c, func(s surface.Surface) error {
		return s.DrawRect(cornerRect(x1, y1, x2, y2))
	})
}

// RectangleFilled fills the rectangle spanning (x1, y1) to (x2, y2).
func (r *SoftwareRenderer) RectangleFilled(t Target, x1, y1, x2, y2 float32, c color.NRGBA) error {
	return r.draw("RectangleFilled", t, c, func(s surface.Surface) error {
		return s.FillRect(cornerRect(x1, y1, x2, y2))
	})
}

func cornerRect(x1, y1, x2, y2 float32) pixel.Rect {
	return pixel.Rect{X: int(x1), Y: int(y1), W: int(x2 - x1), H: int(y2 - y1)}
}

// draw binds t, sets the draw colour and runs fn on the surface.
func (r *SoftwareRenderer) draw(op string, t Target, c color.NRGBA, fn func(surface.Surface) error) error {
	_, ctx, err := r.bind(op, t)
	if err != nil {
		return err
	}
	if err := ctx.surface.SetDrawColor(c); err != nil {
		return r.failNative(op, err, "failed to set draw colour")
	}
	if err := fn(ctx.surface); err != nil {
		return r.failNative(op, err, "draw failed")
	}
	return nil
}
