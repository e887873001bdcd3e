// Package clip intersects pixel regions against buffer bounds for partial
// texture updates.
package clip

import "github.com/gogpu/softgpu/pixel"

// CopyRegion clips a copy of src (inside a srcW×srcH buffer) onto dst
// (inside a dstW×dstH buffer).
//
// The clamps run in a fixed order: src against the source bounds, then
// dst against the destination bounds, then the dst extent is capped to
// what remains of src. Every edge trimmed from one rectangle is trimmed
// from the other by the same amount, so the two stay aligned pixel for
// pixel. A source clamp can push dst to a negative origin; the
// destination clamp treats that like any caller-supplied negative origin.
//
// ok is false when nothing is left to copy. When ok is true the returned
// dst lies inside the destination buffer and the dst.W×dst.H block
// starting at (src.X, src.Y) lies inside the source buffer.
func CopyRegion(src pixel.Rect, srcW, srcH int, dst pixel.Rect, dstW, dstH int) (pixel.Rect, pixel.Rect, bool) {
	// Source against source bounds.
	if src.X < 0 {
		n := -src.X
		src.X += n
		dst.X += n
		src.W -= n
		dst.W -= n
	}
	if src.Y < 0 {
		n := -src.Y
		src.Y += n
		dst.Y += n
		src.H -= n
		dst.H -= n
	}
	if n := src.X + src.W - srcW; n > 0 {
		src.W -= n
		dst.W -= n
	}
	if n := src.Y + src.H - srcH; n > 0 {
		src.H -= n
		dst.H -= n
	}

	// Destination against destination bounds.
	if dst.X < 0 {
		n := -dst.X
		src.X += n
		dst.X += n
		src.W -= n
		dst.W -= n
	}
	if dst.Y < 0 {
		n := -dst.Y
		src.Y += n
		dst.Y += n
		src.H -= n
		dst.H -= n
	}
	if n := dst.X + dst.W - dstW; n > 0 {
		src.W -= n
		dst.W -= n
	}
	if n := dst.Y + dst.H - dstH; n > 0 {
		src.H -= n
		dst.H -= n
	}

	// Never copy more than the source provides.
	dst.W = min(dst.W, src.W)
	dst.H = min(dst.H, src.H)

	if dst.W <= 0 || dst.H <= 0 {
		return src, dst, false
	}
	return src, dst, true
}

// WriteRegion clips dst against a dstW×dstH buffer for a raw row upload.
//
// skipX and skipY report how many leading columns and rows of the caller's
// data fall outside the buffer; the caller advances its read offset by
// skipX pixels and skipY rows. ok is false when nothing is left to write.
func WriteRegion(dst pixel.Rect, dstW, dstH int) (r pixel.Rect, skipX, skipY int, ok bool) {
	if dst.X < 0 {
		skipX = -dst.X
		dst.X = 0
		dst.W -= skipX
	}
	if dst.Y < 0 {
		skipY = -dst.Y
		dst.Y = 0
		dst.H -= skipY
	}
	if n := dst.X + dst.W - dstW; n > 0 {
		dst.W -= n
	}
	if n := dst.Y + dst.H - dstH; n > 0 {
		dst.H -= n
	}
	if dst.W <= 0 || dst.H <= 0 {
		return dst, skipX, skipY, false
	}
	return dst, skipX, skipY, true
}
