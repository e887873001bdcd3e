// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgpu/pixel"
)

// Surface is a native 2D drawing surface bound to one window.
//
// A Surface draws into a current destination: the window back buffer, or a
// Texture it created and that has been selected with SetTarget. Primitives
// and copies honour the clip rectangle of the current destination; Clear
// does not.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s, err := surface.NewSurface(window, surface.Options{})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.SetDrawColor(color.NRGBA{0, 0, 0, 255})
//	s.Clear()
//	s.Present()
type Surface interface {
	// OutputSize returns the window drawable size in pixels.
	OutputSize() (width, height int)

	// Format returns the pixel format of the window back buffer.
	Format() gputypes.TextureFormat

	// CreateTexture allocates a texture usable both as a copy source and
	// as a destination.
	CreateTexture(format pixel.Format, width, height int) (Texture, error)

	// SetTarget selects the destination for subsequent drawing.
	// A nil texture selects the window. Switching resets the clip.
	SetTarget(tex Texture) error

	// SetClipRect restricts drawing on the current destination.
	// A nil rectangle disables clipping.
	SetClipRect(r *pixel.Rect) error

	// SetDrawColor sets the color used by Clear and the primitives.
	SetDrawColor(c color.NRGBA) error

	// Clear fills the whole current destination with the draw color.
	Clear() error

	// DrawPoint draws a single pixel.
	DrawPoint(x, y int) error

	// DrawLine draws a one-pixel line including both end points.
	DrawLine(x1, y1, x2, y2 int) error

	// DrawRect draws a one-pixel rectangle outline.
	DrawRect(r pixel.Rect) error

	// FillRect fills a rectangle.
	FillRect(r pixel.Rect) error

	// Copy copies the src region of tex into dst, scaling if sizes differ.
	Copy(tex Texture, src, dst pixel.Rect) error

	// CopyEx is Copy with a clockwise rotation in degrees around center,
	// given relative to dst's top-left corner, and optional flipping.
	CopyEx(tex Texture, src, dst pixel.Rect, degrees float64, center image.Point, flip Flip) error

	// Present shows the window back buffer.
	Present() error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Texture is a pixel store owned by a Surface.
type Texture interface {
	gpucontext.Texture

	// Format returns the texture's native pixel layout.
	Format() pixel.Format

	// Update replaces the pixels of region r. pixels holds r.H rows
	// starting pitch bytes apart, in the texture's native layout.
	Update(r pixel.Rect, pixels []byte, pitch int) error

	// SetBlendState selects how the texture is composited when copied.
	SetBlendState(state gputypes.BlendState) error

	// Destroy releases the texture. If it is the current destination of
	// its surface, the surface falls back to the window.
	Destroy()
}

// Snapshotter is an optional interface for surfaces that can read back
// the presented frame.
type Snapshotter interface {
	// Snapshot returns a copy of the last presented frame.
	Snapshot() *image.RGBA
}
