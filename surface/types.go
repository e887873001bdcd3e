// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "image/color"

// Flip selects mirroring for CopyEx.
type Flip uint8

const (
	// FlipNone leaves the copy unmirrored.
	FlipNone Flip = 0

	// FlipHorizontal mirrors the copy left to right.
	FlipHorizontal Flip = 1 << 0

	// FlipVertical mirrors the copy top to bottom.
	FlipVertical Flip = 1 << 1
)

// String returns a string representation of the flip flags.
func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "None"
	case FlipHorizontal:
		return "Horizontal"
	case FlipVertical:
		return "Vertical"
	case FlipHorizontal | FlipVertical:
		return "Both"
	default:
		return "Unknown"
	}
}

// DefaultMaxTextureSize is the largest texture edge accepted when
// Options.MaxTextureSize is zero.
const DefaultMaxTextureSize = 8192

// Options configures surface creation.
type Options struct {
	// Width is the back buffer width used when the window reports no size.
	Width int

	// Height is the back buffer height used when the window reports no size.
	Height int

	// MaxTextureSize limits texture width and height.
	// Default: DefaultMaxTextureSize
	MaxTextureSize int

	// BackgroundColor is the initial content of the back buffer.
	// Default: transparent
	BackgroundColor color.Color

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:          width,
		Height:         height,
		MaxTextureSize: DefaultMaxTextureSize,
	}
}
