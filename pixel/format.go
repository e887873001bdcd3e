// Package pixel provides host-side pixel buffers, formats and region
// conversion for softgpu.
//
// Buffers hold 8-bit-per-channel pixel data in one of a small set of
// layouts. The renderer uses them as upload sources for native textures
// and as scratch space when a source layout has to be converted into a
// texture's native layout before upload.
package pixel

import "github.com/gogpu/gputypes"

// Format represents a pixel storage layout.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is packed 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	FormatRGBA8

	// FormatRGBX8 is 32-bit RGB with an unused fourth byte (4 bytes per pixel).
	// Pixels are always treated as opaque.
	FormatRGBX8

	// FormatBGRA8 is 32-bit BGRA with straight alpha (4 bytes per pixel).
	FormatBGRA8

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of meaningful channels.
	Channels int

	// HasAlpha indicates if the format carries an alpha channel.
	HasAlpha bool

	// Name is the short display name of the format.
	Name string

	// Texture is the matching GPU texture format, or Undefined.
	Texture gputypes.TextureFormat
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {BytesPerPixel: 1, Channels: 1, Name: "Gray8", Texture: gputypes.TextureFormatR8Unorm},
	FormatRGB8:  {BytesPerPixel: 3, Channels: 3, Name: "RGB8", Texture: gputypes.TextureFormatUndefined},
	FormatRGBA8: {BytesPerPixel: 4, Channels: 4, HasAlpha: true, Name: "RGBA8", Texture: gputypes.TextureFormatRGBA8Unorm},
	FormatRGBX8: {BytesPerPixel: 4, Channels: 3, Name: "RGBX8", Texture: gputypes.TextureFormatRGBA8Unorm},
	FormatBGRA8: {BytesPerPixel: 4, Channels: 4, HasAlpha: true, Name: "BGRA8", Texture: gputypes.TextureFormatBGRA8Unorm},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of meaningful channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// RowBytes returns the number of bytes for a row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// TextureFormat returns the GPU texture format with the same memory layout.
// Formats without a GPU equivalent return TextureFormatUndefined.
func (f Format) TextureFormat() gputypes.TextureFormat {
	return f.Info().Texture
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return f.Info().Name
}
