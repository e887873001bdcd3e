package pixel

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixel: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixel: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")

	// ErrOutOfBounds is returned when a region lies outside buffer bounds.
	ErrOutOfBounds = errors.New("pixel: region out of bounds")
)

// Buffer is a host-side pixel buffer: a contiguous byte slice with a row
// stride and a Format.
//
// Buffer is not safe for concurrent writes.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuffer allocates a zeroed buffer with the given dimensions and format.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	stride := format.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	need := stride*(height-1) + format.RowBytes(width)
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &Buffer{
		data:   data[:need],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromImage copies img into a new RGBA8 buffer.
// *image.NRGBA sources are copied row by row; other images go through
// the color model.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := NewBuffer(bounds.Dx(), bounds.Dy(), FormatRGBA8)
	if err != nil {
		return nil, err
	}
	if src, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Row(y), src.Pix[off:off+buf.stride])
		}
		return buf, nil
	}
	for y := range buf.height {
		for x := range buf.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return buf, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row, including padding.
func (b *Buffer) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *Buffer) Format() Format { return b.format }

// Bounds returns the whole-buffer region.
func (b *Buffer) Bounds() Rect { return Rect{W: b.width, H: b.height} }

// Data returns the raw pixel data.
func (b *Buffer) Data() []byte { return b.data }

// Row returns the pixel bytes of row y, or nil if y is out of bounds.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 if out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Region returns the bytes starting at the first pixel of r, extended to
// the end of r's last row. The result is suitable for row-pitched uploads
// with Stride as the pitch.
func (b *Buffer) Region(r Rect) ([]byte, error) {
	if r.Empty() || !r.Within(b.width, b.height) {
		return nil, ErrOutOfBounds
	}
	start := b.PixelOffset(r.X, r.Y)
	end := (r.Y+r.H-1)*b.stride + (r.X+r.W)*b.format.BytesPerPixel()
	return b.data[start:end], nil
}

// RGBA returns the straight-alpha color at (x, y).
// Grayscale and opaque formats report alpha 255. Out of bounds returns zero.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[off:]
	switch b.format {
	case FormatGray8:
		return p[0], p[0], p[0], 255
	case FormatRGB8, FormatRGBX8:
		return p[0], p[1], p[2], 255
	case FormatRGBA8:
		return p[0], p[1], p[2], p[3]
	case FormatBGRA8:
		return p[2], p[1], p[0], p[3]
	default:
		return 0, 0, 0, 0
	}
}

// SetRGBA stores a straight-alpha color at (x, y).
// Out-of-bounds coordinates are ignored.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return
	}
	p := b.data[off:]
	switch b.format {
	case FormatGray8:
		p[0] = byte((int(r)*299 + int(g)*587 + int(bl)*114) / 1000)
	case FormatRGB8:
		p[0], p[1], p[2] = r, g, bl
	case FormatRGBX8:
		p[0], p[1], p[2], p[3] = r, g, bl, 255
	case FormatRGBA8:
		p[0], p[1], p[2], p[3] = r, g, bl, a
	case FormatBGRA8:
		p[0], p[1], p[2], p[3] = bl, g, r, a
	}
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		for x := range b.width {
			b.SetRGBA(x, y, r, g, bl, a)
		}
	}
}

// Clear zeroes all pixel data.
func (b *Buffer) Clear() {
	clear(b.data)
}
