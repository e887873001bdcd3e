// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgpu/internal/arena"
	"github.com/gogpu/softgpu/pixel"
)

// Image is a handle to an image owned by a renderer.
// The zero Image means "no image".
type Image struct {
	h arena.Handle
}

// IsZero reports whether img is the zero handle.
func (img Image) IsZero() bool { return img.h.IsZero() }

func (img Image) String() string { return "image(" + img.h.String() + ")" }

// Target is a handle to a render target owned by a renderer.
// The zero Target means "no target".
type Target struct {
	h arena.Handle
}

// IsZero reports whether t is the zero handle.
func (t Target) IsZero() bool { return t.h.IsZero() }

func (t Target) String() string { return "target(" + t.h.String() + ")" }

// Rect is a host rectangle in pixels. Fractions are truncated toward zero
// when the rectangle reaches the surface.
type Rect struct {
	X, Y, W, H float32
}

// pixels converts r with C-style truncation.
func (r Rect) pixels() pixel.Rect {
	return pixel.Rect{X: int(r.X), Y: int(r.Y), W: int(r.W), H: int(r.H)}
}

func rectOf(r pixel.Rect) Rect {
	return Rect{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H)}
}

// ImageFormat is the host-side layout of an image.
type ImageFormat uint8

// Host image formats. Only FormatRGB and FormatRGBA can be created.
const (
	FormatLuminance ImageFormat = iota + 1
	FormatLuminanceAlpha
	FormatAlpha
	FormatRGB
	FormatRGBA
	FormatBGR
	FormatBGRA
	FormatABGR
)

var imageFormatNames = [...]string{
	FormatLuminance:      "Luminance",
	FormatLuminanceAlpha: "LuminanceAlpha",
	FormatAlpha:          "Alpha",
	FormatRGB:            "RGB",
	FormatRGBA:           "RGBA",
	FormatBGR:            "BGR",
	FormatBGRA:           "BGRA",
	FormatABGR:           "ABGR",
}

// String returns the format name.
func (f ImageFormat) String() string {
	if f == 0 || int(f) >= len(imageFormatNames) {
		return "Unknown"
	}
	return imageFormatNames[f]
}

// nativeFormat maps a host format to its texture layout and layer count.
func nativeFormat(f ImageFormat) (native pixel.Format, layers int, ok bool) {
	switch f {
	case FormatRGB:
		return pixel.FormatRGBX8, 3, true
	case FormatRGBA:
		return pixel.FormatRGBA8, 4, true
	default:
		return 0, 0, false
	}
}

// FileFormat selects the encoding used by SaveImage.
type FileFormat uint8

// File formats.
const (
	FileAuto FileFormat = iota
	FilePNG
	FileBMP
	FileTGA
)

// BatchFlags describe the vertex layout passed to TriangleBatch.
type BatchFlags uint32

// Vertex layout flags.
const (
	BatchXY BatchFlags = 1 << iota
	BatchXYZ
	BatchST
	BatchRGB
	BatchRGBA
	BatchRGB8
	BatchRGBA8
)

// Camera is a view transform for a target.
type Camera struct {
	X, Y, Z float32
	Angle   float32
	Zoom    float32
}

// ShaderKind selects the pipeline stage of a shader.
type ShaderKind uint8

// Shader kinds.
const (
	VertexShader ShaderKind = iota
	FragmentShader
	GeometryShader
)

// ShaderBlock holds the attribute and uniform locations of a program.
type ShaderBlock struct {
	PositionLocation       int
	TexcoordLocation       int
	ColorLocation          int
	ModelViewProjectionLoc int
}

// Attribute describes an array-backed vertex attribute.
type Attribute struct {
	Location  int
	Normalize bool
	PerVertex int
	Stride    int
	Offset    int
	Values    []float32
}

// ImageInfo is a snapshot of an image's state.
type ImageInfo struct {
	Width, Height               int
	BaseWidth, BaseHeight       int
	TextureWidth, TextureHeight int

	Format        ImageFormat
	NativeFormat  pixel.Format
	BytesPerPixel int
	Layers        int

	AnchorX, AnchorY float32
	Color            color.NRGBA
	UseBlending      bool
	Blend            gputypes.BlendState
	Filter           gputypes.FilterMode
	WrapX, WrapY     gputypes.AddressMode

	// Refs counts references to this handle. TextureRefs counts live
	// handles sharing the texture, aliases included.
	Refs        int
	TextureRefs int
	IsAlias     bool

	Target        Target
	ContextTarget Target
}

// TargetInfo is a snapshot of a target's state.
type TargetInfo struct {
	Width, Height         int
	BaseWidth, BaseHeight int
	Viewport              Rect
	UseClip               bool
	Clip                  Rect

	Refs    int
	IsAlias bool

	// IsWindow is true for the target owning the window context.
	IsWindow      bool
	Image         Image
	ContextTarget Target
}
