// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"io"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgpu/pixel"
)

// Renderer is the full entry-point surface a host drives.
//
// Methods marked unsupported exist so hosts can call them uniformly; they
// report softgpu.ErrorUnsupportedFunction and change nothing.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
//
// Example:
//
//	var r render.Renderer = render.New()
//	screen, err := r.Init(window, 800, 600)
//	if err != nil {
//	    log.Printf("init failed: %v", err)
//	}
//	r.ClearRGBA(screen, 0, 0, 0, 255)
//	r.Flip(screen)
type Renderer interface {
	LifecycleRenderer
	ImageRenderer
	DrawRenderer
	ShaderRenderer

	// PopError removes and returns the oldest recorded error, or nil.
	PopError() error

	// Errors drains all recorded errors, oldest first.
	Errors() []error
}

// LifecycleRenderer covers window targets and renderer state.
type LifecycleRenderer interface {
	// Init opens the window target. A nil window selects a headless
	// window of width×height.
	Init(window gpucontext.WindowProvider, width, height int) (Target, error)

	// CreateTargetFromWindow opens a surface on window and returns its
	// target, which becomes current. Only one window is supported.
	CreateTargetFromWindow(window gpucontext.WindowProvider) (Target, error)

	// CreateAliasTarget is unsupported.
	CreateAliasTarget(target Target) (Target, error)

	// MakeCurrent makes a window target current. Other targets are ignored.
	MakeCurrent(target Target)

	// SetAsCurrent is a no-op.
	SetAsCurrent()

	// ResetRendererState is a no-op.
	ResetRendererState()

	// SetWindowResolution is unsupported.
	SetWindowResolution(width, height int) error

	// SetVirtualResolution is unsupported.
	SetVirtualResolution(target Target, width, height int) error

	// UnsetVirtualResolution is unsupported.
	UnsetVirtualResolution(target Target) error

	// SetFullscreen is unsupported.
	SetFullscreen(enable, useDesktopResolution bool) (bool, error)

	// SetCamera is unsupported.
	SetCamera(target Target, cam Camera) (Camera, error)

	// Quit releases the current window target.
	Quit() error
}

// ImageRenderer covers image and offscreen target management.
type ImageRenderer interface {
	// CreateImage allocates a width×height image in format on the current
	// window. Only FormatRGB and FormatRGBA are supported.
	CreateImage(width, height int, format ImageFormat) (Image, error)

	// CreateImageUsingTexture is unsupported.
	CreateImageUsingTexture(handle uintptr, takeOwnership bool) (Image, error)

	// AliasImage returns a second handle sharing img's texture.
	AliasImage(img Image) (Image, error)

	// SaveImage is unsupported.
	SaveImage(img Image, filename string, format FileFormat) error

	// CopyImage is unsupported.
	CopyImage(img Image) (Image, error)

	// UpdateImage copies bufRect of buf into imageRect of img, clipping
	// both. Nil rectangles select the whole image or buffer.
	UpdateImage(img Image, imageRect *Rect, buf *pixel.Buffer, bufRect *Rect) error

	// UpdateImageBytes writes rows of raw texture-layout bytes into
	// imageRect of img. A nil rectangle selects the whole image.
	UpdateImageBytes(img Image, imageRect *Rect, bytes []byte, bytesPerRow int) error

	// ReplaceImage is unsupported.
	ReplaceImage(img Image, buf *pixel.Buffer, bufRect *Rect) error

	// CopyImageFromSurface creates an RGBA image holding buf's pixels.
	CopyImageFromSurface(buf *pixel.Buffer) (Image, error)

	// CopyImageFromTarget is unsupported.
	CopyImageFromTarget(target Target) (Image, error)

	// CopySurfaceFromTarget is unsupported.
	CopySurfaceFromTarget(target Target) (*pixel.Buffer, error)

	// CopySurfaceFromImage is unsupported.
	CopySurfaceFromImage(img Image) (*pixel.Buffer, error)

	// FreeImage drops one reference to img.
	FreeImage(img Image) error

	// LoadTarget returns the offscreen target drawing into img, creating
	// it on first use. Each call adds a reference.
	LoadTarget(img Image) (Target, error)

	// FreeTarget drops one reference to target.
	FreeTarget(target Target) error

	// GenerateMipmaps is unsupported.
	GenerateMipmaps(img Image) error

	// SetImageFilter only logs a warning.
	SetImageFilter(img Image, filter gputypes.FilterMode)

	// SetWrapMode only logs a warning.
	SetWrapMode(img Image, wrapX, wrapY gputypes.AddressMode)

	// GetPixel is unsupported.
	GetPixel(target Target, x, y int) (color.NRGBA, error)
}

// DrawRenderer covers blits, clipping and primitives.
type DrawRenderer interface {
	// Blit draws src of img (nil = whole image) centred on (x, y)
	// according to the image anchor.
	Blit(img Image, src *Rect, target Target, x, y float32) error

	// BlitRotate draws img rotated clockwise by degrees about its anchor.
	BlitRotate(img Image, src *Rect, target Target, x, y, degrees float32) error

	// BlitScale draws img scaled by (sx, sy). Negative factors flip.
	BlitScale(img Image, src *Rect, target Target, x, y, sx, sy float32) error

	// BlitTransform combines BlitRotate and BlitScale.
	BlitTransform(img Image, src *Rect, target Target, x, y, degrees, sx, sy float32) error

	// BlitTransformX draws img with its top-left at (x, y), rotated about
	// (pivotX, pivotY) in source pixels.
	BlitTransformX(img Image, src *Rect, target Target, x, y, pivotX, pivotY, degrees, sx, sy float32) error

	// TriangleBatch is unsupported.
	TriangleBatch(img Image, target Target, vertices []float32, indices []uint16, flags BatchFlags) error

	// SetClip enables clipping on target and returns the previous clip.
	SetClip(target Target, x, y, width, height int) (Rect, error)

	// UnsetClip disables clipping on target.
	UnsetClip(target Target) error

	// ClearRGBA fills target with a colour, ignoring the clip.
	ClearRGBA(target Target, r, g, b, a uint8) error

	// FlushBlitBuffer is a no-op.
	FlushBlitBuffer()

	// Flip presents target.
	Flip(target Target) error

	Pixel(target Target, x, y float32, c color.NRGBA) error
	Line(target Target, x1, y1, x2, y2 float32, c color.NRGBA) error
	Rectangle(target Target, x1, y1, x2, y2 float32, c color.NRGBA) error
	RectangleFilled(target Target, x1, y1, x2, y2 float32, c color.NRGBA) error

	// The primitives below are unsupported.

	Arc(target Target, x, y, radius, start, end float32, c color.NRGBA) error
	ArcFilled(target Target, x, y, radius, start, end float32, c color.NRGBA) error
	Circle(target Target, x, y, radius float32, c color.NRGBA) error
	CircleFilled(target Target, x, y, radius float32, c color.NRGBA) error
	Ellipse(target Target, x, y, rx, ry, degrees float32, c color.NRGBA) error
	EllipseFilled(target Target, x, y, rx, ry, degrees float32, c color.NRGBA) error
	Sector(target Target, x, y, inner, outer, start, end float32, c color.NRGBA) error
	SectorFilled(target Target, x, y, inner, outer, start, end float32, c color.NRGBA) error
	Tri(target Target, x1, y1, x2, y2, x3, y3 float32, c color.NRGBA) error
	TriFilled(target Target, x1, y1, x2, y2, x3, y3 float32, c color.NRGBA) error
	RectangleRound(target Target, x1, y1, x2, y2, radius float32, c color.NRGBA) error
	RectangleRoundFilled(target Target, x1, y1, x2, y2, radius float32, c color.NRGBA) error
	Polygon(target Target, vertices []float32, c color.NRGBA) error
	PolygonFilled(target Target, vertices []float32, c color.NRGBA) error
	SetLineThickness(thickness float32) (float32, error)
	LineThickness() (float32, error)
}

// ShaderRenderer is the shader, uniform and attribute surface. Every method
// is unsupported by SoftwareRenderer.
type ShaderRenderer interface {
	CreateShaderProgram() (uint32, error)
	FreeShaderProgram(program uint32) error
	CompileShader(kind ShaderKind, source string) (uint32, error)
	CompileShaderReader(kind ShaderKind, r io.Reader) (uint32, error)
	FreeShader(shader uint32) error
	AttachShader(program, shader uint32) error
	DetachShader(program, shader uint32) error
	LinkShaderProgram(program uint32) error
	ActivateShaderProgram(program uint32, block *ShaderBlock) error
	DeactivateShaderProgram() error
	ShaderMessage() (string, error)
	AttributeLocation(program uint32, name string) (int, error)
	UniformLocation(program uint32, name string) (int, error)
	LoadShaderBlock(program uint32, position, texcoord, color, modelViewMatrix string) (ShaderBlock, error)
	SetShaderBlock(block ShaderBlock) error
	SetShaderImage(img Image, location, unit int) error

	Uniformiv(program uint32, location int, values []int32) error
	SetUniformi(location int, value int32) error
	SetUniformiv(location, elementsPerValue int, values []int32) error
	Uniformuiv(program uint32, location int, values []uint32) error
	SetUniformui(location int, value uint32) error
	SetUniformuiv(location, elementsPerValue int, values []uint32) error
	Uniformfv(program uint32, location int, values []float32) error
	SetUniformf(location int, value float32) error
	SetUniformfv(location, elementsPerValue int, values []float32) error
	SetUniformMatrixfv(location, numMatrices, rows, cols int, transpose bool, values []float32) error

	SetAttributef(location int, value float32) error
	SetAttributei(location int, value int32) error
	SetAttributeui(location int, value uint32) error
	SetAttributefv(location int, values []float32) error
	SetAttributeiv(location int, values []int32) error
	SetAttributeuiv(location int, values []uint32) error
	SetAttributeSource(numValues int, source Attribute) error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsShaders indicates if the shader surface is implemented.
	SupportsShaders bool

	// SupportsBlendModes indicates if per-image blending can be toggled.
	SupportsBlendModes bool

	// SupportsRenderTargets indicates if images can be drawn into.
	SupportsRenderTargets bool

	// ImageFormats lists the formats CreateImage accepts.
	ImageFormats []ImageFormat

	// MaxTextureSize is the maximum texture dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
