// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"io"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/pixel"
)

func (r *SoftwareRenderer) unsupported(op string) error {
	return r.fail(op, softgpu.ErrorUnsupportedFunction, "not implemented")
}

// CreateAliasTarget is not supported.
func (r *SoftwareRenderer) CreateAliasTarget(Target) (Target, error) {
	return Target{}, r.unsupported("CreateAliasTarget")
}

// SetWindowResolution is not supported.
func (r *SoftwareRenderer) SetWindowResolution(int, int) error {
	return r.unsupported("SetWindowResolution")
}

// SetVirtualResolution is not supported.
func (r *SoftwareRenderer) SetVirtualResolution(Target, int, int) error {
	return r.unsupported("SetVirtualResolution")
}

// UnsetVirtualResolution is not supported.
func (r *SoftwareRenderer) UnsetVirtualResolution(Target) error {
	return r.unsupported("UnsetVirtualResolution")
}

// SetFullscreen is not supported. It reports windowed mode.
func (r *SoftwareRenderer) SetFullscreen(bool, bool) (bool, error) {
	return false, r.unsupported("SetFullscreen")
}

// SetCamera is not supported. It returns the zero camera.
func (r *SoftwareRenderer) SetCamera(Target, Camera) (Camera, error) {
	return Camera{}, r.unsupported("SetCamera")
}

// CreateImageUsingTexture is not supported.
func (r *SoftwareRenderer) CreateImageUsingTexture(uintptr, bool) (Image, error) {
	return Image{}, r.unsupported("CreateImageUsingTexture")
}

// SaveImage is not supported.
func (r *SoftwareRenderer) SaveImage(Image, string, FileFormat) error {
	return r.unsupported("SaveImage")
}

// CopyImage is not supported.
func (r *SoftwareRenderer) CopyImage(Image) (Image, error) {
	return Image{}, r.unsupported("CopyImage")
}

// ReplaceImage is not supported.
func (r *SoftwareRenderer) ReplaceImage(Image, *pixel.Buffer, *Rect) error {
	return r.unsupported("ReplaceImage")
}

// CopyImageFromTarget is not supported.
func (r *SoftwareRenderer) CopyImageFromTarget(Target) (Image, error) {
	return Image{}, r.unsupported("CopyImageFromTarget")
}

// CopySurfaceFromTarget is not supported.
func (r *SoftwareRenderer) CopySurfaceFromTarget(Target) (*pixel.Buffer, error) {
	return nil, r.unsupported("CopySurfaceFromTarget")
}

// CopySurfaceFromImage is not supported.
func (r *SoftwareRenderer) CopySurfaceFromImage(Image) (*pixel.Buffer, error) {
	return nil, r.unsupported("CopySurfaceFromImage")
}

// GenerateMipmaps is not supported.
func (r *SoftwareRenderer) GenerateMipmaps(Image) error {
	return r.unsupported("GenerateMipmaps")
}

// GetPixel is not supported. It returns transparent black.
func (r *SoftwareRenderer) GetPixel(Target, int, int) (color.NRGBA, error) {
	return color.NRGBA{}, r.unsupported("GetPixel")
}

// TriangleBatch is not supported.
func (r *SoftwareRenderer) TriangleBatch(Image, Target, []float32, []uint16, BatchFlags) error {
	return r.unsupported("TriangleBatch")
}

// Curved and polygonal primitives.

func (r *SoftwareRenderer) Arc(Target, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("Arc")
}

func (r *SoftwareRenderer) ArcFilled(Target, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("ArcFilled")
}

func (r *SoftwareRenderer) Circle(Target, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("Circle")
}

func (r *SoftwareRenderer) CircleFilled(Target, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("CircleFilled")
}

func (r *SoftwareRenderer) Ellipse(Target, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("Ellipse")
}

func (r *SoftwareRenderer) EllipseFilled(Target, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("EllipseFilled")
}

func (r *SoftwareRenderer) Sector(Target, float32, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("Sector")
}

func (r *SoftwareRenderer) SectorFilled(Target, float32, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("SectorFilled")
}

func (r *SoftwareRenderer) Tri(Target, float32, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("Tri")
}

func (r *SoftwareRenderer) TriFilled(Target, float32, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("TriFilled")
}

func (r *SoftwareRenderer) RectangleRound(Target, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("RectangleRound")
}

func (r *SoftwareRenderer) RectangleRoundFilled(Target, float32, float32, float32, float32, float32, color.NRGBA) error {
	return r.unsupported("RectangleRoundFilled")
}

func (r *SoftwareRenderer) Polygon(Target, []float32, color.NRGBA) error {
	return r.unsupported("Polygon")
}

func (r *SoftwareRenderer) PolygonFilled(Target, []float32, color.NRGBA) error {
	return r.unsupported("PolygonFilled")
}

// SetLineThickness is not supported. Lines are always one pixel wide.
func (r *SoftwareRenderer) SetLineThickness(float32) (float32, error) {
	return 1, r.unsupported("SetLineThickness")
}

// LineThickness is not supported. It reports one pixel.
func (r *SoftwareRenderer) LineThickness() (float32, error) {
	return 1, r.unsupported("LineThickness")
}

// Shaders, uniforms and attributes.

func (r *SoftwareRenderer) CreateShaderProgram() (uint32, error) {
	return 0, r.unsupported("CreateShaderProgram")
}

func (r *SoftwareRenderer) FreeShaderProgram(uint32) error {
	return r.unsupported("FreeShaderProgram")
}

func (r *SoftwareRenderer) CompileShader(ShaderKind, string) (uint32, error) {
	return 0, r.unsupported("CompileShader")
}

func (r *SoftwareRenderer) CompileShaderReader(ShaderKind, io.Reader) (uint32, error) {
	return 0, r.unsupported("CompileShaderReader")
}

func (r *SoftwareRenderer) FreeShader(uint32) error {
	return r.unsupported("FreeShader")
}

func (r *SoftwareRenderer) AttachShader(uint32, uint32) error {
	return r.unsupported("AttachShader")
}

func (r *SoftwareRenderer) DetachShader(uint32, uint32) error {
	return r.unsupported("DetachShader")
}

func (r *SoftwareRenderer) LinkShaderProgram(uint32) error {
	return r.unsupported("LinkShaderProgram")
}

func (r *SoftwareRenderer) ActivateShaderProgram(uint32, *ShaderBlock) error {
	return r.unsupported("ActivateShaderProgram")
}

func (r *SoftwareRenderer) DeactivateShaderProgram() error {
	return r.unsupported("DeactivateShaderProgram")
}

func (r *SoftwareRenderer) ShaderMessage() (string, error) {
	return "", r.unsupported("ShaderMessage")
}

func (r *SoftwareRenderer) AttributeLocation(uint32, string) (int, error) {
	return -1, r.unsupported("AttributeLocation")
}

func (r *SoftwareRenderer) UniformLocation(uint32, string) (int, error) {
	return -1, r.unsupported("UniformLocation")
}

func (r *SoftwareRenderer) LoadShaderBlock(uint32, string, string, string, string) (ShaderBlock, error) {
	return ShaderBlock{-1, -1, -1, -1}, r.unsupported("LoadShaderBlock")
}

func (r *SoftwareRenderer) SetShaderBlock(ShaderBlock) error {
	return r.unsupported("SetShaderBlock")
}

func (r *SoftwareRenderer) SetShaderImage(Image, int, int) error {
	return r.unsupported("SetShaderImage")
}

func (r *SoftwareRenderer) Uniformiv(uint32, int, []int32) error {
	return r.unsupported("Uniformiv")
}

func (r *SoftwareRenderer) SetUniformi(int, int32) error {
	return r.unsupported("SetUniformi")
}

func (r *SoftwareRenderer) SetUniformiv(int, int, []int32) error {
	return r.unsupported("SetUniformiv")
}

func (r *SoftwareRenderer) Uniformuiv(uint32, int, []uint32) error {
	return r.unsupported("Uniformuiv")
}

func (r *SoftwareRenderer) SetUniformui(int, uint32) error {
	return r.unsupported("SetUniformui")
}

func (r *SoftwareRenderer) SetUniformuiv(int, int, []uint32) error {
	return r.unsupported("SetUniformuiv")
}

func (r *SoftwareRenderer) Uniformfv(uint32, int, []float32) error {
	return r.unsupported("Uniformfv")
}

func (r *SoftwareRenderer) SetUniformf(int, float32) error {
	return r.unsupported("SetUniformf")
}

func (r *SoftwareRenderer) SetUniformfv(int, int, []float32) error {
	return r.unsupported("SetUniformfv")
}

func (r *SoftwareRenderer) SetUniformMatrixfv(int, int, int, int, bool, []float32) error {
	return r.unsupported("SetUniformMatrixfv")
}

func (r *SoftwareRenderer) SetAttributef(int, float32) error {
	return r.unsupported("SetAttributef")
}

func (r *SoftwareRenderer) SetAttributei(int, int32) error {
	return r.unsupported("SetAttributei")
}

func (r *SoftwareRenderer) SetAttributeui(int, uint32) error {
	return r.unsupported("SetAttributeui")
}

func (r *SoftwareRenderer) SetAttributefv(int, []float32) error {
	return r.unsupported("SetAttributefv")
}

func (r *SoftwareRenderer) SetAttributeiv(int, []int32) error {
	return r.unsupported("SetAttributeiv")
}

func (r *SoftwareRenderer) SetAttributeuiv(int, []uint32) error {
	return r.unsupported("SetAttributeuiv")
}

func (r *SoftwareRenderer) SetAttributeSource(int, Attribute) error {
	return r.unsupported("SetAttributeSource")
}
