package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/softgpu/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// RendererEnum identifies a renderer implementation numerically.
type RendererEnum uint32

const (
	// RendererUnknown is the zero enum.
	RendererUnknown RendererEnum = 0

	// RendererCustom0 is the first enum handed out by ReserveNextEnum.
	RendererCustom0 RendererEnum = 1000
)

// RendererID describes a registered renderer.
type RendererID struct {
	// Name is the human-readable renderer name, e.g. "Software rendering".
	Name string

	// Enum is the numeric identifier reserved for the renderer.
	Enum RendererEnum

	// Major and Minor version the renderer's feature level.
	Major int
	Minor int
}

// MakeRendererID builds a RendererID.
func MakeRendererID(name string, enum RendererEnum, major, minor int) RendererID {
	return RendererID{Name: name, Enum: enum, Major: major, Minor: minor}
}

func (id RendererID) String() string {
	return fmt.Sprintf("%s %d.%d (#%d)", id.Name, id.Major, id.Minor, id.Enum)
}

// RendererFactory creates a renderer instance.
type RendererFactory func(opts ...render.Option) render.Renderer
