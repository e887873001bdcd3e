// Package softgpu is a software rendering backend for host drawing front
// ends that speak in contexts, render targets and images.
//
// # Overview
//
// A host drives softgpu through the [render.Renderer] interface. The
// renderer keeps a small resource graph:
//
//   - one window Target per renderer, owning the native drawing surface
//   - Images backed by shared native textures, optionally aliased
//   - offscreen Targets created on demand for rendering into an Image
//
// Every drawing call names the Target it draws into. The renderer binds
// that Target as the native destination only when it differs from the one
// already bound.
//
// # Packages
//
//   - softgpu: logger and error model shared by all packages
//   - pixel: host pixel buffers, formats and conversion
//   - surface: native 2D surface contract and the software implementation
//   - render: the Renderer interface and the software renderer
//   - backend: registry of available renderers
//
// # Quick Start
//
//	r := render.New()
//	win, err := r.Init(nil, 320, 240)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, _ := r.CreateImage(64, 64, render.FormatRGBA)
//	_ = r.ClearRGBA(win, 0, 0, 0, 255)
//	_ = r.Blit(img, nil, win, 160, 120)
//	_ = r.Flip(win)
//
// # Coordinate System
//
// Origin (0,0) at top-left, X right, Y down. Rotations are in degrees,
// clockwise on screen.
package softgpu

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
