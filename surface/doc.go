// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the native 2D drawing surface the renderer
// drives, and provides a software implementation of it.
//
// A Surface is bound to one window and draws into a current destination:
// the window back buffer or one of its own textures. The renderer only
// needs a handful of operations from it: texture creation and upload,
// destination and clip selection, a draw color, clear, points, lines,
// rectangles, texture copies with optional rotation and flipping, and
// presentation.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering into *image.RGBA using golang.org/x/image/draw
//   - Third-party surfaces via the registry
//
// # Registry
//
// Native libraries register themselves under a name and priority:
//
//	surface.Register("sdl", 100, func(w gpucontext.WindowProvider, opts surface.Options) (surface.Surface, error) {
//	    return openSDL(w, opts)
//	}, sdlAvailable)
//
//	// Later:
//	s, err := surface.NewSurfaceByName("sdl", window, surface.Options{})
//
// The software surface is registered as "software" with priority 10.
//
// # Thread Safety
//
// Surfaces and textures are not safe for concurrent use. The registry is.
package surface
