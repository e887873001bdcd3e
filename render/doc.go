// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render implements the host-facing renderer on top of a primitive
// drawing surface.
//
// A host drives rendering through the Renderer interface: it opens a window
// target, creates images, blits them onto targets and presents frames. The
// only implementation is SoftwareRenderer, which maps every call onto a
// surface.Surface.
//
// # Resources
//
// Three kinds of resource are tracked per renderer:
//
//   - the window context, owning the native surface (one per renderer)
//   - targets: the window target, or an offscreen target drawing into an image
//   - images: pixel data backed by a native texture, possibly aliased
//
// Targets and images are returned as small value handles (Target, Image).
// Both are reference counted. A handle whose resource has been freed is
// rejected with a user error rather than reaching freed state.
//
// # Destination switching
//
// The renderer remembers which target is bound on the native surface and
// only switches when an operation addresses a different target. Repeated
// drawing to the same target issues no switch at all.
//
// # Errors
//
// Every failing call returns a *softgpu.Error and also records it in the
// renderer's bounded error queue (PopError, Errors). Entry points this
// backend does not implement (shaders, curved primitives, virtual
// resolution and others) fail with softgpu.ErrorUnsupportedFunction.
//
// # Usage
//
//	r := render.New()
//	screen, err := r.Init(nil, 640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Quit()
//
//	img, _ := r.CreateImage(64, 64, render.FormatRGBA)
//	_ = r.UpdateImageBytes(img, nil, pixels, 64*4)
//
//	_ = r.ClearRGBA(screen, 0, 0, 0, 255)
//	_ = r.Blit(img, nil, screen, 320, 240)
//	_ = r.Flip(screen)
//
// # Host integration
//
// SoftwareRenderer implements gpucontext.TextureCreator, and TextureDrawer
// returns a gpucontext.TextureDrawer for a target, so UI toolkits written
// against gpucontext can draw through it.
//
// # Thread Safety
//
// A renderer is NOT safe for concurrent use. All calls on one renderer must
// come from a single goroutine or be externally synchronized.
package render
