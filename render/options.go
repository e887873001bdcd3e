// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/surface"
)

// Option configures a SoftwareRenderer.
type Option func(*config)

type config struct {
	factory     surface.SurfaceFactory
	backend     string
	surfaceOpts surface.Options
	anchorX     float32
	anchorY     float32
	queueSize   int
}

func defaultConfig() config {
	return config{
		surfaceOpts: surface.DefaultOptions(0, 0),
		anchorX:     0.5,
		anchorY:     0.5,
		queueSize:   softgpu.DefaultErrorQueueSize,
	}
}

// WithSurfaceFactory opens window surfaces with f instead of the surface
// registry.
func WithSurfaceFactory(f surface.SurfaceFactory) Option {
	return func(c *config) {
		c.factory = f
	}
}

// WithSurfaceBackend opens window surfaces with the named registry entry
// instead of the best available one.
func WithSurfaceBackend(name string) Option {
	return func(c *config) {
		c.backend = name
	}
}

// WithSurfaceOptions sets the options passed to the surface factory.
// Width and Height, when zero, default to the Init size.
func WithSurfaceOptions(opts surface.Options) Option {
	return func(c *config) {
		c.surfaceOpts = opts
	}
}

// WithDefaultAnchor sets the anchor given to new images.
// Default: (0.5, 0.5), the image centre.
func WithDefaultAnchor(x, y float32) Option {
	return func(c *config) {
		c.anchorX = x
		c.anchorY = y
	}
}

// WithErrorQueueSize sets how many errors are kept for PopError.
// Default: softgpu.DefaultErrorQueueSize
func WithErrorQueueSize(n int) Option {
	return func(c *config) {
		c.queueSize = n
	}
}
