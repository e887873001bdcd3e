// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/internal/arena"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/surface"
)

// SoftwareRenderer implements Renderer on a surface.Surface.
//
// All state lives on the renderer: the window context, the image and
// target tables, the current window target and the error queue. Nothing
// is shared between renderers.
//
// Example:
//
//	r := render.New(render.WithDefaultAnchor(0, 0))
//	screen, _ := r.Init(nil, 320, 240)
//	img, _ := r.CreateImage(32, 32, render.FormatRGBA)
//	r.Blit(img, nil, screen, 10, 10)
//	r.Flip(screen)
type SoftwareRenderer struct {
	cfg config

	images  arena.Arena[*imageRecord]
	targets arena.Arena[*targetRecord]

	// window is the target owning the context; current is the window
	// target new images attach to. Both are zero before Init and after
	// teardown.
	window  Target
	current Target

	errs *softgpu.ErrorQueue
}

var (
	_ Renderer                  = (*SoftwareRenderer)(nil)
	_ CapableRenderer           = (*SoftwareRenderer)(nil)
	_ gpucontext.TextureCreator = (*SoftwareRenderer)(nil)
)

// New creates a software renderer. Call Init before creating images.
func New(opts ...Option) *SoftwareRenderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SoftwareRenderer{
		cfg:  cfg,
		errs: softgpu.NewErrorQueue(cfg.queueSize),
	}
}

// windowContext is the per-window session owning the native surface.
type windowContext struct {
	surface surface.Surface
	window  gpucontext.WindowProvider

	windowW, windowH     int
	drawableW, drawableH int

	// cached is the target bound as the surface destination.
	cached Target
}

// textureData is shared by an image and all its aliases.
type textureData struct {
	tex    surface.Texture
	format pixel.Format
	refs   int
}

type imageRecord struct {
	contextTarget Target
	target        Target

	w, h       int
	baseW      int
	baseH      int
	texW, texH int

	format        ImageFormat
	bytesPerPixel int
	layers        int

	anchorX, anchorY float32
	color            color.NRGBA
	useBlending      bool
	blend            gputypes.BlendState
	filter           gputypes.FilterMode
	wrapX, wrapY     gputypes.AddressMode

	data  *textureData
	refs  int
	alias bool
}

type targetRecord struct {
	contextTarget Target
	image         Image

	// data is the texture drawn into; nil for the window target.
	data *textureData
	// context is set only on the window target.
	context *windowContext

	w, h         int
	baseW, baseH int
	viewport     Rect
	useClip      bool
	clip         Rect

	refs  int
	alias bool
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		SupportsBlendModes:    true,
		SupportsRenderTargets: true,
		ImageFormats:          []ImageFormat{FormatRGB, FormatRGBA},
		MaxTextureSize:        r.cfg.surfaceOpts.MaxTextureSize,
	}
}

// PopError removes and returns the oldest recorded error, or nil.
func (r *SoftwareRenderer) PopError() error {
	if e := r.errs.Pop(); e != nil {
		return e
	}
	return nil
}

// Errors drains all recorded errors, oldest first.
func (r *SoftwareRenderer) Errors() []error {
	drained := r.errs.Drain()
	if len(drained) == 0 {
		return nil
	}
	out := make([]error, len(drained))
	for i, e := range drained {
		out[i] = e
	}
	return out
}

// DroppedErrors reports how many errors were discarded because the queue
// was full.
func (r *SoftwareRenderer) DroppedErrors() int { return r.errs.Dropped() }

// CurrentTarget returns the current window target, or the zero Target.
func (r *SoftwareRenderer) CurrentTarget() Target { return r.current }

// ImageInfo returns a snapshot of img, or false if img is not live.
func (r *SoftwareRenderer) ImageInfo(img Image) (ImageInfo, bool) {
	rec, ok := r.images.Get(img.h)
	if !ok {
		return ImageInfo{}, false
	}
	return ImageInfo{
		Width:         rec.w,
		Height:        rec.h,
		BaseWidth:     rec.baseW,
		BaseHeight:    rec.baseH,
		TextureWidth:  rec.texW,
		TextureHeight: rec.texH,
		Format:        rec.format,
		NativeFormat:  rec.data.format,
		BytesPerPixel: rec.bytesPerPixel,
		Layers:        rec.layers,
		AnchorX:       rec.anchorX,
		AnchorY:       rec.anchorY,
		Color:         rec.color,
		UseBlending:   rec.useBlending,
		Blend:         rec.blend,
		Filter:        rec.filter,
		WrapX:         rec.wrapX,
		WrapY:         rec.wrapY,
		Refs:          rec.refs,
		TextureRefs:   rec.data.refs,
		IsAlias:       rec.alias,
		Target:        rec.target,
		ContextTarget: rec.contextTarget,
	}, true
}

// TargetInfo returns a snapshot of t, or false if t is not live.
func (r *SoftwareRenderer) TargetInfo(t Target) (TargetInfo, bool) {
	rec, ok := r.targets.Get(t.h)
	if !ok {
		return TargetInfo{}, false
	}
	return TargetInfo{
		Width:         rec.w,
		Height:        rec.h,
		BaseWidth:     rec.baseW,
		BaseHeight:    rec.baseH,
		Viewport:      rec.viewport,
		UseClip:       rec.useClip,
		Clip:          rec.clip,
		Refs:          rec.refs,
		IsAlias:       rec.alias,
		IsWindow:      rec.context != nil,
		Image:         rec.image,
		ContextTarget: rec.contextTarget,
	}, true
}

// Surface returns the native surface t draws through.
func (r *SoftwareRenderer) Surface(t Target) (surface.Surface, error) {
	const op = "Surface"
	rec, err := r.target(op, t)
	if err != nil {
		return nil, err
	}
	ctx, err := r.contextOf(op, rec)
	if err != nil {
		return nil, err
	}
	return ctx.surface, nil
}

// report records e and returns it.
func (r *SoftwareRenderer) report(e *softgpu.Error) error {
	r.errs.Push(e)
	softgpu.Logger().Debug("softgpu: operation failed",
		"op", e.Op, "code", e.Code.String(), "details", e.Details, "err", e.Err)
	return e
}

func (r *SoftwareRenderer) fail(op string, code softgpu.ErrorCode, format string, args ...any) error {
	return r.report(softgpu.Errorf(op, code, format, args...))
}

// failNative reports a failed surface call.
func (r *SoftwareRenderer) failNative(op string, err error, format string, args ...any) error {
	e := softgpu.Errorf(op, softgpu.ErrorBackend, format, args...)
	e.Err = err
	return r.report(e)
}

func (r *SoftwareRenderer) image(op string, img Image) (*imageRecord, error) {
	if img.IsZero() {
		return nil, r.fail(op, softgpu.ErrorNullArgument, "image is nil")
	}
	rec, ok := r.images.Get(img.h)
	if !ok {
		return nil, r.fail(op, softgpu.ErrorUser, "%v has been freed", img)
	}
	return rec, nil
}

func (r *SoftwareRenderer) target(op string, t Target) (*targetRecord, error) {
	if t.IsZero() {
		return nil, r.fail(op, softgpu.ErrorNullArgument, "target is nil")
	}
	rec, ok := r.targets.Get(t.h)
	if !ok {
		return nil, r.fail(op, softgpu.ErrorUser, "%v has been freed", t)
	}
	return rec, nil
}

// contextOf resolves the window context a target renders through.
func (r *SoftwareRenderer) contextOf(op string, rec *targetRecord) (*windowContext, error) {
	if rec.context != nil {
		return rec.context, nil
	}
	win, ok := r.targets.Get(rec.contextTarget.h)
	if !ok || win.context == nil {
		return nil, r.fail(op, softgpu.ErrorUser, "window context has been destroyed")
	}
	return win.context, nil
}

// currentContext returns the context of the current window target.
func (r *SoftwareRenderer) currentContext() (*windowContext, bool) {
	rec, ok := r.targets.Get(r.current.h)
	if !ok || rec.context == nil {
		return nil, false
	}
	return rec.context, true
}
