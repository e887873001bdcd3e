// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/surface"
)

// Init opens the window target. If window is nil, a headless window of
// width×height is used.
func (r *SoftwareRenderer) Init(window gpucontext.WindowProvider, width, height int) (Target, error) {
	if window == nil {
		window = gpucontext.NullWindowProvider{W: width, H: height}
	}
	opts := r.cfg.surfaceOpts
	if opts.Width == 0 {
		opts.Width = width
	}
	if opts.Height == 0 {
		opts.Height = height
	}
	return r.createWindowTarget("Init", window, opts)
}

// CreateTargetFromWindow opens a surface on window and returns its target.
//
// Only one window is supported per renderer: while a window target is
// live, this fails with softgpu.ErrorUnsupportedFunction.
func (r *SoftwareRenderer) CreateTargetFromWindow(window gpucontext.WindowProvider) (Target, error) {
	return r.createWindowTarget("CreateTargetFromWindow", window, r.cfg.surfaceOpts)
}

func (r *SoftwareRenderer) createWindowTarget(op string, window gpucontext.WindowProvider, opts surface.Options) (Target, error) {
	if !r.current.IsZero() || r.targets.Contains(r.window.h) {
		return Target{}, r.fail(op, softgpu.ErrorUnsupportedFunction, "multiple windows not supported")
	}
	if window == nil {
		return Target{}, r.fail(op, softgpu.ErrorBackend, "no window to acquire")
	}

	s, err := r.openSurface(window, opts)
	if err != nil {
		return Target{}, r.failNative(op, err, "failed to open surface")
	}

	ww, wh := window.Size()
	dw, dh := s.OutputSize()
	ctx := &windowContext{
		surface:   s,
		window:    window,
		windowW:   ww,
		windowH:   wh,
		drawableW: dw,
		drawableH: dh,
	}
	rec := &targetRecord{
		context:  ctx,
		w:        dw,
		h:        dh,
		baseW:    dw,
		baseH:    dh,
		viewport: Rect{W: float32(dw), H: float32(dh)},
		refs:     1,
	}
	t := Target{h: r.targets.Insert(rec)}
	rec.contextTarget = t
	ctx.cached = t

	r.window = t
	r.current = t
	softgpu.Logger().Info("softgpu: window target created",
		"width", dw, "height", dh, "format", s.Format().String())
	return t, nil
}

func (r *SoftwareRenderer) openSurface(window gpucontext.WindowProvider, opts surface.Options) (surface.Surface, error) {
	switch {
	case r.cfg.factory != nil:
		return r.cfg.factory(window, opts)
	case r.cfg.backend != "":
		return surface.NewSurfaceByName(r.cfg.backend, window, opts)
	default:
		return surface.NewSurface(window, opts)
	}
}

// MakeCurrent makes t the current window target. Offscreen and freed
// targets are ignored.
func (r *SoftwareRenderer) MakeCurrent(t Target) {
	rec, ok := r.targets.Get(t.h)
	if !ok || rec.context == nil {
		softgpu.Logger().Debug("softgpu: MakeCurrent ignored", "target", t)
		return
	}
	r.current = t
}

// SetAsCurrent does nothing; the software renderer has no thread-bound
// state to restore.
func (r *SoftwareRenderer) SetAsCurrent() {}

// ResetRendererState does nothing.
func (r *SoftwareRenderer) ResetRendererState() {}

// Quit releases the current window target and clears the current target.
func (r *SoftwareRenderer) Quit() error {
	if r.current.IsZero() {
		return nil
	}
	t := r.current
	r.current = Target{}
	return r.releaseTarget("Quit", t)
}

// LoadTarget returns the offscreen target drawing into img. The first
// call creates it; later calls return the same target with one more
// reference. A zero img yields the zero Target.
func (r *SoftwareRenderer) LoadTarget(img Image) (Target, error) {
	const op = "LoadTarget"
	if img.IsZero() {
		return Target{}, nil
	}
	irec, err := r.image(op, img)
	if err != nil {
		return Target{}, err
	}
	if trec, ok := r.targets.Get(irec.target.h); ok {
		trec.refs++
		return irec.target, nil
	}

	rec := &targetRecord{
		contextTarget: irec.contextTarget,
		image:         img,
		data:          irec.data,
		w:             irec.w,
		h:             irec.h,
		baseW:         irec.w,
		baseH:         irec.h,
		viewport:      Rect{W: float32(irec.w), H: float32(irec.h)},
		refs:          1,
	}
	t := Target{h: r.targets.Insert(rec)}
	irec.target = t
	return t, nil
}

// FreeTarget drops one reference to t. The last reference unlinks it from
// its image; for the window target it also closes the surface.
func (r *SoftwareRenderer) FreeTarget(t Target) error {
	return r.releaseTarget("FreeTarget", t)
}

func (r *SoftwareRenderer) releaseTarget(op string, t Target) error {
	rec, err := r.target(op, t)
	if err != nil {
		return err
	}
	rec.refs--
	if rec.refs > 0 {
		return nil
	}

	if !rec.alias && !rec.image.IsZero() {
		if irec, ok := r.images.Get(rec.image.h); ok && irec.target == t {
			irec.target = Target{}
		}
	}

	if ctx := rec.context; ctx != nil {
		r.targets.Remove(t.h)
		rec.context = nil
		if r.current == t {
			r.current = Target{}
		}
		if r.window == t {
			r.window = Target{}
		}
		softgpu.Logger().Info("softgpu: window target destroyed")
		if err := ctx.surface.Close(); err != nil {
			return r.failNative(op, err, "failed to close surface")
		}
		return nil
	}

	// The surface must not keep drawing into a texture whose target is gone.
	var switchErr error
	if win, ok := r.targets.Get(rec.contextTarget.h); ok && win.context != nil && win.context.cached == t {
		if _, _, err := r.bind(op, rec.contextTarget); err != nil {
			win.context.cached = Target{}
			switchErr = err
		}
	}
	r.targets.Remove(t.h)
	return switchErr
}

// bind makes t the surface destination, switching only when the cached
// destination differs. After a switch the target's clip is applied again.
func (r *SoftwareRenderer) bind(op string, t Target) (*targetRecord, *windowContext, error) {
	rec, err := r.target(op, t)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := r.contextOf(op, rec)
	if err != nil {
		return nil, nil, err
	}
	if ctx.cached == t {
		return rec, ctx, nil
	}

	var tex surface.Texture
	if rec.context == nil {
		if rec.data == nil || rec.data.tex == nil {
			return nil, nil, r.fail(op, softgpu.ErrorUser, "%v draws into a destroyed texture", t)
		}
		tex = rec.data.tex
	}
	if err := ctx.surface.SetTarget(tex); err != nil {
		return nil, nil, r.failNative(op, err, "failed to switch render target")
	}
	ctx.cached = t
	if err := r.applyClip(op, ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, ctx, nil
}

func (r *SoftwareRenderer) applyClip(op string, ctx *windowContext, rec *targetRecord) error {
	var err error
	if rec.useClip {
		clip := rec.clip.pixels()
		err = ctx.surface.SetClipRect(&clip)
	} else {
		err = ctx.surface.SetClipRect(nil)
	}
	if err != nil {
		return r.failNative(op, err, "failed to set clip rectangle")
	}
	return nil
}

// SetClip enables clipping to (x, y, width, height) on t and returns the
// previous clip rectangle.
func (r *SoftwareRenderer) SetClip(t Target, x, y, width, height int) (Rect, error) {
	const op = "SetClip"
	rec, err := r.target(op, t)
	if err != nil {
		return Rect{}, err
	}
	prevUse, prev := rec.useClip, rec.clip
	rec.useClip = true
	rec.clip = Rect{X: float32(x), Y: float32(y), W: float32(width), H: float32(height)}

	_, ctx, err := r.bind(op, t)
	if err == nil {
		err = r.applyClip(op, ctx, rec)
	}
	if err != nil {
		rec.useClip, rec.clip = prevUse, prev
		return Rect{}, err
	}
	return prev, nil
}

// UnsetClip disables clipping on t.
func (r *SoftwareRenderer) UnsetClip(t Target) error {
	const op = "UnsetClip"
	rec, err := r.target(op, t)
	if err != nil {
		return err
	}
	prev := rec.useClip
	rec.useClip = false

	_, ctx, err := r.bind(op, t)
	if err == nil {
		err = r.applyClip(op, ctx, rec)
	}
	if err != nil {
		rec.useClip = prev
		return err
	}
	return nil
}
