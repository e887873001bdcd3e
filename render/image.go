// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softgpu"
)

// CreateImage allocates a width×height image on the current window.
//
// New images are opaque white tinted, anchored at the renderer's default
// anchor, linearly filtered, clamped on both axes and alpha blended.
func (r *SoftwareRenderer) CreateImage(width, height int, format ImageFormat) (Image, error) {
	const op = "CreateImage"
	ctx, ok := r.currentContext()
	if !ok {
		return Image{}, r.fail(op, softgpu.ErrorUser, "no current context")
	}
	native, layers, ok := nativeFormat(format)
	if !ok {
		return Image{}, r.fail(op, softgpu.ErrorBackend, "unsupported format %v", format)
	}

	tex, err := ctx.surface.CreateTexture(native, width, height)
	if err != nil {
		return Image{}, r.failNative(op, err, "failed to create %dx%d texture", width, height)
	}
	blend := gputypes.BlendStateAlpha()
	if err := tex.SetBlendState(blend); err != nil {
		tex.Destroy()
		return Image{}, r.failNative(op, err, "failed to set blend state")
	}

	rec := &imageRecord{
		contextTarget: r.current,
		w:             width,
		h:             height,
		baseW:         width,
		baseH:         height,
		texW:          width,
		texH:          height,
		format:        format,
		bytesPerPixel: native.BytesPerPixel(),
		layers:        layers,
		anchorX:       r.cfg.anchorX,
		anchorY:       r.cfg.anchorY,
		color:         color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		useBlending:   true,
		blend:         blend,
		filter:        gputypes.FilterModeLinear,
		wrapX:         gputypes.AddressModeClampToEdge,
		wrapY:         gputypes.AddressModeClampToEdge,
		data:          &textureData{tex: tex, format: native, refs: 1},
		refs:          1,
	}
	return Image{h: r.images.Insert(rec)}, nil
}

// AliasImage returns a new handle sharing img's texture. The alias has its
// own reference count and appearance settings but no offscreen target.
// A zero img yields the zero Image.
func (r *SoftwareRenderer) AliasImage(img Image) (Image, error) {
	const op = "AliasImage"
	if img.IsZero() {
		return Image{}, nil
	}
	src, err := r.image(op, img)
	if err != nil {
		return Image{}, err
	}
	alias := *src
	alias.target = Target{}
	alias.refs = 1
	alias.alias = true
	alias.data.refs++
	return Image{h: r.images.Insert(&alias)}, nil
}

// FreeImage drops one reference to img. The last reference releases the
// image's offscreen target; the texture is destroyed once no alias uses it.
func (r *SoftwareRenderer) FreeImage(img Image) error {
	const op = "FreeImage"
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	rec.refs--
	if rec.refs > 0 {
		return nil
	}

	var firstErr error
	if t := rec.target; !t.IsZero() {
		rec.target = Target{}
		if r.targets.Contains(t.h) {
			firstErr = r.releaseTarget(op, t)
		}
	}

	data := rec.data
	data.refs--
	if data.refs <= 0 {
		if err := r.unbindTexture(op, rec.contextTarget, data); err != nil && firstErr == nil {
			firstErr = err
		}
		data.tex.Destroy()
		data.tex = nil
	}
	r.images.Remove(img.h)
	return firstErr
}

// unbindTexture switches the surface back to the window if its destination
// is a target drawing into data.
func (r *SoftwareRenderer) unbindTexture(op string, window Target, data *textureData) error {
	win, ok := r.targets.Get(window.h)
	if !ok || win.context == nil {
		return nil
	}
	ctx := win.context
	cached, ok := r.targets.Get(ctx.cached.h)
	if !ok || cached.data != data {
		return nil
	}
	if _, _, err := r.bind(op, window); err != nil {
		ctx.cached = Target{}
		return err
	}
	return nil
}

// SetAnchor sets the normalised point of img placed at the Blit position.
func (r *SoftwareRenderer) SetAnchor(img Image, x, y float32) error {
	rec, err := r.image("SetAnchor", img)
	if err != nil {
		return err
	}
	rec.anchorX, rec.anchorY = x, y
	return nil
}

// SetColor sets the tint recorded on img.
func (r *SoftwareRenderer) SetColor(img Image, c color.NRGBA) error {
	rec, err := r.image("SetColor", img)
	if err != nil {
		return err
	}
	rec.color = c
	return nil
}

// SetBlending enables or disables alpha blending when img is drawn. The
// setting applies to the shared texture, so aliases see it too.
func (r *SoftwareRenderer) SetBlending(img Image, enable bool) error {
	const op = "SetBlending"
	rec, err := r.image(op, img)
	if err != nil {
		return err
	}
	state := gputypes.BlendStateReplace()
	if enable {
		state = gputypes.BlendStateAlpha()
	}
	if err := rec.data.tex.SetBlendState(state); err != nil {
		return r.failNative(op, err, "failed to set blend state")
	}
	rec.useBlending = enable
	rec.blend = state
	return nil
}

// SetImageFilter logs a warning; the software surface always samples the
// nearest texel.
func (r *SoftwareRenderer) SetImageFilter(img Image, filter gputypes.FilterMode) {
	softgpu.Logger().Warn("softgpu: SetImageFilter is not supported, ignoring",
		"image", img, "filter", filter.String())
}

// SetWrapMode logs a warning; textures are always clamped.
func (r *SoftwareRenderer) SetWrapMode(img Image, wrapX, wrapY gputypes.AddressMode) {
	softgpu.Logger().Warn("softgpu: SetWrapMode is not supported, ignoring",
		"image", img, "wrap_x", wrapX.String(), "wrap_y", wrapY.String())
}
