// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/pixel"
	"github.com/gogpu/softgpu/surface"
)

func TestInit(t *testing.T) {
	r, screen, _ := newTestRenderer(t)

	info, ok := r.TargetInfo(screen)
	if !ok {
		t.Fatal("window target is not live")
	}
	if info.Width != 800 || info.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", info.Width, info.Height)
	}
	if !info.IsWindow {
		t.Error("IsWindow = false, want true")
	}
	if info.Refs != 1 {
		t.Errorf("Refs = %d, want 1", info.Refs)
	}
	if info.ContextTarget != screen {
		t.Errorf("ContextTarget = %v, want %v", info.ContextTarget, screen)
	}
	if info.Viewport != (Rect{W: 800, H: 600}) {
		t.Errorf("Viewport = %+v, want full window", info.Viewport)
	}
	if r.CurrentTarget() != screen {
		t.Errorf("CurrentTarget() = %v, want %v", r.CurrentTarget(), screen)
	}
}

func TestInit_RegistrySurface(t *testing.T) {
	r := New()
	screen, err := r.Init(gpucontext.NullWindowProvider{W: 64, H: 32}, 0, 0)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s, err := r.Surface(screen)
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	if _, ok := s.(*surface.ImageSurface); !ok {
		t.Errorf("surface type = %T, want *surface.ImageSurface", s)
	}
	if w, h := s.OutputSize(); w != 64 || h != 32 {
		t.Errorf("OutputSize() = %dx%d, want 64x32", w, h)
	}
}

func TestInit_UnknownBackend(t *testing.T) {
	r := New(WithSurfaceBackend("missing"))
	_, err := r.Init(nil, 10, 10)
	if !errors.Is(err, softgpu.ErrBackend) {
		t.Fatalf("Init() error = %v, want backend error", err)
	}
	var nf *surface.BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("Init() error does not wrap BackendNotFoundError: %v", err)
	}
	if !r.CurrentTarget().IsZero() {
		t.Error("failed Init left a current target")
	}
}

func TestCreateTargetFromWindow_SecondWindow(t *testing.T) {
	r, _, _ := newTestRenderer(t)

	_, err := r.CreateTargetFromWindow(gpucontext.NullWindowProvider{W: 10, H: 10})
	if !errors.Is(err, softgpu.ErrUnsupported) {
		t.Errorf("second window error = %v, want unsupported", err)
	}
}

func TestCreateTargetFromWindow_NilWindow(t *testing.T) {
	r := New()
	if _, err := r.CreateTargetFromWindow(nil); !errors.Is(err, softgpu.ErrBackend) {
		t.Errorf("nil window error = %v, want backend error", err)
	}
}

func TestQuit(t *testing.T) {
	r, screen, rec := newTestRenderer(t)

	if err := r.Quit(); err != nil {
		t.Fatalf("Quit() error = %v", err)
	}
	if !r.CurrentTarget().IsZero() {
		t.Error("CurrentTarget() not cleared")
	}
	if _, ok := r.TargetInfo(screen); ok {
		t.Error("window target still live after Quit")
	}
	if rec.closed != 1 {
		t.Errorf("surface closed %d times, want 1", rec.closed)
	}
	if err := r.Quit(); err != nil {
		t.Errorf("second Quit() error = %v", err)
	}

	// A new window can be opened after Quit.
	if _, err := r.Init(nil, 10, 10); err != nil {
		t.Errorf("Init() after Quit error = %v", err)
	}
}

func TestMakeCurrent(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	img := mustImage(t, r, 8, 8)
	off, err := r.LoadTarget(img)
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}

	r.MakeCurrent(off)
	if r.CurrentTarget() != screen {
		t.Errorf("MakeCurrent(offscreen) changed current to %v", r.CurrentTarget())
	}
	r.MakeCurrent(Target{})
	if r.CurrentTarget() != screen {
		t.Errorf("MakeCurrent(zero) changed current to %v", r.CurrentTarget())
	}
	r.MakeCurrent(screen)
	if r.CurrentTarget() != screen {
		t.Errorf("CurrentTarget() = %v, want %v", r.CurrentTarget(), screen)
	}
}

func TestLoadTarget_Shared(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	img := mustImage(t, r, 16, 8)

	t1, err := r.LoadTarget(img)
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}
	t2, err := r.LoadTarget(img)
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}
	if t1 != t2 {
		t.Fatalf("LoadTarget returned %v then %v, want identical", t1, t2)
	}

	info, _ := r.TargetInfo(t1)
	if info.Refs != 2 {
		t.Errorf("Refs = %d, want 2", info.Refs)
	}
	if info.Width != 16 || info.Height != 8 {
		t.Errorf("size = %dx%d, want 16x8", info.Width, info.Height)
	}
	if info.IsWindow {
		t.Error("offscreen target reports IsWindow")
	}
	if info.Image != img || info.ContextTarget != screen {
		t.Errorf("links = (%v, %v), want (%v, %v)", info.Image, info.ContextTarget, img, screen)
	}
	if ii, _ := r.ImageInfo(img); ii.Target != t1 {
		t.Errorf("image target = %v, want %v", ii.Target, t1)
	}

	if err := r.FreeTarget(t1); err != nil {
		t.Fatalf("FreeTarget() error = %v", err)
	}
	if _, ok := r.TargetInfo(t1); !ok {
		t.Fatal("target freed after first release")
	}
	if err := r.FreeTarget(t2); err != nil {
		t.Fatalf("FreeTarget() error = %v", err)
	}
	if _, ok := r.TargetInfo(t1); ok {
		t.Error("target still live after last release")
	}
	if ii, _ := r.ImageInfo(img); !ii.Target.IsZero() {
		t.Errorf("image target = %v, want none", ii.Target)
	}

	// A fresh target is created on the next load.
	t3, err := r.LoadTarget(img)
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}
	if t3 == t1 {
		t.Error("reloaded target reuses the stale handle")
	}
}

func TestLoadTarget_Zero(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	tgt, err := r.LoadTarget(Image{})
	if err != nil || !tgt.IsZero() {
		t.Errorf("LoadTarget(zero) = (%v, %v), want (zero, nil)", tgt, err)
	}
}

func TestFreeTarget_Stale(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	img := mustImage(t, r, 4, 4)
	tgt, _ := r.LoadTarget(img)
	_ = r.FreeTarget(tgt)

	if err := r.FreeTarget(tgt); !errors.Is(err, softgpu.ErrUser) {
		t.Errorf("double FreeTarget error = %v, want user error", err)
	}
	if err := r.FreeTarget(Target{}); !errors.Is(err, softgpu.ErrNullArgument) {
		t.Errorf("FreeTarget(zero) error = %v, want null argument", err)
	}
}

func TestSwitchCache(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 32, 32)
	off, _ := r.LoadTarget(img)

	// Repeated work on the window issues no switch.
	for range 3 {
		if err := r.ClearRGBA(screen, 1, 2, 3, 255); err != nil {
			t.Fatalf("ClearRGBA() error = %v", err)
		}
	}
	if n := len(rec.setTargets); n != 0 {
		t.Fatalf("SetTarget calls = %d, want 0", n)
	}

	// One switch per change of target, none for repeats.
	if err := r.ClearRGBA(off, 0, 0, 0, 0); err != nil {
		t.Fatalf("ClearRGBA(off) error = %v", err)
	}
	_ = r.Pixel(off, 1, 1, white)
	_ = r.Line(off, 0, 0, 5, 5, white)
	if n := len(rec.setTargets); n != 1 {
		t.Fatalf("SetTarget calls = %d, want 1", n)
	}
	if rec.setTargets[0] != textureOf(t, r, img) {
		t.Error("switched to the wrong texture")
	}

	_ = r.ClearRGBA(screen, 0, 0, 0, 255)
	if n := len(rec.setTargets); n != 2 {
		t.Fatalf("SetTarget calls = %d, want 2", n)
	}
	if rec.setTargets[1] != nil {
		t.Errorf("switch back passed %v, want nil (window)", rec.setTargets[1])
	}
}

func TestSwitchCache_FailureKeepsCache(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 4, 4)
	off, _ := r.LoadTarget(img)

	rec.failSetTarget = errInjected
	err := r.ClearRGBA(off, 0, 0, 0, 0)
	if !errors.Is(err, softgpu.ErrBackend) || !errors.Is(err, errInjected) {
		t.Fatalf("ClearRGBA() error = %v, want wrapped backend error", err)
	}
	rec.failSetTarget = nil

	// The cache still holds the window, so drawing there needs no switch.
	_ = r.ClearRGBA(screen, 0, 0, 0, 255)
	if n := len(rec.setTargets); n != 0 {
		t.Errorf("SetTarget calls = %d, want 0", n)
	}
	_ = r.ClearRGBA(off, 0, 0, 0, 0)
	if n := len(rec.setTargets); n != 1 {
		t.Errorf("SetTarget calls = %d, want 1", n)
	}
}

func TestFreeTarget_SwitchesBackToWindow(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 4, 4)
	off, _ := r.LoadTarget(img)
	_ = r.ClearRGBA(off, 0, 0, 0, 0)

	if err := r.FreeTarget(off); err != nil {
		t.Fatalf("FreeTarget() error = %v", err)
	}
	if n := len(rec.setTargets); n != 2 || rec.setTargets[1] != nil {
		t.Fatalf("SetTarget calls = %v, want [tex nil]", rec.setTargets)
	}
	if rec.Target() != nil {
		t.Error("surface still draws into the freed target")
	}

	// The window is cached again.
	_ = r.ClearRGBA(screen, 0, 0, 0, 255)
	if n := len(rec.setTargets); n != 2 {
		t.Errorf("SetTarget calls = %d, want 2", n)
	}
}

func TestSetClip(t *testing.T) {
	r, screen, rec := newTestRenderer(t)

	prev, err := r.SetClip(screen, 10, 20, 30, 40)
	if err != nil {
		t.Fatalf("SetClip() error = %v", err)
	}
	if prev != (Rect{}) {
		t.Errorf("first SetClip returned %+v, want zero", prev)
	}
	prev, _ = r.SetClip(screen, 1, 2, 3, 4)
	if prev != (Rect{X: 10, Y: 20, W: 30, H: 40}) {
		t.Errorf("SetClip returned %+v, want previous clip", prev)
	}
	if got := rec.ClipRect(); got == nil || *got != pixel.R(1, 2, 3, 4) {
		t.Errorf("surface clip = %v, want (1,2 3x4)", got)
	}
	info, _ := r.TargetInfo(screen)
	if !info.UseClip {
		t.Error("UseClip = false after SetClip")
	}

	if err := r.UnsetClip(screen); err != nil {
		t.Fatalf("UnsetClip() error = %v", err)
	}
	if rec.ClipRect() != nil {
		t.Error("surface clip still set after UnsetClip")
	}
	if info, _ := r.TargetInfo(screen); info.UseClip {
		t.Error("UseClip = true after UnsetClip")
	}
}

func TestSetClip_ReappliedAfterSwitch(t *testing.T) {
	r, screen, rec := newTestRenderer(t)
	img := mustImage(t, r, 50, 50)
	off, _ := r.LoadTarget(img)

	_, _ = r.SetClip(screen, 5, 5, 10, 10)
	_ = r.ClearRGBA(off, 0, 0, 0, 0)
	if rec.ClipRect() != nil {
		t.Errorf("offscreen target inherited window clip %v", rec.ClipRect())
	}
	_ = r.ClearRGBA(screen, 0, 0, 0, 255)
	if got := rec.ClipRect(); got == nil || *got != pixel.R(5, 5, 10, 10) {
		t.Errorf("window clip after switch = %v, want (5,5 10x10)", got)
	}
}

func TestSetClip_FailureRestoresState(t *testing.T) {
	r, _, rec := newTestRenderer(t)
	img := mustImage(t, r, 4, 4)
	off, _ := r.LoadTarget(img)

	rec.failSetTarget = errInjected
	if _, err := r.SetClip(off, 0, 0, 2, 2); err == nil {
		t.Fatal("SetClip() succeeded with failing surface")
	}
	if info, _ := r.TargetInfo(off); info.UseClip || info.Clip != (Rect{}) {
		t.Errorf("clip state changed on failure: %+v", info)
	}
}

func TestWindowTeardown_InvalidatesOffscreen(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	img := mustImage(t, r, 4, 4)
	off, _ := r.LoadTarget(img)

	if err := r.FreeTarget(screen); err != nil {
		t.Fatalf("FreeTarget(window) error = %v", err)
	}
	if err := r.ClearRGBA(off, 0, 0, 0, 0); !errors.Is(err, softgpu.ErrUser) {
		t.Errorf("ClearRGBA on orphaned target error = %v, want user error", err)
	}
	if _, err := r.CreateImage(4, 4, FormatRGBA); !errors.Is(err, softgpu.ErrUser) {
		t.Errorf("CreateImage without window error = %v, want user error", err)
	}
	// Images outliving the window can still be freed.
	if err := r.FreeImage(img); err != nil {
		t.Errorf("FreeImage() error = %v", err)
	}
}
