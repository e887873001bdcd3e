// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gpucontext"
)

// SurfaceFactory opens a Surface drawing into window.
type SurfaceFactory func(window gpucontext.WindowProvider, opts Options) (Surface, error)

// RegistryEntry describes one primitive surface library.
type RegistryEntry struct {
	Name string

	// Priority orders libraries when a window is opened without naming
	// one; the highest available library is tried first. The built-in
	// software surface registers at 10.
	Priority int

	Factory SurfaceFactory

	// Available is consulted on every lookup, so a library can drop out
	// when its native runtime goes away.
	Available func() bool
}

var globalRegistry = NewRegistry()

// Registry maps names to primitive surface libraries and picks one per
// window. The renderer opens exactly one surface for its window target;
// offscreen targets are textures of that surface.
//
// A native library plugs in from its own package:
//
//	func init() {
//	    surface.Register("sdl", 100, openSDL, sdlLoaded)
//	}
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]RegistryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]RegistryEntry)}
}

// Register adds a library to the process-wide registry, replacing any
// library of the same name. A nil available means always available.
func Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a library from the process-wide registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns every registered library, preferred first.
func List() []string {
	return globalRegistry.List()
}

// Available returns the libraries usable right now, preferred first.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns a copy of the named entry.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface opens window with the preferred library that succeeds.
func NewSurface(window gpucontext.WindowProvider, opts Options) (Surface, error) {
	return globalRegistry.NewSurface(window, opts)
}

// NewSurfaceByName opens window with the named library only.
func NewSurfaceByName(name string, window gpucontext.WindowProvider, opts Options) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, window, opts)
}

func (r *Registry) Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]RegistryEntry)
	}
	r.entries[name] = RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

func (r *Registry) List() []string {
	return names(r.ordered(false))
}

func (r *Registry) Available() []string {
	return names(r.ordered(true))
}

func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return &e, true
}

// NewSurface tries each available library in preference order and
// returns the first surface opened. When every library fails, the error
// wraps ErrNoBackendAvailable together with each library's failure.
func (r *Registry) NewSurface(window gpucontext.WindowProvider, opts Options) (Surface, error) {
	candidates := r.ordered(true)
	if len(candidates) == 0 {
		return nil, ErrNoBackendAvailable
	}

	errs := []error{ErrNoBackendAvailable}
	for _, e := range candidates {
		s, err := e.Factory(window, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("surface: %s: %w", e.Name, err))
	}
	return nil, errors.Join(errs...)
}

func (r *Registry) NewSurfaceByName(name string, window gpucontext.WindowProvider, opts Options) (Surface, error) {
	e, ok := r.Get(name)
	switch {
	case !ok:
		return nil, &BackendNotFoundError{Name: name}
	case !e.Available():
		return nil, &BackendUnavailableError{Name: name}
	}
	return e.Factory(window, opts)
}

// ordered snapshots the entries, highest priority first and then by name.
func (r *Registry) ordered(onlyAvailable bool) []RegistryEntry {
	r.mu.RLock()
	out := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()

	if onlyAvailable {
		out = slices.DeleteFunc(out, func(e RegistryEntry) bool { return !e.Available() })
	}
	slices.SortFunc(out, func(a, b RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

func names(entries []RegistryEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

var (
	// ErrNoBackendAvailable is returned when no surface library can open
	// the window.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	ErrNilWindow = errors.New("surface: nil window")

	// ErrInvalidSize is returned when neither the window nor the options
	// give a positive back buffer size.
	ErrInvalidSize = errors.New("surface: invalid size")

	ErrClosed = errors.New("surface: closed")

	ErrUnsupportedFormat = errors.New("surface: unsupported texture format")

	// ErrTextureSize is returned for non-positive or oversized textures.
	ErrTextureSize = errors.New("surface: invalid texture size")

	// ErrForeignTexture is returned for a texture created by another
	// surface or already destroyed.
	ErrForeignTexture = errors.New("surface: texture not owned by this surface")

	// ErrTextureIsTarget is returned when a texture is copied onto itself.
	ErrTextureIsTarget = errors.New("surface: texture is the current target")
)

// BackendNotFoundError reports a library name that was never registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError reports a registered library whose runtime is
// missing.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register("software", 10, func(window gpucontext.WindowProvider, opts Options) (Surface, error) {
		return NewImageSurface(window, opts)
	}, nil)
}
