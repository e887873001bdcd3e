package backend

import (
	"slices"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/render"
)

type registration struct {
	id      RendererID
	factory RendererFactory
}

// registry holds registered renderers.
var (
	registryMu sync.RWMutex
	renderers  = make(map[string]registration)
	nextEnum   = RendererCustom0
	// Priority order for renderer selection (first registered wins).
	// Software is the fallback.
	rendererPriority = []string{BackendSoftware}
)

// ReserveNextEnum reserves a fresh RendererEnum for a custom renderer.
func ReserveNextEnum() RendererEnum {
	registryMu.Lock()
	defer registryMu.Unlock()
	e := nextEnum
	nextEnum++
	return e
}

// Register registers a renderer factory under name.
// This is typically called from init() functions.
// If a renderer with the same name is already registered, it will be replaced.
func Register(name string, id RendererID, factory RendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	renderers[name] = registration{id: id, factory: factory}
	softgpu.Logger().Debug("softgpu: renderer registered", "name", name, "id", id.String())
}

// Unregister removes a renderer from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(renderers, name)
}

// Available returns the registered renderer names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a renderer with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := renderers[name]
	return ok
}

// ID returns the RendererID registered under name.
func ID(name string) (RendererID, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := renderers[name]
	return reg.id, ok
}

// Get returns a new renderer by name.
// Returns nil if the renderer is not registered.
func Get(name string, opts ...render.Option) render.Renderer {
	registryMu.RLock()
	reg, ok := renderers[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return reg.factory(opts...)
}

// Default returns a new instance of the best available renderer.
// Returns nil if no renderers are registered.
func Default(opts ...render.Option) render.Renderer {
	registryMu.RLock()
	ordered := make([]registration, 0, len(renderers))
	for _, name := range rendererPriority {
		if reg, ok := renderers[name]; ok {
			ordered = append(ordered, reg)
		}
	}
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		if !slices.Contains(rendererPriority, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		ordered = append(ordered, renderers[name])
	}
	registryMu.RUnlock()

	for _, reg := range ordered {
		if r := reg.factory(opts...); r != nil {
			return r
		}
	}
	return nil
}

// MustDefault returns the default renderer or panics.
func MustDefault(opts ...render.Option) render.Renderer {
	r := Default(opts...)
	if r == nil {
		panic("backend: no renderer available")
	}
	return r
}

// InitDefault creates the default renderer and opens its window target.
// A nil window selects a headless width×height window.
func InitDefault(window gpucontext.WindowProvider, width, height int, opts ...render.Option) (render.Renderer, render.Target, error) {
	r := Default(opts...)
	if r == nil {
		return nil, render.Target{}, ErrBackendNotAvailable
	}

	screen, err := r.Init(window, width, height)
	if err != nil {
		return nil, render.Target{}, err
	}
	return r, screen, nil
}
