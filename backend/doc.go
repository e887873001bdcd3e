// Package backend registers renderer implementations and selects one at
// runtime.
//
// # Renderer Registration
//
// Renderers are registered via init() functions and selected at runtime.
// The software renderer is automatically registered on import:
//
//	import _ "github.com/gogpu/softgpu/backend"
//
// Custom renderers reserve an enum and register a factory:
//
//	id := backend.MakeRendererID("My renderer", backend.ReserveNextEnum(), 1, 0)
//	backend.Register("mine", id, newMyRenderer)
//
// # Renderer Selection
//
// Use Default() to get the best available renderer, or Get() to request
// a specific one by name:
//
//	r := backend.Default()
//	r = backend.Get("software", render.WithDefaultAnchor(0, 0))
//
// InitDefault combines selection with opening the window target:
//
//	r, screen, err := backend.InitDefault(window, 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Quit()
//
// # Available Renderers
//
// - "software": draws through a surface.Surface (always available)
package backend
