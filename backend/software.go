package backend

import (
	"sync"

	"github.com/gogpu/softgpu/render"
)

// BackendSoftware is the registry name of the software renderer.
const BackendSoftware = "software"

var (
	softwareOnce sync.Once
	softwareID   RendererID
)

// init registers the software renderer on package import.
func init() {
	RegisterSoftware()
}

// RegisterSoftware registers the software renderer and returns its id.
// The enum is reserved once; later calls re-register under the same id.
func RegisterSoftware() RendererID {
	softwareOnce.Do(func() {
		softwareID = MakeRendererID("Software rendering", ReserveNextEnum(), 0, 0)
	})
	Register(BackendSoftware, softwareID, newSoftware)
	return softwareID
}

func newSoftware(opts ...render.Option) render.Renderer {
	return render.New(opts...)
}
