// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/render"
)

// ExampleNew renders a frame headlessly: a red square blitted at the centre
// of a 64×64 window.
func ExampleNew() {
	r := render.New()
	screen, err := r.Init(nil, 64, 64)
	if err != nil {
		fmt.Println("init failed:", err)
		return
	}
	defer r.Quit()

	img, err := r.CreateImage(8, 8, render.FormatRGBA)
	if err != nil {
		fmt.Println("create failed:", err)
		return
	}
	pixels := make([]byte, 8*8*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i], pixels[i+3] = 255, 255
	}
	_ = r.UpdateImageBytes(img, nil, pixels, 8*4)

	_ = r.ClearRGBA(screen, 0, 0, 0, 255)
	_ = r.Blit(img, nil, screen, 32, 32)
	_ = r.Rectangle(screen, 0, 0, 64, 64, color.NRGBA{G: 255, A: 255})
	if err := r.Flip(screen); err != nil {
		fmt.Println("flip failed:", err)
		return
	}

	s, _ := r.Surface(screen)
	w, h := s.OutputSize()
	fmt.Printf("presented %dx%d\n", w, h)
	// Output:
	// presented 64x64
}

// ExampleSoftwareRenderer_Circle shows how unsupported entry points report.
func ExampleSoftwareRenderer_Circle() {
	r := render.New()
	screen, _ := r.Init(nil, 16, 16)

	err := r.Circle(screen, 8, 8, 4, color.NRGBA{A: 255})
	fmt.Println(errors.Is(err, softgpu.ErrUnsupported))
	fmt.Println(err)
	// Output:
	// true
	// softgpu: Circle: not implemented (unsupported function)
}
