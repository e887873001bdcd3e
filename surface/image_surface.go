// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/pixel"
)

// ImageSurface is a CPU-based Surface that renders into an *image.RGBA
// back buffer and presents by copying it to a front buffer.
//
// Copies use golang.org/x/image/draw nearest-neighbor sampling, so
// unscaled copies are pixel exact.
//
// Example:
//
//	s, _ := surface.NewImageSurface(gpucontext.NullWindowProvider{W: 800, H: 600}, surface.Options{})
//	defer s.Close()
//
//	s.SetDrawColor(color.NRGBA{255, 255, 255, 255})
//	s.Clear()
//	s.Present()
//	img := s.Snapshot()
type ImageSurface struct {
	window gpucontext.WindowProvider
	width  int
	height int

	back  *image.RGBA
	front *image.RGBA

	// target is the current destination; nil means the back buffer.
	target *ImageTexture
	clip   *image.Rectangle
	color  color.NRGBA

	maxTexture int
	frames     int
	closed     bool
}

var (
	_ Surface     = (*ImageSurface)(nil)
	_ Snapshotter = (*ImageSurface)(nil)
)

// NewImageSurface opens a software surface for window.
//
// The back buffer is sized to the window in physical pixels. When the
// window reports no size, opts.Width and opts.Height are used instead.
func NewImageSurface(window gpucontext.WindowProvider, opts Options) (*ImageSurface, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	w, h := physicalSize(window)
	if w <= 0 || h <= 0 {
		w, h = opts.Width, opts.Height
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}

	maxTex := opts.MaxTextureSize
	if maxTex <= 0 {
		maxTex = DefaultMaxTextureSize
	}

	s := &ImageSurface{
		window:     window,
		width:      w,
		height:     h,
		back:       image.NewRGBA(image.Rect(0, 0, w, h)),
		front:      image.NewRGBA(image.Rect(0, 0, w, h)),
		maxTexture: maxTex,
		color:      color.NRGBA{A: 0xff},
	}
	if opts.BackgroundColor != nil {
		draw.Draw(s.back, s.back.Bounds(), image.NewUniform(opts.BackgroundColor), image.Point{}, draw.Src)
	}

	softgpu.Logger().Debug("surface: software surface opened", "width", w, "height", h)
	return s, nil
}

func physicalSize(window gpucontext.WindowProvider) (int, int) {
	w, h := window.Size()
	sf := window.ScaleFactor()
	if sf <= 0 || sf == 1 {
		return w, h
	}
	return int(math.Round(float64(w) * sf)), int(math.Round(float64(h) * sf))
}

// OutputSize returns the back buffer size in pixels.
func (s *ImageSurface) OutputSize() (int, int) {
	return s.width, s.height
}

// Format returns the back buffer format.
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// CreateTexture allocates an RGBA8 or RGBX8 texture.
func (s *ImageSurface) CreateTexture(format pixel.Format, width, height int) (Texture, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if format != pixel.FormatRGBA8 && format != pixel.FormatRGBX8 {
		return nil, ErrUnsupportedFormat
	}
	if width <= 0 || height <= 0 || width > s.maxTexture || height > s.maxTexture {
		return nil, ErrTextureSize
	}

	t := &ImageTexture{
		owner:  s,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		format: format,
		op:     draw.Src,
		blend:  gputypes.BlendStateReplace(),
	}
	if format == pixel.FormatRGBX8 {
		for i := 3; i < len(t.img.Pix); i += 4 {
			t.img.Pix[i] = 0xff
		}
	}
	return t, nil
}

// SetTarget selects the destination. A nil texture selects the window.
func (s *ImageSurface) SetTarget(tex Texture) error {
	if s.closed {
		return ErrClosed
	}
	if tex == nil {
		s.target = nil
		s.clip = nil
		return nil
	}
	t, err := s.own(tex)
	if err != nil {
		return err
	}
	s.target = t
	s.clip = nil
	return nil
}

// Target returns the current destination texture, or nil for the window.
func (s *ImageSurface) Target() *ImageTexture {
	return s.target
}

// SetClipRect restricts drawing on the current destination.
func (s *ImageSurface) SetClipRect(r *pixel.Rect) error {
	if s.closed {
		return ErrClosed
	}
	if r == nil {
		s.clip = nil
		return nil
	}
	c := r.Image()
	s.clip = &c
	return nil
}

// ClipRect returns the active clip rectangle, or nil.
func (s *ImageSurface) ClipRect() *pixel.Rect {
	if s.clip == nil {
		return nil
	}
	r := pixel.FromImageRect(*s.clip)
	return &r
}

// SetDrawColor sets the color for Clear and primitives.
func (s *ImageSurface) SetDrawColor(c color.NRGBA) error {
	if s.closed {
		return ErrClosed
	}
	s.color = c
	return nil
}

// Clear fills the whole destination, ignoring the clip.
func (s *ImageSurface) Clear() error {
	if s.closed {
		return ErrClosed
	}
	dst := s.destination()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.color), image.Point{}, draw.Src)
	return nil
}

// DrawPoint sets one pixel to the draw color.
func (s *ImageSurface) DrawPoint(x, y int) error {
	if s.closed {
		return ErrClosed
	}
	dst := s.canvas()
	if (image.Point{X: x, Y: y}).In(dst.Bounds()) {
		dst.Set(x, y, s.color)
	}
	return nil
}

// DrawLine draws a Bresenham line including both end points.
func (s *ImageSurface) DrawLine(x1, y1, x2, y2 int) error {
	if s.closed {
		return ErrClosed
	}
	s.line(s.canvas(), x1, y1, x2, y2)
	return nil
}

func (s *ImageSurface) line(dst draw.Image, x1, y1, x2, y2 int) {
	bounds := dst.Bounds()
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			dst.Set(x1, y1, s.color)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// DrawRect draws the one-pixel outline of r.
func (s *ImageSurface) DrawRect(r pixel.Rect) error {
	if s.closed {
		return ErrClosed
	}
	if r.Empty() {
		return nil
	}
	dst := s.canvas()
	x2, y2 := r.X+r.W-1, r.Y+r.H-1
	s.line(dst, r.X, r.Y, x2, r.Y)
	s.line(dst, r.X, y2, x2, y2)
	s.line(dst, r.X, r.Y, r.X, y2)
	s.line(dst, x2, r.Y, x2, y2)
	return nil
}

// FillRect fills r with the draw color.
func (s *ImageSurface) FillRect(r pixel.Rect) error {
	if s.closed {
		return ErrClosed
	}
	if r.Empty() {
		return nil
	}
	dst := s.canvas()
	draw.Draw(dst, r.Image(), image.NewUniform(s.color), image.Point{}, draw.Src)
	return nil
}

// Copy copies src of tex into dst.
func (s *ImageSurface) Copy(tex Texture, src, dst pixel.Rect) error {
	t, sr, dr, ok, err := s.prepareCopy(tex, src, dst)
	if err != nil || !ok {
		return err
	}
	draw.NearestNeighbor.Scale(s.canvas(), dr, t.img, sr, t.op, nil)
	return nil
}

// CopyEx copies src of tex into dst with rotation and flipping.
func (s *ImageSurface) CopyEx(tex Texture, src, dst pixel.Rect, degrees float64, center image.Point, flip Flip) error {
	if degrees == 0 && flip == FlipNone {
		return s.Copy(tex, src, dst)
	}
	t, sr, dr, ok, err := s.prepareCopy(tex, src, dst)
	if err != nil || !ok {
		return err
	}
	// prepareCopy may trim dst; the center stays tied to the requested dst.
	center = center.Add(dst.Image().Min).Sub(dr.Min)
	m := copyTransform(sr, dr, degrees, center, flip)
	draw.NearestNeighbor.Transform(s.canvas(), m, t.img, sr, t.op, nil)
	return nil
}

// copyTransform returns the source-to-destination matrix that scales sr
// onto dr, mirrors it within dr, then rotates it clockwise by degrees
// around center (relative to dr.Min).
func copyTransform(sr, dr image.Rectangle, degrees float64, center image.Point, flip Flip) f64.Aff3 {
	kx := float64(dr.Dx()) / float64(sr.Dx())
	ky := float64(dr.Dy()) / float64(sr.Dy())

	// Source to dst-local coordinates, mirrored if requested.
	fx, ox := kx, 0.0
	if flip&FlipHorizontal != 0 {
		fx, ox = -kx, float64(dr.Dx())
	}
	fy, oy := ky, 0.0
	if flip&FlipVertical != 0 {
		fy, oy = -ky, float64(dr.Dy())
	}
	ux := ox - fx*float64(sr.Min.X)
	uy := oy - fy*float64(sr.Min.Y)

	sin, cos := math.Sincos(degrees * math.Pi / 180)
	cx, cy := float64(center.X), float64(center.Y)
	tx := float64(dr.Min.X)
	ty := float64(dr.Min.Y)

	return f64.Aff3{
		cos * fx, -sin * fy, cos*(ux-cx) - sin*(uy-cy) + cx + tx,
		sin * fx, cos * fy, sin*(ux-cx) + cos*(uy-cy) + cy + ty,
	}
}

// prepareCopy validates tex and trims src to the texture bounds, moving
// the edges of dst in proportion.
func (s *ImageSurface) prepareCopy(tex Texture, src, dst pixel.Rect) (*ImageTexture, image.Rectangle, image.Rectangle, bool, error) {
	if s.closed {
		return nil, image.Rectangle{}, image.Rectangle{}, false, ErrClosed
	}
	t, err := s.own(tex)
	if err != nil {
		return nil, image.Rectangle{}, image.Rectangle{}, false, err
	}
	if t == s.target {
		return nil, image.Rectangle{}, image.Rectangle{}, false, ErrTextureIsTarget
	}
	if src.Empty() || dst.Empty() {
		return t, image.Rectangle{}, image.Rectangle{}, false, nil
	}

	want := src.Image()
	sr := want.Intersect(t.img.Rect)
	if sr.Empty() {
		return t, image.Rectangle{}, image.Rectangle{}, false, nil
	}
	dr := dst.Image()
	if sr != want {
		kx := float64(dst.W) / float64(src.W)
		ky := float64(dst.H) / float64(src.H)
		dr = image.Rect(
			dst.X+int(math.Round(float64(sr.Min.X-want.Min.X)*kx)),
			dst.Y+int(math.Round(float64(sr.Min.Y-want.Min.Y)*ky)),
			dst.X+int(math.Round(float64(sr.Max.X-want.Min.X)*kx)),
			dst.Y+int(math.Round(float64(sr.Max.Y-want.Min.Y)*ky)),
		)
		if dr.Empty() {
			return t, image.Rectangle{}, image.Rectangle{}, false, nil
		}
	}
	return t, sr, dr, true, nil
}

// Present copies the back buffer to the front buffer and asks the window
// for a redraw.
func (s *ImageSurface) Present() error {
	if s.closed {
		return ErrClosed
	}
	copy(s.front.Pix, s.back.Pix)
	s.frames++
	s.window.RequestRedraw()
	return nil
}

// Frames returns the number of presented frames.
func (s *ImageSurface) Frames() int { return s.frames }

// Snapshot returns a copy of the last presented frame.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(s.front.Rect)
	copy(result.Pix, s.front.Pix)
	return result
}

// BackBuffer returns the back buffer. This is a direct reference, not a copy.
func (s *ImageSurface) BackBuffer() *image.RGBA { return s.back }

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.back = nil
	s.front = nil
	s.target = nil
	s.clip = nil
	return nil
}

// destination returns the current destination without clipping.
func (s *ImageSurface) destination() draw.Image {
	if s.target != nil {
		return s.target.img
	}
	return s.back
}

// canvas returns the current destination restricted to the clip.
func (s *ImageSurface) canvas() draw.Image {
	dst := s.destination()
	if s.clip == nil {
		return dst
	}
	r := s.clip.Intersect(dst.Bounds())
	switch d := dst.(type) {
	case *image.RGBA:
		return d.SubImage(r).(*image.RGBA)
	case *image.NRGBA:
		return d.SubImage(r).(*image.NRGBA)
	}
	return dst
}

func (s *ImageSurface) own(tex Texture) (*ImageTexture, error) {
	t, ok := tex.(*ImageTexture)
	if !ok || t == nil || t.owner != s || t.img == nil {
		return nil, ErrForeignTexture
	}
	return t, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
