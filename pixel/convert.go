package pixel

// Convert writes the src region sr into dst at (dx, dy), translating each
// pixel from src's format into dst's format.
//
// The region must lie inside src and the translated region inside dst;
// otherwise ErrOutOfBounds is returned and dst is left untouched.
func Convert(dst *Buffer, dx, dy int, src *Buffer, sr Rect) error {
	if sr.Empty() || !sr.Within(src.width, src.height) {
		return ErrOutOfBounds
	}
	if !R(dx, dy, sr.W, sr.H).Within(dst.width, dst.height) {
		return ErrOutOfBounds
	}

	if dst.format == src.format {
		n := src.format.RowBytes(sr.W)
		for y := range sr.H {
			so := src.PixelOffset(sr.X, sr.Y+y)
			do := dst.PixelOffset(dx, dy+y)
			copy(dst.data[do:do+n], src.data[so:so+n])
		}
		return nil
	}

	for y := range sr.H {
		for x := range sr.W {
			r, g, b, a := src.RGBA(sr.X+x, sr.Y+y)
			dst.SetRGBA(dx+x, dy+y, r, g, b, a)
		}
	}
	return nil
}
