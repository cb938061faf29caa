package quark

// GridSpacing is the distance in pixels between background grid dots.
const GridSpacing = 10

// DrawGrid writes ColorGrid to every cell whose x and y are both multiples
// of GridSpacing.
func (b *ColorBuffer) DrawGrid() {
	b.DrawDotGrid(GridSpacing, ColorGrid)
}

// DrawDotGrid writes c to every cell whose coordinates are both multiples
// of spacing. Non-positive spacing draws nothing.
func (b *ColorBuffer) DrawDotGrid(spacing int, c Color) {
	if spacing <= 0 {
		return
	}
	v := uint32(c)
	for y := 0; y < b.h; y += spacing {
		row := b.w * y
		for x := 0; x < b.w; x += spacing {
			b.pix[row+x] = v
		}
	}
}

// DrawPixel writes c at (x, y). Out-of-bounds coordinates are ignored.
func (b *ColorBuffer) DrawPixel(x, y int, c Color) {
	if !b.inside(x, y) {
		return
	}
	b.pix[b.w*y+x] = uint32(c)
}

// DrawRect fills the w*h rectangle with its top-left corner at (x, y),
// clipped to the buffer.
func (b *ColorBuffer) DrawRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := clipSpan(x, w, b.w)
	y0, y1 := clipSpan(y, h, b.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	v := uint32(c)
	for yy := y0; yy < y1; yy++ {
		row := b.pix[b.w*yy : b.w*yy+b.w]
		for xx := x0; xx < x1; xx++ {
			row[xx] = v
		}
	}
}

// clipSpan clips [start, start+n) to [0, limit) for n > 0 without
// overflowing on huge n.
func clipSpan(start, n, limit int) (lo, hi int) {
	lo, hi = start, limit
	if start < 0 {
		lo = 0
		// start+n cannot overflow while start is negative.
		if end := start + n; end < hi {
			hi = end
		}
		return lo, hi
	}
	if n < limit-start {
		hi = start + n
	}
	return lo, hi
}

// DrawMarker fills a size*size square at the projected point p.
// Non-finite points are dropped.
func (b *ColorBuffer) DrawMarker(p Point2, size int, c Color) {
	x, ok := pixelCoord(p.X)
	if !ok {
		return
	}
	y, ok := pixelCoord(p.Y)
	if !ok {
		return
	}
	b.DrawRect(x, y, size, size, c)
}

// maxCoord bounds float to int conversion; anything further out is off
// screen for every supported buffer.
const maxCoord = 1 << 30

func pixelCoord(v float64) (int, bool) {
	if v != v || v < -maxCoord || v > maxCoord {
		return 0, false
	}
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i, true
}
