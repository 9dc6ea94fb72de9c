package dashboard

import "tableflip.dev/deck/pkg/window"

// Cascade places windows at base + index*offset.
type Cascade struct {
	Base   window.Point
	Offset window.Point
}

// DefaultCascade is the pixel-sized cascade.
func DefaultCascade() Cascade {
	return Cascade{
		Base:   window.Point{X: 40, Y: 40},
		Offset: window.Point{X: 30, Y: 30},
	}
}

// At returns the position for the index-th window of the given size. The
// sequence starts over at Base once a step would leave the viewport.
func (c Cascade) At(index int, size window.Size, vp window.Viewport) window.Point {
	if index < 0 {
		index = 0
	}
	if vp.Width > 0 && vp.Height > 0 {
		if n := c.steps(size, vp); n > 0 {
			index %= n
		}
	}
	p := window.Point{
		X: c.Base.X + index*c.Offset.X,
		Y: c.Base.Y + index*c.Offset.Y,
	}
	if vp.Width > 0 && vp.Height > 0 {
		p = window.ClampPosition(p, size, vp)
	}
	return p
}

// steps is how many cascade positions fit in vp, or 0 for no limit.
func (c Cascade) steps(size window.Size, vp window.Viewport) int {
	n := 0
	fit := func(room, offset int) {
		if offset <= 0 {
			return
		}
		k := room/offset + 1
		if k < 1 {
			k = 1
		}
		if n == 0 || k < n {
			n = k
		}
	}
	fit(vp.Width-size.Width-c.Base.X, c.Offset.X)
	fit(vp.Height-size.Height-c.Base.Y, c.Offset.Y)
	return n
}
