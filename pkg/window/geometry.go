package window

// Point is a position in viewport coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is the extent of a window.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Viewport is the area windows are laid out in.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Size returns the viewport as a Size.
func (v Viewport) Size() Size {
	return Size{Width: v.Width, Height: v.Height}
}

// Limits bounds how small a window can be resized.
type Limits struct {
	MinWidth  int
	MinHeight int
}

// DefaultLimits returns the 300x200 floor used for pixel-sized viewports.
func DefaultLimits() Limits {
	return Limits{MinWidth: 300, MinHeight: 200}
}

// Rect is a positioned size.
type Rect struct {
	Point
	Size
}

// Contains checks if a point is within the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ClampPosition keeps a window of the given size fully inside vp. When the
// window is larger than the viewport it is pinned to the origin.
func ClampPosition(p Point, s Size, vp Viewport) Point {
	return Point{
		X: clamp(p.X, 0, vp.Width-s.Width),
		Y: clamp(p.Y, 0, vp.Height-s.Height),
	}
}

// FitRect shrinks r to vp, never below limits, and moves it inside vp.
func FitRect(r Rect, vp Viewport, limits Limits) Rect {
	r.Width = clamp(r.Width, limits.MinWidth, vp.Width)
	r.Height = clamp(r.Height, limits.MinHeight, vp.Height)
	r.Point = ClampPosition(r.Point, r.Size, vp)
	return r
}

func clamp(value, lower, upper int) int {
	if upper < lower {
		upper = lower
	}
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
