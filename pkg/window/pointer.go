package window

// Handle names one of the eight resize handles around a window.
type Handle int

const (
	// HandleNone is not a handle.
	HandleNone Handle = iota
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
)

// String returns a string representation of the handle.
func (h Handle) String() string {
	switch h {
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	case HandleTopLeft:
		return "top-left"
	case HandleTopRight:
		return "top-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomRight:
		return "bottom-right"
	default:
		return "none"
	}
}

// edges reports which sides of the window a handle moves.
func (h Handle) edges() (top, bottom, left, right bool) {
	switch h {
	case HandleTop:
		top = true
	case HandleBottom:
		bottom = true
	case HandleLeft:
		left = true
	case HandleRight:
		right = true
	case HandleTopLeft:
		top, left = true, true
	case HandleTopRight:
		top, right = true, true
	case HandleBottomLeft:
		bottom, left = true, true
	case HandleBottomRight:
		bottom, right = true, true
	}
	return
}

// HitKind classifies where a pointer landed on a window.
type HitKind int

const (
	// HitNone is outside the window.
	HitNone HitKind = iota
	// HitBody is inside the content area.
	HitBody
	// HitTitle is the title bar, which starts a drag.
	HitTitle
	// HitHandle is a resize handle.
	HitHandle
)

// Hit is the result of HitTest.
type Hit struct {
	Kind   HitKind
	Handle Handle
}

// HitTest resolves p against the window frame. The outermost ring is the
// resize handles and the row just inside the top edge is the title bar.
// Only normal windows expose handles and a draggable title.
func (w *Window) HitTest(p Point) Hit {
	b := w.Bounds()
	if w.state == StateMinimized || !b.Contains(p) {
		return Hit{}
	}
	if w.state != StateNormal {
		return Hit{Kind: HitBody}
	}

	top := p.Y == b.Y
	bottom := p.Y == b.Y+b.Height-1
	left := p.X == b.X
	right := p.X == b.X+b.Width-1

	var h Handle
	switch {
	case top && left:
		h = HandleTopLeft
	case top && right:
		h = HandleTopRight
	case bottom && left:
		h = HandleBottomLeft
	case bottom && right:
		h = HandleBottomRight
	case top:
		h = HandleTop
	case bottom:
		h = HandleBottom
	case left:
		h = HandleLeft
	case right:
		h = HandleRight
	}
	if h != HandleNone {
		return Hit{Kind: HitHandle, Handle: h}
	}
	if p.Y == b.Y+1 {
		return Hit{Kind: HitTitle}
	}
	return Hit{Kind: HitBody}
}

type captureKind int

const (
	captureDrag captureKind = iota
	captureResize
)

// capture is the state held between pointer down and pointer up.
type capture struct {
	kind   captureKind
	handle Handle
	start  Point
	pos    Point
	size   Size
}

// Capturing reports whether the window owns pointer motion. Input layers
// only route move events to a capturing window and must call Release on
// pointer up.
func (w *Window) Capturing() bool { return w.capture != nil }

// Dragging reports whether a drag is in progress.
func (w *Window) Dragging() bool {
	return w.capture != nil && w.capture.kind == captureDrag
}

// Resizing reports whether a resize is in progress and through which handle.
func (w *Window) Resizing() (Handle, bool) {
	if w.capture == nil || w.capture.kind != captureResize {
		return HandleNone, false
	}
	return w.capture.handle, true
}

// BeginDrag starts moving the window with the pointer at p.
func (w *Window) BeginDrag(p Point) bool {
	if w.state != StateNormal {
		return false
	}
	w.capture = &capture{kind: captureDrag, start: p, pos: w.pos, size: w.size}
	return true
}

// BeginResize starts resizing the window through h with the pointer at p.
func (w *Window) BeginResize(h Handle, p Point) bool {
	if w.state != StateNormal || h == HandleNone {
		return false
	}
	w.capture = &capture{kind: captureResize, handle: h, start: p, pos: w.pos, size: w.size}
	return true
}

// Release ends any drag or resize.
func (w *Window) Release() {
	w.capture = nil
}

// Move applies pointer motion to the active capture. It does nothing when
// no capture is active.
func (w *Window) Move(p Point, vp Viewport, limits Limits) bool {
	c := w.capture
	if c == nil || w.state != StateNormal {
		return false
	}
	delta := p.Sub(c.start)
	switch c.kind {
	case captureDrag:
		w.pos = ClampPosition(c.pos.Add(delta), w.size, vp)
	case captureResize:
		w.pos, w.size = resize(c.handle, c.pos, c.size, delta, vp, limits)
	}
	return true
}

// ResizeBy grows or shrinks a normal window from its bottom-right corner.
// It is the keyboard counterpart of dragging the corner handle.
func (w *Window) ResizeBy(delta Point, vp Viewport, limits Limits) bool {
	if w.state != StateNormal {
		return false
	}
	w.pos, w.size = resize(HandleBottomRight, w.pos, w.size, delta, vp, limits)
	return true
}

// resize computes the new geometry for a resize that started at pos/size and
// has moved by delta. Left and top resizes keep the opposite edge fixed.
func resize(h Handle, pos Point, size Size, delta Point, vp Viewport, limits Limits) (Point, Size) {
	top, bottom, left, right := h.edges()
	nextPos, nextSize := pos, size

	if right {
		nextSize.Width = clamp(size.Width+delta.X, limits.MinWidth, vp.Width-pos.X)
	}
	if left {
		rightEdge := pos.X + size.Width
		nextPos.X = clamp(pos.X+delta.X, 0, rightEdge-limits.MinWidth)
		nextSize.Width = rightEdge - nextPos.X
	}
	if bottom {
		nextSize.Height = clamp(size.Height+delta.Y, limits.MinHeight, vp.Height-pos.Y)
	}
	if top {
		bottomEdge := pos.Y + size.Height
		nextPos.Y = clamp(pos.Y+delta.Y, 0, bottomEdge-limits.MinHeight)
		nextSize.Height = bottomEdge - nextPos.Y
	}
	return nextPos, nextSize
}
