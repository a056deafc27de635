package tactile

// Window is the visible viewport. Behaviors hold a pointer so a resize is
// picked up on the next computation.
type Window struct {
	Width, Height float64
}

// Rect returns the viewport as a rectangle at the origin.
func (w *Window) Rect() Rect {
	if w == nil {
		return Rect{}
	}
	return Rect{Width: w.Width, Height: w.Height}
}

// BoundsKind selects how a Bounds is resolved.
type BoundsKind uint8

const (
	BoundsNone   BoundsKind = iota // unconstrained
	BoundsParent                   // the element's parent box
	BoundsWindow                   // the viewport
	BoundsRect                     // an explicit rectangle
)

// Bounds is a containment area for a moving element.
type Bounds struct {
	Kind BoundsKind
	Rect Rect // used when Kind == BoundsRect
}

// ParentBounds and WindowBounds are shorthands for the common
// Bounds values.
var (
	ParentBounds = Bounds{Kind: BoundsParent}
	WindowBounds = Bounds{Kind: BoundsWindow}
)

// RectBounds constrains to an explicit rectangle.
func RectBounds(r Rect) Bounds {
	return Bounds{Kind: BoundsRect, Rect: r}
}

// resolve returns the containment rectangle for el, or false when el is
// unconstrained. It reads live layout on every call.
func (b Bounds) resolve(el *Element, win *Window) (Rect, bool) {
	switch b.Kind {
	case BoundsParent:
		if el.Parent == nil {
			return Rect{}, false
		}
		return el.Parent.BoundingRect(), true
	case BoundsWindow:
		if win == nil {
			return Rect{}, false
		}
		return win.Rect(), true
	case BoundsRect:
		return b.Rect, true
	default:
		return Rect{}, false
	}
}

// clampBox moves a w×h box with top-left (x, y) so it lies inside bounds. A
// box larger than bounds is pinned to the bounds' top-left corner.
func clampBox(x, y, w, h float64, bounds Rect) (float64, float64) {
	x = clamp(x, bounds.X, bounds.Right()-w)
	y = clamp(y, bounds.Y, bounds.Bottom()-h)
	return x, y
}
