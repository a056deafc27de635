package tactile

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is the zero color.
var ColorTransparent = Color{}

// Kind identifies a normalized interaction.
type Kind uint8

const (
	KindClick    Kind = iota // press then release without crossing the drag threshold
	KindHover                // pointer hovering a target
	KindDrag                 // drag start, move, or end (see Payload.State)
	KindZoom                 // wheel step or pinch scale change
	KindPan                  // pinch center movement
	KindSelect               // long-press on touch
	KindFilter               // content filter applied
	KindExpand               // node expanded
	KindCollapse             // node collapsed
	KindSearch               // search issued
	KindReset                // view reset
	numKinds
)

var kindNames = [numKinds]string{
	"click", "hover", "drag", "zoom", "pan", "select",
	"filter", "expand", "collapse", "search", "reset",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind returns the Kind with the given lowercase name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Source records where an InteractionEvent originated.
type Source uint8

const (
	SourceUser   Source = iota // produced from raw input
	SourceAPI                  // produced programmatically by application code
	SourceSystem               // produced by the framework itself
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceAPI:
		return "api"
	case SourceSystem:
		return "system"
	default:
		return "unknown"
	}
}

// DragState distinguishes the phases of a drag interaction.
type DragState uint8

const (
	DragNone  DragState = iota
	DragStart           // threshold crossed; deltas are zero
	DragMove            // pointer moved while dragging
	DragEnd             // pointer released after dragging
)

func (s DragState) String() string {
	switch s {
	case DragStart:
		return "start"
	case DragMove:
		return "move"
	case DragEnd:
		return "end"
	default:
		return "none"
	}
}

// PointerType identifies the device that produced a raw event.
type PointerType uint8

const (
	PointerMouse PointerType = iota
	PointerTouch
)

func (p PointerType) String() string {
	if p == PointerTouch {
		return "touch"
	}
	return "mouse"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "left"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all bits in m are set.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// --- Geometry helpers ---

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// clamp limits v to [lo, hi]. When hi < lo, lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
