package tactile

// Style holds the presentational properties behaviors may change.
type Style struct {
	Scale      float64
	Glow       float64 // glow radius in pixels; 0 means none
	Opacity    float64
	Background Color
}

// DefaultStyle is the style every new element starts with.
var DefaultStyle = Style{Scale: 1, Opacity: 1}

// --- ID counter ---

// elementIDCounter is a plain counter; tactile is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

type listener struct {
	id uint32
	fn func(*RawEvent)
}

// Element is a node in the layout tree raw input is dispatched on. Position is
// an offset from the parent's top-left corner; the absolute box is available
// from BoundingRect.
type Element struct {
	// Identity
	ID   uint32
	Tag  string
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout (local offset + size)
	X, Y          float64
	Width, Height float64

	Visible bool
	Style   Style

	attrs     map[string]string
	listeners [numEventTypes][]listener
	nextLsnID uint32
}

// NewElement creates a visible, unattached element with the given tag and box.
func NewElement(tag, name string, x, y, w, h float64) *Element {
	return &Element{
		ID:      nextElementID(),
		Tag:     tag,
		Name:    name,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Visible: true,
		Style:   DefaultStyle,
	}
}

// --- Attributes ---

// Attr returns the attribute value and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(key, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[key] = value
}

// RemoveAttr clears an attribute. No-op if unset.
func (e *Element) RemoveAttr(key string) {
	delete(e.attrs, key)
}

// --- Tree manipulation ---

// AppendChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AppendChild(child *Element) {
	if child == nil {
		panic("tactile: cannot add nil child")
	}
	if child.IsAncestorOf(e) || child == e {
		panic("tactile: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("tactile: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// Root returns the topmost ancestor (e itself when unattached).
func (e *Element) Root() *Element {
	r := e
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// IsAncestorOf reports whether e is a strict ancestor of other.
func (e *Element) IsAncestorOf(other *Element) bool {
	for p := other.Parent; p != nil; p = p.Parent {
		if p == e {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// --- Layout ---

// BoundingRect returns the element's box in root coordinates.
func (e *Element) BoundingRect() Rect {
	x, y := e.X, e.Y
	for p := e.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return Rect{X: x, Y: y, Width: e.Width, Height: e.Height}
}

// MoveTo positions the element so its top-left corner sits at (x, y) in root
// coordinates.
func (e *Element) MoveTo(x, y float64) {
	if e.Parent != nil {
		pr := e.Parent.BoundingRect()
		x -= pr.X
		y -= pr.Y
	}
	e.X = x
	e.Y = y
}

// HitTest returns the topmost visible element under (x, y) in the subtree
// rooted at e, or nil. Elements with zero size are not hit-testable but their
// children are.
func (e *Element) HitTest(x, y float64) *Element {
	var buf []*Element
	buf = collectVisible(e, buf)
	// Iterate backward (reverse paint order): last-appended child is on top.
	for i := len(buf) - 1; i >= 0; i-- {
		n := buf[i]
		if n.Width == 0 && n.Height == 0 {
			continue
		}
		if n.BoundingRect().Contains(x, y) {
			return n
		}
	}
	return nil
}

// collectVisible walks the tree in paint order (DFS, child order), appending
// every element of visible subtrees.
func collectVisible(e *Element, buf []*Element) []*Element {
	if !e.Visible {
		return buf
	}
	buf = append(buf, e)
	for _, child := range e.children {
		buf = collectVisible(child, buf)
	}
	return buf
}

// --- Native listeners ---

// ListenerHandle allows removing a listener registered with Listen.
type ListenerHandle struct {
	el  *Element
	typ EventType
	id  uint32
}

// Remove unregisters the listener. Safe to call more than once and from
// inside the listener itself.
func (h ListenerHandle) Remove() {
	if h.el == nil || h.typ >= numEventTypes {
		return
	}
	s := h.el.listeners[h.typ]
	for i := range s {
		if s[i].id == h.id {
			// Build a fresh slice so an in-flight dispatch keeps its snapshot.
			out := make([]listener, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			h.el.listeners[h.typ] = out
			return
		}
	}
}

// Listen registers fn for raw events of type t reaching this element, either
// as target or while bubbling.
func (e *Element) Listen(t EventType, fn func(*RawEvent)) ListenerHandle {
	e.nextLsnID++
	id := e.nextLsnID
	e.listeners[t] = append(e.listeners[t], listener{id: id, fn: fn})
	return ListenerHandle{el: e, typ: t, id: id}
}

// ListenerCount returns the number of listeners registered for t.
func (e *Element) ListenerCount(t EventType) int {
	if t >= numEventTypes {
		return 0
	}
	return len(e.listeners[t])
}

// Dispatch delivers ev to this element's listeners and then, for bubbling
// types, to each ancestor until StopPropagation is called.
func (e *Element) Dispatch(ev *RawEvent) {
	if ev == nil || ev.Type >= numEventTypes {
		return
	}
	ev.Target = e
	for n := e; n != nil; n = n.Parent {
		ev.CurrentTarget = n
		// Snapshot: listeners may add or remove listeners while running.
		for _, l := range n.listeners[ev.Type] {
			l.fn(ev)
		}
		if ev.stopped || !ev.Type.bubbles() {
			break
		}
	}
	ev.CurrentTarget = nil
}
