package tactile

// Axis restricts which direction a draggable element may move.
type Axis uint8

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

// DragPosition is reported to Draggable callbacks. X/Y are the element's
// top-left in root coordinates; DX/DY are the applied offset from where the
// drag started.
type DragPosition struct {
	X, Y   float64
	DX, DY float64
}

// DraggableOptions configures a Draggable. The zero value drags the element
// itself on both axes without bounds.
type DraggableOptions struct {
	// Handle receives the press that starts a drag. Nil uses the element.
	Handle *Element
	Axis   Axis
	Bounds Bounds
	// Window is consulted for BoundsWindow.
	Window *Window

	OnDragStart func(DragPosition)
	OnDrag      func(DragPosition)
	OnDragEnd   func(DragPosition)
}

// Draggable moves an element with the pointer. It listens to raw events
// directly rather than going through a Manager, so there is no threshold and
// no dispatch overhead on the move path.
type Draggable struct {
	el   *Element
	opts DraggableOptions

	handleLsn []ListenerHandle
	dragLsn   []ListenerHandle

	dragging  bool
	startRect Rect
	startX    float64
	startY    float64
	last      DragPosition
}

// NewDraggable makes el draggable and starts listening on its handle.
func NewDraggable(el *Element, opts DraggableOptions) *Draggable {
	if opts.Handle == nil {
		opts.Handle = el
	}
	d := &Draggable{el: el, opts: opts}
	d.handleLsn = []ListenerHandle{
		opts.Handle.Listen(EventPointerDown, d.handleMouseDown),
		opts.Handle.Listen(EventTouchStart, d.handleTouchStart),
	}
	return d
}

// Dragging reports whether a drag is in progress.
func (d *Draggable) Dragging() bool { return d.dragging }

// Destroy removes every listener. An in-progress drag stops without calling
// OnDragEnd.
func (d *Draggable) Destroy() {
	for _, h := range d.handleLsn {
		h.Remove()
	}
	d.handleLsn = nil
	d.detach()
	d.dragging = false
}

func (d *Draggable) handleMouseDown(ev *RawEvent) {
	if d.dragging {
		return
	}
	ev.PreventDefault()
	root := d.el.Root()
	d.dragLsn = []ListenerHandle{
		root.Listen(EventPointerMove, func(ev *RawEvent) { d.move(ev.X, ev.Y) }),
		root.Listen(EventPointerUp, func(*RawEvent) { d.end() }),
	}
	d.start(ev.X, ev.Y)
}

func (d *Draggable) handleTouchStart(ev *RawEvent) {
	if d.dragging || len(ev.Touches) == 0 {
		return
	}
	root := d.el.Root()
	d.dragLsn = []ListenerHandle{
		root.Listen(EventTouchMove, func(ev *RawEvent) {
			if len(ev.Touches) > 0 {
				d.move(ev.Touches[0].X, ev.Touches[0].Y)
			}
		}),
		root.Listen(EventTouchEnd, func(ev *RawEvent) {
			if len(ev.Touches) == 0 {
				d.end()
			}
		}),
		root.Listen(EventTouchCancel, func(*RawEvent) { d.end() }),
	}
	d.start(ev.Touches[0].X, ev.Touches[0].Y)
}

func (d *Draggable) detach() {
	for _, h := range d.dragLsn {
		h.Remove()
	}
	d.dragLsn = nil
}

func (d *Draggable) start(x, y float64) {
	d.dragging = true
	d.startRect = d.el.BoundingRect()
	d.startX, d.startY = x, y
	d.last = DragPosition{X: d.startRect.X, Y: d.startRect.Y}
	if d.opts.OnDragStart != nil {
		d.opts.OnDragStart(d.last)
	}
}

func (d *Draggable) move(x, y float64) {
	if !d.dragging {
		return
	}
	dx := x - d.startX
	dy := y - d.startY
	switch d.opts.Axis {
	case AxisX:
		dy = 0
	case AxisY:
		dx = 0
	}

	nx := d.startRect.X + dx
	ny := d.startRect.Y + dy
	if b, ok := d.opts.Bounds.resolve(d.el, d.opts.Window); ok {
		nx, ny = clampBox(nx, ny, d.startRect.Width, d.startRect.Height, b)
	}
	d.el.MoveTo(nx, ny)

	d.last = DragPosition{
		X: nx, Y: ny,
		DX: nx - d.startRect.X,
		DY: ny - d.startRect.Y,
	}
	if d.opts.OnDrag != nil {
		d.opts.OnDrag(d.last)
	}
}

func (d *Draggable) end() {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.detach()
	if d.opts.OnDragEnd != nil {
		d.opts.OnDragEnd(d.last)
	}
}
