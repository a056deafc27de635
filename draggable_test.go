package tactile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDragScene() (root, parent, el *Element) {
	root = NewElement("root", "root", 0, 0, 800, 600)
	parent = NewElement("panel", "panel", 100, 100, 300, 200)
	el = NewElement("card", "card", 10, 10, 50, 40)
	root.AppendChild(parent)
	parent.AppendChild(el)
	return root, parent, el
}

func mouseDrag(root, handle *Element, fromX, fromY float64, path ...Vec2) {
	handle.Dispatch(&RawEvent{Type: EventPointerDown, X: fromX, Y: fromY})
	last := Vec2{X: fromX, Y: fromY}
	for _, p := range path {
		root.Dispatch(&RawEvent{Type: EventPointerMove, X: p.X, Y: p.Y})
		last = p
	}
	root.Dispatch(&RawEvent{Type: EventPointerUp, X: last.X, Y: last.Y})
}

func TestDraggableMovesByDelta(t *testing.T) {
	root, _, el := newDragScene()
	var starts, moves, ends []DragPosition
	d := NewDraggable(el, DraggableOptions{
		OnDragStart: func(p DragPosition) { starts = append(starts, p) },
		OnDrag:      func(p DragPosition) { moves = append(moves, p) },
		OnDragEnd:   func(p DragPosition) { ends = append(ends, p) },
	})
	defer d.Destroy()

	mouseDrag(root, el, 120, 120, Vec2{X: 130, Y: 125}, Vec2{X: 150, Y: 160})

	require.Len(t, starts, 1)
	require.Len(t, moves, 2)
	require.Len(t, ends, 1)
	assert.Equal(t, DragPosition{X: 110, Y: 110}, starts[0])
	assert.Equal(t, DragPosition{X: 140, Y: 150, DX: 30, DY: 40}, ends[0])
	assert.Equal(t, Rect{X: 140, Y: 150, Width: 50, Height: 40}, el.BoundingRect())
	assert.False(t, d.Dragging())
	assert.Equal(t, 0, root.ListenerCount(EventPointerMove), "move listener detached after drag")
}

func TestDraggableAxis(t *testing.T) {
	tests := []struct {
		name  string
		axis  Axis
		wantX float64
		wantY float64
	}{
		{"both", AxisBoth, 160, 130},
		{"x only", AxisX, 160, 110},
		{"y only", AxisY, 110, 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _, el := newDragScene()
			NewDraggable(el, DraggableOptions{Axis: tt.axis})
			mouseDrag(root, el, 120, 120, Vec2{X: 170, Y: 140})
			r := el.BoundingRect()
			assert.Equal(t, tt.wantX, r.X)
			assert.Equal(t, tt.wantY, r.Y)
		})
	}
}

func TestDraggableWindowBoundsNeverExceeded(t *testing.T) {
	root, _, el := newDragScene()
	win := &Window{Width: 800, Height: 600}
	NewDraggable(el, DraggableOptions{Bounds: WindowBounds, Window: win})

	el.Dispatch(&RawEvent{Type: EventPointerDown, X: 120, Y: 120})
	for _, p := range []Vec2{{-500, -500}, {2000, 50}, {400, 3000}, {1e6, 1e6}, {-1e6, 300}} {
		root.Dispatch(&RawEvent{Type: EventPointerMove, X: p.X, Y: p.Y})
		r := el.BoundingRect()
		assert.GreaterOrEqual(t, r.X, 0.0)
		assert.GreaterOrEqual(t, r.Y, 0.0)
		assert.LessOrEqual(t, r.Right(), win.Width)
		assert.LessOrEqual(t, r.Bottom(), win.Height)
	}
	root.Dispatch(&RawEvent{Type: EventPointerUp})
}

func TestDraggableWindowResizeResolvedPerMove(t *testing.T) {
	root, _, el := newDragScene()
	win := &Window{Width: 800, Height: 600}
	NewDraggable(el, DraggableOptions{Bounds: WindowBounds, Window: win})

	el.Dispatch(&RawEvent{Type: EventPointerDown, X: 120, Y: 120})
	win.Width = 300
	root.Dispatch(&RawEvent{Type: EventPointerMove, X: 1000, Y: 120})
	assert.Equal(t, 250.0, el.BoundingRect().X)
	root.Dispatch(&RawEvent{Type: EventPointerUp})
}

func TestDraggableParentAndRectBounds(t *testing.T) {
	root, _, el := newDragScene()
	NewDraggable(el, DraggableOptions{Bounds: ParentBounds})
	mouseDrag(root, el, 120, 120, Vec2{X: 900, Y: -50})
	assert.Equal(t, Rect{X: 350, Y: 100, Width: 50, Height: 40}, el.BoundingRect())

	root2, _, el2 := newDragScene()
	NewDraggable(el2, DraggableOptions{Bounds: RectBounds(Rect{X: 100, Y: 100, Width: 100, Height: 100})})
	mouseDrag(root2, el2, 120, 120, Vec2{X: 400, Y: 400})
	assert.Equal(t, Rect{X: 150, Y: 160, Width: 50, Height: 40}, el2.BoundingRect())
}

func TestDraggableHandle(t *testing.T) {
	root, _, el := newDragScene()
	handle := NewElement("bar", "bar", 0, 0, 50, 10)
	el.AppendChild(handle)
	NewDraggable(el, DraggableOptions{Handle: handle})

	// Pressing the body does nothing.
	el.Dispatch(&RawEvent{Type: EventPointerDown, X: 130, Y: 140})
	root.Dispatch(&RawEvent{Type: EventPointerMove, X: 200, Y: 200})
	root.Dispatch(&RawEvent{Type: EventPointerUp})
	assert.Equal(t, 110.0, el.BoundingRect().X)

	mouseDrag(root, handle, 115, 112, Vec2{X: 135, Y: 112})
	assert.Equal(t, 130.0, el.BoundingRect().X)
}

func TestDraggablePreventsDefaultOnPress(t *testing.T) {
	_, _, el := newDragScene()
	NewDraggable(el, DraggableOptions{})
	ev := &RawEvent{Type: EventPointerDown, X: 120, Y: 120}
	el.Dispatch(ev)
	assert.True(t, ev.DefaultPrevented())
}

func TestDraggableTouch(t *testing.T) {
	root, _, el := newDragScene()
	var ended bool
	NewDraggable(el, DraggableOptions{OnDragEnd: func(DragPosition) { ended = true }})

	el.Dispatch(&RawEvent{Type: EventTouchStart, Touches: []Touch{{ID: 1, X: 120, Y: 120}}})
	root.Dispatch(&RawEvent{Type: EventTouchMove, Touches: []Touch{{ID: 1, X: 140, Y: 130}}})
	// A second contact lifting does not end the drag.
	root.Dispatch(&RawEvent{Type: EventTouchEnd, Touches: []Touch{{ID: 1, X: 140, Y: 130}}})
	assert.False(t, ended)
	root.Dispatch(&RawEvent{Type: EventTouchEnd})

	assert.True(t, ended)
	assert.Equal(t, Rect{X: 130, Y: 120, Width: 50, Height: 40}, el.BoundingRect())
	assert.Equal(t, 0, root.ListenerCount(EventTouchMove))
}

func TestDraggableDestroy(t *testing.T) {
	root, _, el := newDragScene()
	var ended bool
	d := NewDraggable(el, DraggableOptions{OnDragEnd: func(DragPosition) { ended = true }})
	el.Dispatch(&RawEvent{Type: EventPointerDown, X: 120, Y: 120})
	d.Destroy()
	root.Dispatch(&RawEvent{Type: EventPointerMove, X: 300, Y: 300})
	root.Dispatch(&RawEvent{Type: EventPointerUp})

	assert.False(t, ended)
	assert.Equal(t, 110.0, el.BoundingRect().X)
	assert.Equal(t, 0, el.ListenerCount(EventPointerDown))
	assert.Equal(t, 0, root.ListenerCount(EventPointerMove))
}
