package tactile

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// wheelDeltaScale converts Ebitengine wheel notches to pixel-style DeltaY
// values. Ebitengine reports scrolling up as positive; DeltaY is the reverse.
const wheelDeltaScale = -100.0

// inputFrame is one frame's snapshot of device state.
type inputFrame struct {
	x, y    float64
	pressed bool
	button  MouseButton
	touches []Touch
	wheelY  float64
	mods    KeyModifiers
}

// EbitenInput polls Ebitengine's mouse, touch and wheel state once per frame
// and dispatches the changes as RawEvents into an element tree. Mouse events
// target the topmost element under the cursor; touch events target the
// element each contact started on.
type EbitenInput struct {
	root *Element

	mouseDown bool
	lastX     float64
	lastY     float64
	hover     []*Element // hovered element and its ancestors, innermost first

	touches     []Touch
	touchTarget map[int]*Element
	touchIDs    []ebiten.TouchID
}

// NewEbitenInput creates an input source dispatching into root.
func NewEbitenInput(root *Element) *EbitenInput {
	return &EbitenInput{root: root, touchTarget: make(map[int]*Element)}
}

// Update reads the current device state and dispatches events. Call it from
// ebiten.Game.Update before advancing schedulers.
func (in *EbitenInput) Update() {
	in.apply(in.poll())
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

func (in *EbitenInput) poll() inputFrame {
	mx, my := ebiten.CursorPosition()
	f := inputFrame{x: float64(mx), y: float64(my), mods: readModifiers()}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		f.pressed = true
		switch {
		case left:
			f.button = MouseButtonLeft
		case right:
			f.button = MouseButtonRight
		default:
			f.button = MouseButtonMiddle
		}
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.touches = append(f.touches, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}

	_, f.wheelY = ebiten.Wheel()
	return f
}

func (in *EbitenInput) apply(f inputFrame) {
	in.applyMouse(f)
	in.applyTouches(f)
}

func (in *EbitenInput) applyMouse(f inputFrame) {
	target := in.root.HitTest(f.x, f.y)
	in.updateHover(target, f)

	// While a button is held, moves and the release still reach the tree even
	// outside every element.
	dispatchTo := target
	if dispatchTo == nil {
		dispatchTo = in.root
	}

	moved := f.x != in.lastX || f.y != in.lastY
	in.lastX, in.lastY = f.x, f.y

	if moved && (target != nil || in.mouseDown) {
		dispatchTo.Dispatch(&RawEvent{Type: EventPointerMove, X: f.x, Y: f.y, Button: f.button, Modifiers: f.mods})
	}
	switch {
	case f.pressed && !in.mouseDown:
		in.mouseDown = true
		if target != nil {
			target.Dispatch(&RawEvent{Type: EventPointerDown, X: f.x, Y: f.y, Button: f.button, Modifiers: f.mods})
		}
	case !f.pressed && in.mouseDown:
		in.mouseDown = false
		dispatchTo.Dispatch(&RawEvent{Type: EventPointerUp, X: f.x, Y: f.y, Button: f.button, Modifiers: f.mods})
	}

	if f.wheelY != 0 && target != nil {
		target.Dispatch(&RawEvent{Type: EventWheel, X: f.x, Y: f.y, DeltaY: f.wheelY * wheelDeltaScale, Modifiers: f.mods})
	}
}

// updateHover fires leave on every element the pointer left (innermost first)
// and enter on every element it entered (outermost first).
func (in *EbitenInput) updateHover(target *Element, f inputFrame) {
	var chain []*Element
	for n := target; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	for _, old := range in.hover {
		if !containsElement(chain, old) {
			old.Dispatch(&RawEvent{Type: EventPointerLeave, X: f.x, Y: f.y, Modifiers: f.mods})
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if !containsElement(in.hover, chain[i]) {
			chain[i].Dispatch(&RawEvent{Type: EventPointerEnter, X: f.x, Y: f.y, Modifiers: f.mods})
		}
	}
	in.hover = chain
}

func containsElement(s []*Element, e *Element) bool {
	for _, x := range s {
		if x == e {
			return true
		}
	}
	return false
}

// applyTouches diffs the contact list against the previous frame and
// dispatches touch-end, touch-move and touch-start, in that order.
func (in *EbitenInput) applyTouches(f inputFrame) {
	current := make(map[int]Touch, len(f.touches))
	for _, t := range f.touches {
		current[t.ID] = t
	}

	// Ended contacts.
	var remaining []Touch
	for _, prev := range in.touches {
		if _, ok := current[prev.ID]; ok {
			remaining = append(remaining, prev)
		}
	}
	for _, prev := range in.touches {
		if _, ok := current[prev.ID]; ok {
			continue
		}
		target := in.touchTarget[prev.ID]
		delete(in.touchTarget, prev.ID)
		if target == nil {
			target = in.root
		}
		target.Dispatch(&RawEvent{
			Type: EventTouchEnd, X: prev.X, Y: prev.Y, Modifiers: f.mods,
			Touches:        append([]Touch(nil), remaining...),
			ChangedTouches: []Touch{prev},
		})
	}

	// Moved contacts.
	var changed []Touch
	for i, prev := range remaining {
		cur := current[prev.ID]
		if cur.X != prev.X || cur.Y != prev.Y {
			remaining[i] = cur
			changed = append(changed, cur)
		}
	}
	if len(changed) > 0 {
		target := in.touchTarget[changed[0].ID]
		if target == nil {
			target = in.root
		}
		target.Dispatch(&RawEvent{
			Type: EventTouchMove, X: changed[0].X, Y: changed[0].Y, Modifiers: f.mods,
			Touches:        append([]Touch(nil), remaining...),
			ChangedTouches: changed,
		})
	}

	// New contacts, in platform order.
	for _, t := range f.touches {
		if in.touchTarget[t.ID] != nil || containsTouch(remaining, t.ID) {
			continue
		}
		target := in.root.HitTest(t.X, t.Y)
		if target == nil {
			target = in.root
		}
		in.touchTarget[t.ID] = target
		remaining = append(remaining, t)
		target.Dispatch(&RawEvent{
			Type: EventTouchStart, X: t.X, Y: t.Y, Modifiers: f.mods,
			Touches:        append([]Touch(nil), remaining...),
			ChangedTouches: []Touch{t},
		})
	}
	in.touches = remaining
}

func containsTouch(s []Touch, id int) bool {
	for _, t := range s {
		if t.ID == id {
			return true
		}
	}
	return false
}
