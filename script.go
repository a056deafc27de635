package tactile

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// ScriptElement declares an interactive element created by Script.Build.
type ScriptElement struct {
	ID     string
	Type   string
	Parent string // id of another script element; empty attaches to the root
	X, Y   float64
	Width  float64
	Height float64
}

// ScriptStep is a single raw input action.
type ScriptStep struct {
	Action  string
	X, Y    float64
	FromX   float64
	FromY   float64
	ToX     float64
	ToY     float64
	Moves   int
	DeltaY  float64
	Touches []Touch
	Wait    time.Duration
}

// Script is a replayable sequence of raw input against a declared element
// layout. Scripts make gesture bugs reproducible without a window.
//
//	{
//	  "window":   {"width": 800, "height": 600},
//	  "elements": [{"id": "n1", "type": "node", "x": 10, "y": 10, "width": 80, "height": 40}],
//	  "steps": [
//	    {"action": "press", "x": 20, "y": 20},
//	    {"action": "wait", "ms": 600},
//	    {"action": "release", "x": 20, "y": 20}
//	  ]
//	}
type Script struct {
	Window   Window
	Elements []ScriptElement
	Steps    []ScriptStep
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "leave": true,
	"click": true, "drag": true, "wheel": true, "wait": true,
	"touchstart": true, "touchmove": true, "touchend": true, "touchcancel": true,
}

// ParseScript decodes a JSON gesture script.
func ParseScript(data []byte) (*Script, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse script: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	s := &Script{Window: Window{
		Width:  doc.Get("window.width").Float(),
		Height: doc.Get("window.height").Float(),
	}}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		s.Window = Window{Width: 1280, Height: 720}
	}

	for i, e := range doc.Get("elements").Array() {
		el := ScriptElement{
			ID:     e.Get("id").String(),
			Type:   e.Get("type").String(),
			Parent: e.Get("parent").String(),
			X:      e.Get("x").Float(),
			Y:      e.Get("y").Float(),
			Width:  e.Get("width").Float(),
			Height: e.Get("height").Float(),
		}
		if el.ID == "" {
			return nil, fmt.Errorf("parse script: element %d has no id", i)
		}
		s.Elements = append(s.Elements, el)
	}

	for i, st := range doc.Get("steps").Array() {
		step := ScriptStep{
			Action: st.Get("action").String(),
			X:      st.Get("x").Float(),
			Y:      st.Get("y").Float(),
			FromX:  st.Get("fromX").Float(),
			FromY:  st.Get("fromY").Float(),
			ToX:    st.Get("toX").Float(),
			ToY:    st.Get("toY").Float(),
			Moves:  int(st.Get("moves").Int()),
			DeltaY: st.Get("deltaY").Float(),
			Wait:   time.Duration(st.Get("ms").Int()) * time.Millisecond,
		}
		if !scriptActions[step.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, step.Action)
		}
		for _, t := range st.Get("touches").Array() {
			step.Touches = append(step.Touches, Touch{
				ID: int(t.Get("id").Int()),
				X:  t.Get("x").Float(),
				Y:  t.Get("y").Float(),
			})
		}
		s.Steps = append(s.Steps, step)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return s, nil
}

// Build creates the declared elements under root and registers them with m.
// It returns the elements by id.
func (s *Script) Build(root *Element, m *Manager) (map[string]*Element, error) {
	byID := make(map[string]*Element, len(s.Elements))
	for _, se := range s.Elements {
		parent := root
		if se.Parent != "" {
			p, ok := byID[se.Parent]
			if !ok {
				return nil, fmt.Errorf("build script: element %q: unknown parent %q", se.ID, se.Parent)
			}
			parent = p
		}
		el := NewElement(se.Type, se.ID, se.X, se.Y, se.Width, se.Height)
		parent.AppendChild(el)
		byID[se.ID] = el
		if m != nil {
			m.RegisterElement(se.ID, el)
		}
	}
	return byID, nil
}

// Run replays the steps into root. Waits advance clock; sched.Update runs
// after every step so due timers fire in order.
func (s *Script) Run(root *Element, clock *ManualClock, sched *Scheduler) {
	target := func(x, y float64) *Element {
		if t := root.HitTest(x, y); t != nil {
			return t
		}
		return root
	}
	touchTarget := func(touches []Touch) *Element {
		if len(touches) == 0 {
			return root
		}
		return target(touches[0].X, touches[0].Y)
	}
	var lastTouches []Touch

	for _, st := range s.Steps {
		switch st.Action {
		case "press":
			target(st.X, st.Y).Dispatch(&RawEvent{Type: EventPointerDown, X: st.X, Y: st.Y})
		case "move":
			target(st.X, st.Y).Dispatch(&RawEvent{Type: EventPointerMove, X: st.X, Y: st.Y})
		case "release":
			target(st.X, st.Y).Dispatch(&RawEvent{Type: EventPointerUp, X: st.X, Y: st.Y})
		case "leave":
			root.Dispatch(&RawEvent{Type: EventPointerLeave, X: st.X, Y: st.Y})
		case "click":
			t := target(st.X, st.Y)
			t.Dispatch(&RawEvent{Type: EventPointerDown, X: st.X, Y: st.Y})
			t.Dispatch(&RawEvent{Type: EventPointerUp, X: st.X, Y: st.Y})
		case "drag":
			s.runDrag(st, target)
		case "wheel":
			target(st.X, st.Y).Dispatch(&RawEvent{Type: EventWheel, X: st.X, Y: st.Y, DeltaY: st.DeltaY})
		case "wait":
			clock.Advance(st.Wait)
		case "touchstart":
			touchTarget(st.Touches).Dispatch(&RawEvent{Type: EventTouchStart, Touches: st.Touches})
			lastTouches = st.Touches
		case "touchmove":
			touchTarget(st.Touches).Dispatch(&RawEvent{Type: EventTouchMove, Touches: st.Touches})
			lastTouches = st.Touches
		case "touchend":
			touchTarget(lastTouches).Dispatch(&RawEvent{Type: EventTouchEnd, Touches: st.Touches})
			lastTouches = st.Touches
		case "touchcancel":
			touchTarget(lastTouches).Dispatch(&RawEvent{Type: EventTouchCancel})
			lastTouches = nil
		}
		sched.Update()
	}
}

// runDrag presses at (FromX, FromY), moves in Moves linear steps to
// (ToX, ToY) and releases there.
func (s *Script) runDrag(st ScriptStep, target func(x, y float64) *Element) {
	moves := st.Moves
	if moves < 1 {
		moves = 1
	}
	target(st.FromX, st.FromY).Dispatch(&RawEvent{Type: EventPointerDown, X: st.FromX, Y: st.FromY})
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		x := st.FromX + (st.ToX-st.FromX)*t
		y := st.FromY + (st.ToY-st.FromY)*t
		target(x, y).Dispatch(&RawEvent{Type: EventPointerMove, X: x, Y: y})
	}
	target(st.ToX, st.ToY).Dispatch(&RawEvent{Type: EventPointerUp, X: st.ToX, Y: st.ToY})
}
