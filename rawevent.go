package tactile

// EventType identifies a kind of raw platform event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when a mouse button is pressed
	EventPointerMove                   // fires when the mouse moves
	EventPointerUp                     // fires when a mouse button is released
	EventPointerEnter                  // fires when the pointer enters an element (does not bubble)
	EventPointerLeave                  // fires when the pointer leaves an element (does not bubble)
	EventTouchStart                    // fires when a contact point touches the surface
	EventTouchMove                     // fires when any contact point moves
	EventTouchEnd                      // fires when a contact point is lifted
	EventTouchCancel                   // fires when the platform aborts a touch sequence
	EventWheel                         // fires for each wheel step
	numEventTypes
)

var eventTypeNames = [numEventTypes]string{
	"pointerdown", "pointermove", "pointerup", "pointerenter", "pointerleave",
	"touchstart", "touchmove", "touchend", "touchcancel", "wheel",
}

func (t EventType) String() string {
	if t < numEventTypes {
		return eventTypeNames[t]
	}
	return "unknown"
}

// bubbles reports whether events of this type propagate to ancestors.
func (t EventType) bubbles() bool {
	return t != EventPointerEnter && t != EventPointerLeave
}

// Touch is one contact point on a touch surface.
type Touch struct {
	ID   int
	X, Y float64
}

// RawEvent is a low-level platform input event dispatched on an Element.
//
// For touch events, Touches lists every contact still on the surface after
// the event (so it is empty on the final touch-end) and ChangedTouches lists
// the contacts that started, moved, or lifted.
type RawEvent struct {
	Type      EventType
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	DeltaY    float64

	Touches        []Touch
	ChangedTouches []Touch

	// Target is the element the event was dispatched on. Set by Dispatch.
	Target *Element
	// CurrentTarget is the element whose listeners are running.
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event so the platform skips its default action.
func (e *RawEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *RawEvent) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from reaching further ancestors.
func (e *RawEvent) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *RawEvent) PropagationStopped() bool { return e.stopped }

// IsTouch reports whether the event came from a touch surface.
func (e *RawEvent) IsTouch() bool {
	switch e.Type {
	case EventTouchStart, EventTouchMove, EventTouchEnd, EventTouchCancel:
		return true
	}
	return false
}
