package tactile

import "time"

// Payload carries the kind-specific data of an InteractionEvent. Fields that
// do not apply to the event's Kind are zero.
type Payload struct {
	// Pointer position in root coordinates.
	X, Y        float64
	PointerType PointerType
	Button      MouseButton
	Modifiers   KeyModifiers

	// Drag fields (KindDrag). Deltas are measured from the press position.
	State    DragState
	DX, DY   float64
	Distance float64

	// Zoom fields (KindZoom). Scale is a multiplier for wheel zoom and the
	// accumulated pinch scale for touch zoom.
	Scale float64
	Delta float64 // raw wheel DeltaY

	// Pinch fields (KindZoom and KindPan from two contacts).
	CenterX, CenterY float64
	PanX, PanY       float64

	// Click / select fields.
	Duration  time.Duration
	DoubleTap bool
	LongPress bool
}

// InteractionEvent is one normalized interaction. It is passed by value and
// never mutated after dispatch.
type InteractionEvent struct {
	Kind       Kind
	TargetID   string
	TargetType string
	Source     Source
	Timestamp  time.Time
	Payload    Payload
}

// EntityStore is the interface for optional ECS integration.
// When set on a Manager, every dispatched event is forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}
