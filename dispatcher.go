package tactile

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Handler receives normalized interaction events.
type Handler interface {
	HandleInteraction(InteractionEvent)
}

type funcHandler struct {
	fn func(InteractionEvent)
}

func (h *funcHandler) HandleInteraction(ev InteractionEvent) { h.fn(ev) }

// Func wraps fn in a Handler. The returned value is comparable, so keep it
// around to pass to Off or to register it idempotently.
func Func(fn func(InteractionEvent)) Handler {
	return &funcHandler{fn: fn}
}

type subscription struct {
	id uint32
	h  Handler
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id   uint32
	d    *Dispatcher
	kind Kind
}

// Remove unregisters the handler so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.d == nil {
		return
	}
	h.d.removeByID(h.kind, h.id)
}

// Dispatcher fans InteractionEvents out to handlers registered per Kind.
// Handlers run in registration order; a panicking handler is recovered and
// logged without affecting the others.
type Dispatcher struct {
	subs   [numKinds][]subscription
	nextID uint32
	store  EntityStore
	log    *zap.Logger
}

// NewDispatcher creates an empty dispatcher logging handler failures to log.
// A nil logger uses zap.L().
func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.L()
	}
	return &Dispatcher{log: log}
}

// On registers h for events of kind. Registering a handler that is already
// registered for kind is a no-op and returns the existing handle.
func (d *Dispatcher) On(kind Kind, h Handler) CallbackHandle {
	if kind >= numKinds || h == nil {
		return CallbackHandle{}
	}
	for _, s := range d.subs[kind] {
		if sameHandler(s.h, h) {
			return CallbackHandle{id: s.id, d: d, kind: kind}
		}
	}
	d.nextID++
	id := d.nextID
	d.subs[kind] = append(d.subs[kind], subscription{id: id, h: h})
	return CallbackHandle{id: id, d: d, kind: kind}
}

// OnFunc is shorthand for On(kind, Func(fn)).
func (d *Dispatcher) OnFunc(kind Kind, fn func(InteractionEvent)) CallbackHandle {
	return d.On(kind, Func(fn))
}

// Off removes h from kind. No-op if h is not registered.
func (d *Dispatcher) Off(kind Kind, h Handler) {
	if kind >= numKinds {
		return
	}
	for _, s := range d.subs[kind] {
		if sameHandler(s.h, h) {
			d.removeByID(kind, s.id)
			return
		}
	}
}

// OffAll removes every handler for the given kinds, or for all kinds when
// none are given.
func (d *Dispatcher) OffAll(kinds ...Kind) {
	if len(kinds) == 0 {
		for k := range d.subs {
			d.subs[k] = nil
		}
		return
	}
	for _, k := range kinds {
		if k < numKinds {
			d.subs[k] = nil
		}
	}
}

// HandlerCount returns the number of handlers registered for kind.
func (d *Dispatcher) HandlerCount(kind Kind) int {
	if kind >= numKinds {
		return 0
	}
	return len(d.subs[kind])
}

// SetEntityStore sets the optional ECS bridge.
func (d *Dispatcher) SetEntityStore(store EntityStore) {
	d.store = store
}

// Dispatch delivers ev to every handler registered for ev.Kind, then to the
// entity store. Events without a TargetID are dropped.
func (d *Dispatcher) Dispatch(ev InteractionEvent) {
	if ev.TargetID == "" || ev.Kind >= numKinds {
		return
	}
	// Snapshot: handlers may register or remove handlers while running.
	for _, s := range d.subs[ev.Kind] {
		d.invoke(s.h, ev)
	}
	if d.store != nil {
		d.store.EmitEvent(ev)
	}
}

func (d *Dispatcher) invoke(h Handler, ev InteractionEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("interaction handler failed",
				zap.Stringer("kind", ev.Kind),
				zap.String("target", ev.TargetID),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	h.HandleInteraction(ev)
}

func (d *Dispatcher) removeByID(kind Kind, id uint32) {
	s := d.subs[kind]
	for i := range s {
		if s[i].id == id {
			out := make([]subscription, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			d.subs[kind] = out
			return
		}
	}
}

// sameHandler compares handlers without panicking on uncomparable dynamic
// types (those are never considered equal).
func sameHandler(a, b Handler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
