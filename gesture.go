package tactile

import (
	"time"

	"go.uber.org/zap"
)

const (
	// AttrInteractive marks an element as a hit-test target. Its value is the
	// id the element was registered under.
	AttrInteractive = "data-interactive"
	// AttrType overrides the TargetType reported for an element (default: Tag).
	AttrType = "data-type"

	wheelZoomStep = 0.1 // ±10% per wheel step
)

// --- Gesture state ---

// gestureState tracks the single open pointer or touch sequence.
type gestureState struct {
	active     bool
	pointer    PointerType
	button     MouseButton
	mods       KeyModifiers
	targetID   string
	targetType string

	startX, startY     float64
	currentX, currentY float64
	startTime          time.Time
	lastTapTime        time.Time
	tapped             bool // lastTapTime is set

	isDragging   bool
	isLongPress  bool
	pinched      bool // a second contact joined this sequence
	dragDistance float64
}

// panZoomState is only meaningful while two contacts are down. Scale and pan
// accumulate across pinches.
type panZoomState struct {
	active        bool
	initialScale  float64
	currentScale  float64
	initialPan    Vec2
	currentPan    Vec2
	startDistance float64
	startCenter   Vec2
}

// Manager turns raw pointer, touch, and wheel events arriving at one root
// element into InteractionEvents. Each Manager owns its gesture state; managers
// bound to different roots share nothing.
type Manager struct {
	root     *Element
	cfg      Config
	sched    *Scheduler
	debounce *Debouncer
	disp     *Dispatcher
	log      *zap.Logger

	elements  map[string]*Element
	listeners []ListenerHandle

	state     gestureState
	pz        panZoomState
	longPress TimerID
	lastStamp time.Time

	enabled   bool
	destroyed bool
}

// NewManager binds a manager to root and starts listening for raw events.
func NewManager(root *Element, cfg Config) *Manager {
	cfg = cfg.withDefaults()
	sched := cfg.Scheduler
	if sched == nil {
		sched = NewScheduler(nil)
	}
	m := &Manager{
		root:     root,
		cfg:      cfg,
		sched:    sched,
		debounce: NewDebouncer(sched),
		disp:     NewDispatcher(cfg.Logger),
		log:      cfg.Logger,
		elements: make(map[string]*Element),
		pz:       panZoomState{initialScale: 1, currentScale: 1},
		enabled:  !cfg.Disabled,
	}
	m.listen(EventPointerDown, m.handlePointerDown)
	m.listen(EventPointerMove, m.handlePointerMove)
	m.listen(EventPointerUp, m.handlePointerUp)
	m.listen(EventPointerLeave, m.handlePointerLeave)
	m.listen(EventTouchStart, m.handleTouchStart)
	m.listen(EventTouchMove, m.handleTouchMove)
	m.listen(EventTouchEnd, m.handleTouchEnd)
	m.listen(EventTouchCancel, m.handleTouchCancel)
	m.listen(EventWheel, m.handleWheel)
	return m
}

// listen attaches fn to the root, gated on the manager being live and enabled.
func (m *Manager) listen(t EventType, fn func(*RawEvent)) {
	h := m.root.Listen(t, func(ev *RawEvent) {
		if m.destroyed || !m.enabled {
			return
		}
		fn(ev)
	})
	m.listeners = append(m.listeners, h)
}

// Root returns the element the manager is bound to.
func (m *Manager) Root() *Element { return m.root }

// Scheduler returns the scheduler running the manager's timers.
func (m *Manager) Scheduler() *Scheduler { return m.sched }

// Update fires due timers. Call once per frame.
func (m *Manager) Update() {
	m.sched.Update()
}

// --- Subscription API ---

// On registers h for kind. See Dispatcher.On.
func (m *Manager) On(kind Kind, h Handler) CallbackHandle { return m.disp.On(kind, h) }

// OnFunc registers fn for kind. See Dispatcher.OnFunc.
func (m *Manager) OnFunc(kind Kind, fn func(InteractionEvent)) CallbackHandle {
	return m.disp.OnFunc(kind, fn)
}

// Off removes h from kind.
func (m *Manager) Off(kind Kind, h Handler) { m.disp.Off(kind, h) }

// OffAll removes handlers for the given kinds, or all handlers.
func (m *Manager) OffAll(kinds ...Kind) { m.disp.OffAll(kinds...) }

// SetEntityStore sets the optional ECS bridge.
func (m *Manager) SetEntityStore(store EntityStore) { m.disp.SetEntityStore(store) }

// --- Registration ---

// RegisterElement marks el as interactive under id. Re-registering an id moves
// the marker to the new element.
func (m *Manager) RegisterElement(id string, el *Element) {
	if m.destroyed || id == "" || el == nil {
		return
	}
	if old, ok := m.elements[id]; ok && old != el {
		old.RemoveAttr(AttrInteractive)
	}
	el.SetAttr(AttrInteractive, id)
	m.elements[id] = el
}

// UnregisterElement clears the marker for id. No-op if unknown.
func (m *Manager) UnregisterElement(id string) {
	el, ok := m.elements[id]
	if !ok {
		return
	}
	if v, _ := el.Attr(AttrInteractive); v == id {
		el.RemoveAttr(AttrInteractive)
	}
	delete(m.elements, id)
}

// Element returns the element registered under id.
func (m *Manager) Element(id string) (*Element, bool) {
	el, ok := m.elements[id]
	return el, ok
}

// resolveTarget walks from el up to the root looking for an element this
// manager registered.
func (m *Manager) resolveTarget(el *Element) (id, typ string, ok bool) {
	for n := el; n != nil; n = n.Parent {
		if v, has := n.Attr(AttrInteractive); has && m.elements[v] == n {
			typ, has = n.Attr(AttrType)
			if !has {
				typ = n.Tag
			}
			return v, typ, true
		}
		if n == m.root {
			break
		}
	}
	return "", "", false
}

// --- Lifecycle ---

// Enabled reports whether raw events are being processed.
func (m *Manager) Enabled() bool { return m.enabled && !m.destroyed }

// Enable resumes raw event processing.
func (m *Manager) Enable() {
	if !m.destroyed {
		m.enabled = true
	}
}

// Disable stops raw event processing. Any open sequence is dropped without
// emitting events so re-enabling starts clean.
func (m *Manager) Disable() {
	m.enabled = false
	if m.state.active {
		m.log.Debug("gesture dropped on disable", zap.String("target", m.state.targetID))
	}
	m.abort()
}

// Destroy detaches every raw listener, cancels every pending timer, clears
// registrations and handlers. The manager is unusable afterwards.
func (m *Manager) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	for _, h := range m.listeners {
		h.Remove()
	}
	m.listeners = nil
	m.abort()
	for id := range m.elements {
		m.UnregisterElement(id)
	}
	m.disp.OffAll()
	m.disp.SetEntityStore(nil)
	m.log.Debug("gesture manager destroyed", zap.Uint32("root", m.root.ID))
}

// abort cancels timers and clears the open sequence without emitting.
func (m *Manager) abort() {
	m.cancelLongPress()
	m.debounce.CancelAll()
	m.reset()
}

func (m *Manager) reset() {
	m.state.active = false
	m.state.isDragging = false
	m.state.isLongPress = false
	m.state.pinched = false
	m.state.dragDistance = 0
	m.pz.active = false
}

// --- Accessors ---

// Scale returns the accumulated pinch scale (1 when no pinch has happened).
func (m *Manager) Scale() float64 { return m.pz.currentScale }

// Pan returns the accumulated pinch pan offset.
func (m *Manager) Pan() Vec2 { return m.pz.currentPan }

// Active reports whether a pointer or touch sequence is open.
func (m *Manager) Active() bool { return m.state.active }

// Dragging reports whether the open sequence has crossed the drag threshold.
func (m *Manager) Dragging() bool { return m.state.isDragging }

// --- Programmatic events ---

// Trigger dispatches an event of kind against a registered element with
// SourceAPI. Use it for interactions that do not come from gestures (filter,
// expand, collapse, search, reset). Unknown ids are dropped.
func (m *Manager) Trigger(kind Kind, id string, p Payload) {
	if m.destroyed {
		return
	}
	el, ok := m.elements[id]
	if !ok {
		return
	}
	typ, has := el.Attr(AttrType)
	if !has {
		typ = el.Tag
	}
	m.dispatch(kind, id, typ, SourceAPI, p)
}

// --- Raw event handlers ---

func (m *Manager) consume(ev *RawEvent) {
	if m.cfg.PreventDefault {
		ev.PreventDefault()
	}
	if m.cfg.StopPropagation {
		ev.StopPropagation()
	}
}

func (m *Manager) handlePointerDown(ev *RawEvent) {
	if m.state.active {
		return
	}
	id, typ, ok := m.resolveTarget(ev.Target)
	if !ok {
		return
	}
	m.consume(ev)
	m.begin(PointerMouse, ev.X, ev.Y, ev.Button, ev.Modifiers, id, typ)
}

func (m *Manager) handlePointerMove(ev *RawEvent) {
	if !m.state.active || m.state.pointer != PointerMouse {
		return
	}
	m.consume(ev)
	m.state.mods = ev.Modifiers
	m.moveTo(ev.X, ev.Y)
}

func (m *Manager) handlePointerUp(ev *RawEvent) {
	if !m.state.active || m.state.pointer != PointerMouse {
		return
	}
	m.consume(ev)
	m.release(false)
}

func (m *Manager) handlePointerLeave(ev *RawEvent) {
	if !m.state.active || m.state.pointer != PointerMouse {
		return
	}
	m.consume(ev)
	m.release(false)
}

func (m *Manager) handleTouchStart(ev *RawEvent) {
	if len(ev.Touches) == 0 {
		return
	}
	if m.state.active {
		// A further contact augments the open sequence.
		if m.state.pointer == PointerTouch && len(ev.Touches) >= 2 && !m.pz.active {
			m.consume(ev)
			m.beginPinch(ev.Touches[0], ev.Touches[1])
		}
		return
	}
	id, typ, ok := m.resolveTarget(ev.Target)
	if !ok {
		return
	}
	m.consume(ev)
	t := ev.Touches[0]
	m.begin(PointerTouch, t.X, t.Y, MouseButtonLeft, ev.Modifiers, id, typ)
	if len(ev.Touches) >= 2 {
		m.beginPinch(ev.Touches[0], ev.Touches[1])
		return
	}
	m.longPress = m.sched.After(m.cfg.LongPressDelay, m.fireLongPress)
}

func (m *Manager) handleTouchMove(ev *RawEvent) {
	if !m.state.active || m.state.pointer != PointerTouch || len(ev.Touches) == 0 {
		return
	}
	m.consume(ev)
	if len(ev.Touches) >= 2 {
		if !m.pz.active {
			m.beginPinch(ev.Touches[0], ev.Touches[1])
			return
		}
		m.updatePinch(ev.Touches[0], ev.Touches[1])
		return
	}
	// Once a second finger has joined, the remaining finger no longer drags.
	if m.state.pinched {
		return
	}
	m.moveTo(ev.Touches[0].X, ev.Touches[0].Y)
}

func (m *Manager) handleTouchEnd(ev *RawEvent) {
	if !m.state.active || m.state.pointer != PointerTouch {
		return
	}
	m.consume(ev)
	if len(ev.Touches) < 2 {
		m.pz.active = false
	}
	if len(ev.Touches) > 0 {
		return
	}
	m.release(false)
}

func (m *Manager) handleTouchCancel(ev *RawEvent) {
	if !m.state.active || m.state.pointer != PointerTouch {
		return
	}
	m.consume(ev)
	m.release(true)
}

func (m *Manager) handleWheel(ev *RawEvent) {
	if ev.DeltaY == 0 {
		return
	}
	id, typ, ok := m.resolveTarget(ev.Target)
	if !ok {
		return
	}
	m.consume(ev)
	x, y, delta, mods := ev.X, ev.Y, ev.DeltaY, ev.Modifiers
	m.debounce.Call("wheel:"+id, m.cfg.DebounceDelay, func() {
		scale := 1 + wheelZoomStep
		if delta > 0 {
			scale = 1 - wheelZoomStep
		}
		m.dispatch(KindZoom, id, typ, SourceUser, Payload{
			X: x, Y: y, PointerType: PointerMouse, Modifiers: mods,
			Scale: scale, Delta: delta,
		})
	})
}

// --- State machine ---

func (m *Manager) begin(pt PointerType, x, y float64, button MouseButton, mods KeyModifiers, id, typ string) {
	s := &m.state
	s.active = true
	s.pointer = pt
	s.button = button
	s.mods = mods
	s.targetID = id
	s.targetType = typ
	s.startX, s.startY = x, y
	s.currentX, s.currentY = x, y
	s.startTime = m.sched.Now()
	s.isDragging = false
	s.isLongPress = false
	s.pinched = false
	s.dragDistance = 0
}

func (m *Manager) moveTo(x, y float64) {
	s := &m.state
	s.currentX, s.currentY = x, y
	s.dragDistance = Distance(s.startX, s.startY, x, y)

	if !s.isDragging {
		if s.dragDistance <= m.cfg.DragThreshold {
			return
		}
		// A drag preempts a pending long-press.
		m.cancelLongPress()
		m.emit(KindDrag, Payload{State: DragStart})
		s.isDragging = true
		return
	}
	m.emit(KindDrag, Payload{
		State:    DragMove,
		DX:       s.currentX - s.startX,
		DY:       s.currentY - s.startY,
		Distance: s.dragDistance,
	})
}

// release closes the open sequence. A cancelled sequence never produces a click.
func (m *Manager) release(cancelled bool) {
	m.cancelLongPress()
	s := &m.state
	now := m.sched.Now()

	switch {
	case s.isDragging:
		m.emit(KindDrag, Payload{
			State:    DragEnd,
			DX:       s.currentX - s.startX,
			DY:       s.currentY - s.startY,
			Distance: s.dragDistance,
		})
	case !cancelled && !s.isLongPress && !s.pinched:
		double := s.tapped && now.Sub(s.lastTapTime) < m.cfg.DoubleTapDelay
		s.lastTapTime = now
		s.tapped = true
		m.emit(KindClick, Payload{
			DoubleTap: double,
			Duration:  now.Sub(s.startTime),
		})
	}
	m.reset()
}

func (m *Manager) fireLongPress() {
	m.longPress = 0
	s := &m.state
	if !s.active || s.isDragging || m.pz.active {
		return
	}
	s.isLongPress = true
	m.emit(KindSelect, Payload{
		LongPress: true,
		Duration:  m.sched.Now().Sub(s.startTime),
	})
}

func (m *Manager) cancelLongPress() {
	if m.longPress != 0 {
		m.sched.Cancel(m.longPress)
		m.longPress = 0
	}
}

// --- Pinch ---

func (m *Manager) beginPinch(a, b Touch) {
	m.cancelLongPress()
	s := &m.state
	if s.isDragging {
		m.emit(KindDrag, Payload{
			State:    DragEnd,
			DX:       s.currentX - s.startX,
			DY:       s.currentY - s.startY,
			Distance: s.dragDistance,
		})
		s.isDragging = false
	}
	s.pinched = true

	m.pz.active = true
	m.pz.startDistance = Distance(a.X, a.Y, b.X, b.Y)
	m.pz.startCenter = Midpoint(Vec2{a.X, a.Y}, Vec2{b.X, b.Y})
	m.pz.initialScale = m.pz.currentScale
	m.pz.initialPan = m.pz.currentPan
}

func (m *Manager) updatePinch(a, b Touch) {
	center := Midpoint(Vec2{a.X, a.Y}, Vec2{b.X, b.Y})
	dist := Distance(a.X, a.Y, b.X, b.Y)
	pz := &m.pz

	if pz.startDistance > 0 {
		pz.currentScale = pz.initialScale * (dist / pz.startDistance)
	}
	dx := center.X - pz.startCenter.X
	dy := center.Y - pz.startCenter.Y
	pz.currentPan = Vec2{X: pz.initialPan.X + dx, Y: pz.initialPan.Y + dy}

	m.emitAt(KindZoom, Payload{
		X: center.X, Y: center.Y,
		CenterX: center.X, CenterY: center.Y,
		Scale: pz.currentScale,
	})
	m.emitAt(KindPan, Payload{
		X: center.X, Y: center.Y,
		CenterX: center.X, CenterY: center.Y,
		DX: dx, DY: dy,
		PanX: pz.currentPan.X, PanY: pz.currentPan.Y,
	})
}

// --- Emission ---

// emit dispatches an event for the open sequence's target at the current
// pointer position.
func (m *Manager) emit(kind Kind, p Payload) {
	p.X, p.Y = m.state.currentX, m.state.currentY
	m.emitAt(kind, p)
}

// emitAt is emit without overriding the payload position.
func (m *Manager) emitAt(kind Kind, p Payload) {
	s := &m.state
	p.PointerType = s.pointer
	p.Button = s.button
	p.Modifiers = s.mods
	m.dispatch(kind, s.targetID, s.targetType, SourceUser, p)
}

func (m *Manager) dispatch(kind Kind, id, typ string, src Source, p Payload) {
	if m.destroyed {
		return
	}
	ts := m.sched.Now()
	if ts.Before(m.lastStamp) {
		ts = m.lastStamp
	}
	m.lastStamp = ts
	m.disp.Dispatch(InteractionEvent{
		Kind:       kind,
		TargetID:   id,
		TargetType: typ,
		Source:     src,
		Timestamp:  ts,
		Payload:    p,
	})
}
