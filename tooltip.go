package tactile

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Placement selects which side of the trigger a tooltip sits on.
type Placement uint8

const (
	PlacementTop Placement = iota
	PlacementRight
	PlacementBottom
	PlacementLeft
)

func (p Placement) String() string {
	switch p {
	case PlacementRight:
		return "right"
	case PlacementBottom:
		return "bottom"
	case PlacementLeft:
		return "left"
	default:
		return "top"
	}
}

const (
	tooltipMargin        = 5.0 // minimum gap kept from the viewport's top/left edge
	defaultTooltipOffset = 8.0
	defaultTooltipDelay  = 200 * time.Millisecond
)

// PlaceTooltip returns the top-left corner for a tipW×tipH tooltip beside
// trigger. The candidate is shifted left/up when it overflows the viewport's
// right/bottom edge, and never placed closer than 5px to its left/top edge.
func PlaceTooltip(trigger Rect, tipW, tipH float64, p Placement, offset float64, viewport Rect) Vec2 {
	var x, y float64
	switch p {
	case PlacementRight:
		x = trigger.Right() + offset
		y = trigger.Y + (trigger.Height-tipH)/2
	case PlacementBottom:
		x = trigger.X + (trigger.Width-tipW)/2
		y = trigger.Bottom() + offset
	case PlacementLeft:
		x = trigger.X - tipW - offset
		y = trigger.Y + (trigger.Height-tipH)/2
	default:
		x = trigger.X + (trigger.Width-tipW)/2
		y = trigger.Y - tipH - offset
	}

	if x+tipW > viewport.Right() {
		x = viewport.Right() - tipW - tooltipMargin
	}
	if y+tipH > viewport.Bottom() {
		y = viewport.Bottom() - tipH - tooltipMargin
	}
	if x < viewport.X {
		x = viewport.X + tooltipMargin
	}
	if y < viewport.Y {
		y = viewport.Y + tooltipMargin
	}
	return Vec2{X: x, Y: y}
}

// TooltipOptions configures a Tooltip. Zero delays use the 200ms default.
// Offset is used as given; DefaultTooltipOptions sets it to 8px.
type TooltipOptions struct {
	Placement Placement
	Offset    float64 // gap between trigger and tip; negative is treated as 0
	ShowDelay time.Duration
	HideDelay time.Duration
	// Interactive keeps the tooltip open while the pointer is over it.
	Interactive bool
	// Window is the viewport used for clamping.
	Window *Window
	// FadeDuration is the opacity transition length in seconds. Zero shows and
	// hides instantly.
	FadeDuration float32

	OnShow func(Vec2)
	OnHide func()
}

// DefaultTooltipOptions returns top placement with an 8px offset and 200ms
// show and hide delays.
func DefaultTooltipOptions() TooltipOptions {
	return TooltipOptions{
		Placement: PlacementTop,
		Offset:    defaultTooltipOffset,
		ShowDelay: defaultTooltipDelay,
		HideDelay: defaultTooltipDelay,
	}
}

// Tooltip shows a tip element next to a trigger element after a hover delay.
// The tip must already be attached to the tree and sized; it is hidden until
// shown.
type Tooltip struct {
	trigger *Element
	tip     *Element
	opts    TooltipOptions
	sched   *Scheduler

	showTimer TimerID
	hideTimer TimerID
	visible   bool
	pos       Vec2
	fade      *TweenGroup
	lsn       []ListenerHandle
}

// NewTooltip wires hover listeners on trigger (and tip, when interactive).
// Delays run on sched.
func NewTooltip(trigger, tip *Element, sched *Scheduler, opts TooltipOptions) *Tooltip {
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.ShowDelay <= 0 {
		opts.ShowDelay = defaultTooltipDelay
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = defaultTooltipDelay
	}
	t := &Tooltip{trigger: trigger, tip: tip, opts: opts, sched: sched}
	tip.Visible = false
	t.lsn = append(t.lsn,
		trigger.Listen(EventPointerEnter, func(*RawEvent) { t.scheduleShow() }),
		trigger.Listen(EventPointerLeave, func(*RawEvent) { t.scheduleHide() }),
	)
	if opts.Interactive {
		t.lsn = append(t.lsn,
			tip.Listen(EventPointerEnter, func(*RawEvent) { t.scheduleShow() }),
			tip.Listen(EventPointerLeave, func(*RawEvent) { t.scheduleHide() }),
		)
	}
	return t
}

// Visible reports whether the tooltip is shown (or fading in).
func (t *Tooltip) Visible() bool { return t.visible }

// Position returns the last computed top-left corner.
func (t *Tooltip) Position() Vec2 { return t.pos }

// scheduleShow arms the show delay and cancels a pending hide.
func (t *Tooltip) scheduleShow() {
	t.cancel(&t.hideTimer)
	if t.visible || t.sched.Pending(t.showTimer) {
		return
	}
	t.showTimer = t.sched.After(t.opts.ShowDelay, t.Show)
}

// scheduleHide arms the hide delay and cancels a pending show.
func (t *Tooltip) scheduleHide() {
	t.cancel(&t.showTimer)
	if !t.visible || t.sched.Pending(t.hideTimer) {
		return
	}
	t.hideTimer = t.sched.After(t.opts.HideDelay, t.Hide)
}

func (t *Tooltip) cancel(id *TimerID) {
	if *id != 0 {
		t.sched.Cancel(*id)
		*id = 0
	}
}

// Show positions and reveals the tooltip immediately.
func (t *Tooltip) Show() {
	t.cancel(&t.showTimer)
	t.cancel(&t.hideTimer)

	vp := t.opts.Window.Rect()
	if t.opts.Window == nil {
		vp = t.tip.Root().BoundingRect()
	}
	t.pos = PlaceTooltip(t.trigger.BoundingRect(), t.tip.Width, t.tip.Height,
		t.opts.Placement, t.opts.Offset, vp)
	t.tip.MoveTo(t.pos.X, t.pos.Y)
	if !t.tip.Visible && t.opts.FadeDuration > 0 {
		t.tip.Style.Opacity = 0
	}
	t.tip.Visible = true
	t.visible = true
	t.fadeTo(1)
	if t.opts.OnShow != nil {
		t.opts.OnShow(t.pos)
	}
}

// Hide starts hiding the tooltip immediately.
func (t *Tooltip) Hide() {
	t.cancel(&t.showTimer)
	t.cancel(&t.hideTimer)
	if !t.visible {
		return
	}
	t.visible = false
	t.fadeTo(0)
	if t.opts.OnHide != nil {
		t.opts.OnHide()
	}
}

func (t *Tooltip) fadeTo(opacity float64) {
	if t.opts.FadeDuration <= 0 {
		t.fade = nil
		t.tip.Style.Opacity = opacity
		t.tip.Visible = opacity > 0
		return
	}
	t.fade = TweenOpacity(t.tip, opacity, t.opts.FadeDuration, ease.OutQuad)
}

// Update advances the fade by dt seconds. Call once per frame.
func (t *Tooltip) Update(dt float32) {
	if t.fade == nil {
		return
	}
	t.fade.Update(dt)
	if t.fade.Done {
		t.fade = nil
		if !t.visible {
			t.tip.Visible = false
		}
	}
}

// Destroy cancels pending delays, removes listeners and hides the tip.
func (t *Tooltip) Destroy() {
	t.cancel(&t.showTimer)
	t.cancel(&t.hideTimer)
	for _, h := range t.lsn {
		h.Remove()
	}
	t.lsn = nil
	t.visible = false
	t.fade = nil
	t.tip.Visible = false
}
