package tactile

import "github.com/tanema/gween/ease"

// HoverOptions describes the style applied while the pointer is over an
// element. Zero Scale keeps the element's scale; a zero Background keeps its
// background.
type HoverOptions struct {
	Scale      float64
	Glow       float64
	Background Color
	// Duration is the transition length in seconds. Zero applies instantly.
	Duration float32
	Ease     ease.TweenFunc
}

// HoverEffect toggles a hover style on pointer enter/leave and restores the
// original style on leave and on Destroy.
type HoverEffect struct {
	el       *Element
	opts     HoverOptions
	original Style
	hovered  bool
	tween    *TweenGroup
	lsn      []ListenerHandle
}

// NewHoverEffect attaches enter/leave listeners to el.
func NewHoverEffect(el *Element, opts HoverOptions) *HoverEffect {
	if opts.Ease == nil {
		opts.Ease = ease.OutQuad
	}
	h := &HoverEffect{el: el, opts: opts, original: el.Style}
	h.lsn = []ListenerHandle{
		el.Listen(EventPointerEnter, func(*RawEvent) { h.enter() }),
		el.Listen(EventPointerLeave, func(*RawEvent) { h.leave() }),
	}
	return h
}

// Hovered reports whether the pointer is over the element.
func (h *HoverEffect) Hovered() bool { return h.hovered }

func (h *HoverEffect) enter() {
	if h.hovered {
		return
	}
	h.hovered = true
	if h.tween == nil {
		h.original = h.el.Style
	}
	to := h.original
	if h.opts.Scale != 0 {
		to.Scale = h.opts.Scale
	}
	to.Glow = h.opts.Glow
	if h.opts.Background != ColorTransparent {
		to.Background = h.opts.Background
	}
	h.apply(to)
}

func (h *HoverEffect) leave() {
	if !h.hovered {
		return
	}
	h.hovered = false
	h.apply(h.original)
}

func (h *HoverEffect) apply(to Style) {
	if h.opts.Duration <= 0 {
		h.tween = nil
		h.el.Style = to
		return
	}
	h.tween = TweenStyle(h.el, to, h.opts.Duration, h.opts.Ease)
}

// Update advances the transition by dt seconds. Call once per frame.
func (h *HoverEffect) Update(dt float32) {
	if h.tween == nil {
		return
	}
	h.tween.Update(dt)
	if h.tween.Done {
		h.tween = nil
	}
}

// Destroy removes the listeners and restores the original style.
func (h *HoverEffect) Destroy() {
	for _, l := range h.lsn {
		l.Remove()
	}
	h.lsn = nil
	if h.hovered || h.tween != nil {
		h.el.Style = h.original
	}
	h.tween = nil
	h.hovered = false
}
