package tactile

import (
	"testing"
)

func TestHoverEffectInstant(t *testing.T) {
	el := NewElement("card", "c", 0, 0, 10, 10)
	el.Style.Background = Color{R: 1, A: 1}
	original := el.Style
	h := NewHoverEffect(el, HoverOptions{Scale: 1.1, Glow: 4, Background: Color{B: 1, A: 1}})

	el.Dispatch(&RawEvent{Type: EventPointerEnter})
	if !h.Hovered() {
		t.Fatal("Hovered() = false after enter")
	}
	want := Style{Scale: 1.1, Glow: 4, Opacity: 1, Background: Color{B: 1, A: 1}}
	if el.Style != want {
		t.Errorf("hover style = %+v, want %+v", el.Style, want)
	}

	el.Dispatch(&RawEvent{Type: EventPointerLeave})
	if h.Hovered() || el.Style != original {
		t.Errorf("after leave style = %+v, want %+v", el.Style, original)
	}
}

func TestHoverEffectKeepsUnsetFields(t *testing.T) {
	el := NewElement("card", "c", 0, 0, 10, 10)
	el.Style.Scale = 2
	el.Style.Background = Color{G: 1, A: 1}
	NewHoverEffect(el, HoverOptions{Glow: 3})

	el.Dispatch(&RawEvent{Type: EventPointerEnter})
	if el.Style.Scale != 2 || el.Style.Background != (Color{G: 1, A: 1}) || el.Style.Glow != 3 {
		t.Errorf("style = %+v, want scale 2 green background glow 3", el.Style)
	}
}

func TestHoverEffectTransition(t *testing.T) {
	el := NewElement("card", "c", 0, 0, 10, 10)
	h := NewHoverEffect(el, HoverOptions{Scale: 2, Duration: 0.2})

	el.Dispatch(&RawEvent{Type: EventPointerEnter})
	if el.Style.Scale != 1 {
		t.Fatalf("Scale = %f before Update, want 1", el.Style.Scale)
	}
	h.Update(0.1)
	if el.Style.Scale <= 1 || el.Style.Scale >= 2 {
		t.Errorf("Scale mid-transition = %f, want between 1 and 2", el.Style.Scale)
	}

	// Leaving mid-transition heads back to the captured original.
	el.Dispatch(&RawEvent{Type: EventPointerLeave})
	h.Update(0.1)
	h.Update(0.1)
	if el.Style.Scale != 1 {
		t.Errorf("Scale after leave = %f, want 1", el.Style.Scale)
	}
}

func TestHoverEffectDestroyRestores(t *testing.T) {
	el := NewElement("card", "c", 0, 0, 10, 10)
	h := NewHoverEffect(el, HoverOptions{Scale: 1.5, Glow: 2})

	el.Dispatch(&RawEvent{Type: EventPointerEnter})
	h.Destroy()
	if el.Style != DefaultStyle {
		t.Errorf("style after Destroy = %+v, want %+v", el.Style, DefaultStyle)
	}
	if n := el.ListenerCount(EventPointerEnter); n != 0 {
		t.Errorf("enter listeners = %d, want 0", n)
	}

	el.Dispatch(&RawEvent{Type: EventPointerEnter})
	if el.Style != DefaultStyle {
		t.Error("hover applied after Destroy")
	}
}
