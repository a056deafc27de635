package tactile

import "testing"

func TestElementTreeBasics(t *testing.T) {
	root := NewElement("root", "root", 0, 0, 100, 100)
	a := NewElement("div", "a", 10, 10, 50, 50)
	b := NewElement("div", "b", 5, 5, 10, 10)
	root.AppendChild(a)
	a.AppendChild(b)

	if b.Root() != root {
		t.Error("b.Root() != root")
	}
	if !root.IsAncestorOf(b) || b.IsAncestorOf(root) {
		t.Error("IsAncestorOf mismatch")
	}
	if got := b.BoundingRect(); got != (Rect{X: 15, Y: 15, Width: 10, Height: 10}) {
		t.Errorf("BoundingRect = %+v, want {15 15 10 10}", got)
	}

	b.MoveTo(40, 30)
	if b.X != 30 || b.Y != 20 {
		t.Errorf("local after MoveTo = (%v, %v), want (30, 20)", b.X, b.Y)
	}

	// Reparenting detaches from the old parent.
	root.AppendChild(b)
	if len(a.Children()) != 0 || b.Parent != root {
		t.Error("AppendChild did not reparent")
	}
	root.RemoveChild(b)
	if b.Parent != nil || len(root.Children()) != 1 {
		t.Error("RemoveChild did not detach")
	}
}

func TestElementAppendCyclePanics(t *testing.T) {
	a := NewElement("div", "a", 0, 0, 1, 1)
	b := NewElement("div", "b", 0, 0, 1, 1)
	a.AppendChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for cycle")
		}
	}()
	b.AppendChild(a)
}

func TestElementHitTest(t *testing.T) {
	root := NewElement("root", "root", 0, 0, 200, 200)
	bottom := NewElement("div", "bottom", 0, 0, 100, 100)
	top := NewElement("div", "top", 50, 50, 100, 100)
	hidden := NewElement("div", "hidden", 0, 0, 200, 200)
	hidden.Visible = false
	group := NewElement("g", "group", 150, 0, 0, 0)
	leaf := NewElement("div", "leaf", 0, 150, 20, 20)
	root.AppendChild(bottom)
	root.AppendChild(top)
	root.AppendChild(hidden)
	root.AppendChild(group)
	group.AppendChild(leaf)

	tests := []struct {
		name string
		x, y float64
		want *Element
	}{
		{"only bottom", 10, 10, bottom},
		{"overlap picks last appended", 75, 75, top},
		{"zero-size group skipped but child hit", 160, 160, leaf},
		{"empty area hits root", 190, 10, root},
		{"outside", 500, 500, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := root.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, name(got), name(tt.want))
			}
		})
	}
}

func name(e *Element) string {
	if e == nil {
		return "<nil>"
	}
	return e.Name
}

func TestElementDispatchBubbling(t *testing.T) {
	root := NewElement("root", "root", 0, 0, 100, 100)
	mid := NewElement("div", "mid", 0, 0, 50, 50)
	leaf := NewElement("div", "leaf", 0, 0, 10, 10)
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	var path []string
	for _, e := range []*Element{root, mid, leaf} {
		e := e
		e.Listen(EventPointerDown, func(ev *RawEvent) {
			if ev.Target != leaf || ev.CurrentTarget != e {
				t.Errorf("Target/CurrentTarget = %s/%s at %s", name(ev.Target), name(ev.CurrentTarget), e.Name)
			}
			path = append(path, e.Name)
		})
		e.Listen(EventPointerEnter, func(*RawEvent) { path = append(path, "enter:"+e.Name) })
	}

	leaf.Dispatch(&RawEvent{Type: EventPointerDown})
	leaf.Dispatch(&RawEvent{Type: EventPointerEnter})

	want := []string{"leaf", "mid", "root", "enter:leaf"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestElementStopPropagation(t *testing.T) {
	root := NewElement("root", "root", 0, 0, 100, 100)
	leaf := NewElement("div", "leaf", 0, 0, 10, 10)
	root.AppendChild(leaf)

	var rootCalls, siblingCalls int
	leaf.Listen(EventWheel, func(ev *RawEvent) { ev.StopPropagation() })
	leaf.Listen(EventWheel, func(*RawEvent) { siblingCalls++ })
	root.Listen(EventWheel, func(*RawEvent) { rootCalls++ })

	leaf.Dispatch(&RawEvent{Type: EventWheel})
	if siblingCalls != 1 {
		t.Errorf("same-element listener calls = %d, want 1", siblingCalls)
	}
	if rootCalls != 0 {
		t.Errorf("ancestor calls = %d, want 0", rootCalls)
	}
}

func TestListenerHandleRemove(t *testing.T) {
	e := NewElement("div", "e", 0, 0, 10, 10)
	var calls int
	var h ListenerHandle
	h = e.Listen(EventPointerUp, func(*RawEvent) {
		calls++
		h.Remove()
	})
	e.Listen(EventPointerUp, func(*RawEvent) { calls++ })

	e.Dispatch(&RawEvent{Type: EventPointerUp})
	e.Dispatch(&RawEvent{Type: EventPointerUp})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if n := e.ListenerCount(EventPointerUp); n != 1 {
		t.Errorf("ListenerCount = %d, want 1", n)
	}
	h.Remove()
	ListenerHandle{}.Remove()
}

func TestElementAttrs(t *testing.T) {
	e := NewElement("div", "e", 0, 0, 10, 10)
	if _, ok := e.Attr("data-x"); ok {
		t.Error("unset attr reported present")
	}
	e.SetAttr("data-x", "1")
	if v, ok := e.Attr("data-x"); !ok || v != "1" {
		t.Errorf("Attr = %q, %v; want 1, true", v, ok)
	}
	e.RemoveAttr("data-x")
	e.RemoveAttr("data-x")
	if _, ok := e.Attr("data-x"); ok {
		t.Error("attr still present after RemoveAttr")
	}
}
