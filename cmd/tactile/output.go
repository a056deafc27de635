package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phanxgames/tactile"
)

// eventRecord is the JSON line printed for each interaction event.
type eventRecord struct {
	Kind       string  `json:"kind"`
	Target     string  `json:"target"`
	TargetType string  `json:"targetType"`
	Source     string  `json:"source"`
	AtMS       int64   `json:"atMs"`
	Pointer    string  `json:"pointer"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	State      string  `json:"state,omitempty"`
	DX         float64 `json:"dx,omitempty"`
	DY         float64 `json:"dy,omitempty"`
	Distance   float64 `json:"distance,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	PanX       float64 `json:"panX,omitempty"`
	PanY       float64 `json:"panY,omitempty"`
	DurationMS int64   `json:"durationMs,omitempty"`
	DoubleTap  bool    `json:"doubleTap,omitempty"`
	LongPress  bool    `json:"longPress,omitempty"`
}

func newEventRecord(ev tactile.InteractionEvent, start time.Time) eventRecord {
	p := ev.Payload
	r := eventRecord{
		Kind:       ev.Kind.String(),
		Target:     ev.TargetID,
		TargetType: ev.TargetType,
		Source:     ev.Source.String(),
		AtMS:       ev.Timestamp.Sub(start).Milliseconds(),
		Pointer:    p.PointerType.String(),
		X:          p.X,
		Y:          p.Y,
		DX:         p.DX,
		DY:         p.DY,
		Distance:   p.Distance,
		Scale:      p.Scale,
		PanX:       p.PanX,
		PanY:       p.PanY,
		DurationMS: p.Duration.Milliseconds(),
		DoubleTap:  p.DoubleTap,
		LongPress:  p.LongPress,
	}
	if ev.Kind == tactile.KindDrag {
		r.State = p.State.String()
	}
	return r
}

// writeJSONLine writes v as compact JSON followed by a newline.
func writeJSONLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// outputError writes an error message to stderr.
func outputError(err error) {
	fmt.Fprintf(os.Stderr, "tactile: %v\n", err)
}
