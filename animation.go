package tactile

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 7

// TweenGroup animates up to seven float64 style fields on an Element
// simultaneously. Create one via TweenStyle or TweenOpacity and call
// Update(dt) each frame; values are written to the element as they change.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	fields [maxTweenFields]*float64
	ends   [maxTweenFields]float64
	count  int
	Done   bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.ends[g.count] = to
	g.count++
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// Finish jumps every field to its end value.
func (g *TweenGroup) Finish() {
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.ends[i]
	}
	g.Done = true
}

// TweenStyle creates a TweenGroup that animates el's scale, glow, opacity and
// background color to the values in to.
func TweenStyle(el *Element, to Style, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&el.Style.Scale, to.Scale, duration, fn)
	g.add(&el.Style.Glow, to.Glow, duration, fn)
	g.add(&el.Style.Opacity, to.Opacity, duration, fn)
	g.add(&el.Style.Background.R, to.Background.R, duration, fn)
	g.add(&el.Style.Background.G, to.Background.G, duration, fn)
	g.add(&el.Style.Background.B, to.Background.B, duration, fn)
	g.add(&el.Style.Background.A, to.Background.A, duration, fn)
	return g
}

// TweenOpacity creates a TweenGroup that animates el's opacity.
func TweenOpacity(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&el.Style.Opacity, to, duration, fn)
	return g
}
