package orbitfx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Display-side transition timings.
const (
	StrokeRevealDuration = 650 * time.Millisecond
	CardRevealDuration   = 600 * time.Millisecond
	cardRiseDistance     = 20.0
)

// StrokeEase approximates the cubic-bezier(0.22, 0.61, 0.36, 1) ease-out
// used for the curve's stroke transition. It never overshoots, so a growing
// target yields a non-decreasing drawn length.
var StrokeEase ease.TweenFunc = ease.OutCubic

// seconds converts d to the float32 seconds gween works in.
func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; the group writes the eased values straight into the fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// NewTweenGroup creates a group that animates each field from its current
// value to the matching entry of to. Extra fields beyond four are ignored.
func NewTweenGroup(fields []*float64, to []float64, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	for i := 0; i < len(fields) && i < len(to) && i < len(g.tweens); i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), seconds(duration), fn)
		g.fields[i] = fields[i]
		g.count++
	}
	g.Done = g.count == 0
	return g
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// StrokeReveal eases the drawn length of the curve toward the length the
// choreographer last asked for.
type StrokeReveal struct {
	tween    *gween.Tween
	shown    float64
	target   float64
	duration time.Duration
}

// NewStrokeReveal returns a reveal with nothing drawn.
func NewStrokeReveal() *StrokeReveal {
	return &StrokeReveal{duration: StrokeRevealDuration}
}

// SetTarget starts a transition from the currently drawn length to l.
// Targets below the current target are ignored so the stroke never retracts.
func (r *StrokeReveal) SetTarget(l float64) {
	if l <= r.target {
		return
	}
	r.target = l
	r.tween = gween.New(float32(r.shown), float32(l), seconds(r.duration), StrokeEase)
}

// Update advances the transition by dt seconds.
func (r *StrokeReveal) Update(dt float32) {
	if r.tween == nil {
		return
	}
	val, finished := r.tween.Update(dt)
	if v := float64(val); v > r.shown {
		r.shown = min(v, r.target)
	}
	if finished {
		r.shown = r.target
		r.tween = nil
	}
}

// Length returns the currently drawn length.
func (r *StrokeReveal) Length() float64 {
	return r.shown
}

// Target returns the length the stroke is heading to.
func (r *StrokeReveal) Target() float64 {
	return r.target
}

// Done reports whether no transition is running.
func (r *StrokeReveal) Done() bool {
	return r.tween == nil
}

// cardFade is the display state of one card's reveal transition.
type cardFade struct {
	alpha float64
	rise  float64 // downward offset that eases to zero
	group *TweenGroup
}

// start begins the fade-in and slide-up.
func (f *cardFade) start() {
	f.alpha = 0
	f.rise = cardRiseDistance
	f.group = NewTweenGroup(
		[]*float64{&f.alpha, &f.rise},
		[]float64{1, 0},
		CardRevealDuration, ease.OutCubic,
	)
}

func (f *cardFade) update(dt float32) {
	if f.group != nil {
		f.group.Update(dt)
	}
}
