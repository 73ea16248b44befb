package orbitfx

import (
	"fmt"
	"time"
)

// Reveal choreography timings.
const (
	DefaultStagger   = 800 * time.Millisecond // between consecutive anchors
	DefaultPathDelay = 150 * time.Millisecond // card reveal → path extend
	DefaultNodeDelay = 300 * time.Millisecond // card reveal → node activate
)

// Card layout defaults, in section units.
const (
	DefaultCardWidth  = 180.0
	DefaultCardHeight = 96.0

	cardTopPercent    = 25.0
	cardBottomPercent = 75.0

	cardDriftX = 4.0 // max ambient horizontal offset, sign alternates per card
	cardDriftY = 2.0 // max ambient vertical offset
)

// TimelineState is the reveal state of a Timeline.
type TimelineState uint8

const (
	TimelineIdle      TimelineState = iota // waiting for the section to become visible
	TimelineRevealing                      // staged reveal in progress
	TimelineComplete                       // every anchor revealed; terminal
)

// String returns the state name.
func (s TimelineState) String() string {
	switch s {
	case TimelineIdle:
		return "idle"
	case TimelineRevealing:
		return "revealing"
	case TimelineComplete:
		return "complete"
	default:
		return fmt.Sprintf("TimelineState(%d)", s)
	}
}

// timelineTransitions lists the only legal state changes.
var timelineTransitions = map[TimelineState]TimelineState{
	TimelineIdle:      TimelineRevealing,
	TimelineRevealing: TimelineComplete,
}

// Milestone is the content of one timeline card.
type Milestone struct {
	Title string
	Body  string
}

// TimelineConfig configures a Timeline. Zero durations and sizes take the
// package defaults.
type TimelineConfig struct {
	Milestones []Milestone
	Space      CurveSpace
	Stagger    time.Duration
	PathDelay  time.Duration
	NodeDelay  time.Duration
	CardWidth  float64
	CardHeight float64
	// MarkerEasing is the per-frame easing fraction of the energy marker.
	MarkerEasing float64
}

func (c *TimelineConfig) applyDefaults() {
	c.Space = c.Space.orDefault()
	if c.Stagger <= 0 {
		c.Stagger = DefaultStagger
	}
	if c.PathDelay <= 0 {
		c.PathDelay = DefaultPathDelay
	}
	if c.NodeDelay <= 0 {
		c.NodeDelay = DefaultNodeDelay
	}
	if c.CardWidth <= 0 {
		c.CardWidth = DefaultCardWidth
	}
	if c.CardHeight <= 0 {
		c.CardHeight = DefaultCardHeight
	}
	if c.MarkerEasing <= 0 {
		c.MarkerEasing = DefaultMarkerEasing
	}
}

// Card is the layout and reveal state of one milestone card. Center is in
// section-local coordinates; Offset is the ambient pointer drift on top of it.
type Card struct {
	Index     int
	Lane      Lane
	Milestone Milestone
	Center    Vec2
	Offset    Vec2
	Revealed  bool
}

// Timeline choreographs the orbit section: it owns the anchor layout, the
// curve through the anchors, the staged reveal and the energy marker.
//
// The reveal starts once, on the first Trigger. For each anchor i three
// tasks are queued relative to that moment: the card is revealed at
// i·Stagger, the drawn curve extends to the anchor at i·Stagger+PathDelay,
// and the node activates and the marker retargets at i·Stagger+NodeDelay.
// The last node activation completes the timeline.
//
// Queued tasks are not canceled if the section later scrolls out of view.
type Timeline struct {
	config  TimelineConfig
	anchors []AnchorNode
	curve   *Curve
	samples []CurveSample

	state   TimelineState
	sched   Scheduler
	pending []TaskHandle

	cards         []Card
	nodeActive    []bool
	revealLength  float64
	marker        EnergyMarker
	markerVisible bool
	laidOut       bool

	section       Rect
	pointerInside bool
	hovered       int

	// OnStateChange is called after every state transition.
	OnStateChange func(from, to TimelineState)
	// OnCardRevealed is called when card i becomes visible.
	OnCardRevealed func(i int)
	// OnRevealLength is called when the drawn curve length target grows.
	OnRevealLength func(length float64)
	// OnNodeActive is called when node i activates.
	OnNodeActive func(i int)
}

// NewTimeline builds the anchors, curve and per-anchor samples for cfg and
// parks the energy marker on the first anchor. The section defaults to the
// curve space at the origin until SetSection is called.
func NewTimeline(cfg TimelineConfig) *Timeline {
	cfg.applyDefaults()
	n := len(cfg.Milestones)

	t := &Timeline{
		config:     cfg,
		anchors:    cfg.Space.Anchors(n),
		nodeActive: make([]bool, n),
		cards:      make([]Card, n),
		hovered:    -1,
		section:    Rect{Width: cfg.Space.Width, Height: cfg.Space.Height},
	}
	t.curve = BuildCurve(t.anchors, cfg.Space)
	t.samples = Sample(t.curve, n)
	t.marker.Easing = cfg.MarkerEasing
	if len(t.samples) > 0 {
		t.marker.Snap(t.samples[0].Point)
	}
	for i := range t.cards {
		t.cards[i] = Card{Index: i, Lane: laneFor(i), Milestone: cfg.Milestones[i]}
	}
	return t
}

// State returns the current reveal state.
func (t *Timeline) State() TimelineState { return t.state }

// Config returns the timeline's resolved configuration.
func (t *Timeline) Config() TimelineConfig { return t.config }

// Anchors returns the anchor layout. The returned slice MUST NOT be mutated.
func (t *Timeline) Anchors() []AnchorNode { return t.anchors }

// Curve returns the curve through the anchors. It is empty for fewer than two anchors.
func (t *Timeline) Curve() *Curve { return t.curve }

// Samples returns one curve sample per anchor. The returned slice MUST NOT be mutated.
func (t *Timeline) Samples() []CurveSample { return t.samples }

// Cards returns the card states. The returned slice MUST NOT be mutated.
func (t *Timeline) Cards() []Card { return t.cards }

// NodeActive reports whether node i has activated.
func (t *Timeline) NodeActive(i int) bool {
	return i >= 0 && i < len(t.nodeActive) && t.nodeActive[i]
}

// RevealLength returns the length of curve that should be drawn.
func (t *Timeline) RevealLength() float64 { return t.revealLength }

// RevealFraction returns RevealLength as a fraction of the curve length.
func (t *Timeline) RevealFraction() float64 {
	total := t.curve.TotalLength()
	if total <= 0 {
		return 0
	}
	return t.revealLength / total
}

// Marker returns the energy marker.
func (t *Timeline) Marker() EnergyMarker { return t.marker }

// MarkerVisible reports whether the marker should be drawn. It shows once the
// reveal starts.
func (t *Timeline) MarkerVisible() bool { return t.markerVisible }

// Section returns the on-screen rectangle of the timeline section.
func (t *Timeline) Section() Rect { return t.section }

// Elapsed returns the time since construction on the timeline's clock.
func (t *Timeline) Elapsed() time.Duration { return t.sched.Now() }

// PendingTasks returns the number of queued reveal tasks.
func (t *Timeline) PendingTasks() int { return t.sched.Pending() }

// HoveredCard returns the index of the revealed card under the pointer, or -1.
func (t *Timeline) HoveredCard() int { return t.hovered }

// transition moves to the given state if the transition table allows it.
func (t *Timeline) transition(to TimelineState) bool {
	if next, ok := timelineTransitions[t.state]; !ok || next != to {
		return false
	}
	from := t.state
	t.state = to
	if t.OnStateChange != nil {
		t.OnStateChange(from, to)
	}
	return true
}

// Trigger is the visibility-crossing signal. The first call starts the reveal
// and returns true; every later call is a no-op.
func (t *Timeline) Trigger() bool {
	if !t.transition(TimelineRevealing) {
		return false
	}
	t.layoutCards()
	t.markerVisible = true

	n := len(t.samples)
	if n < 2 {
		t.transition(TimelineComplete)
		return true
	}

	t.pending = t.pending[:0]
	for i := 0; i < n; i++ {
		start := time.Duration(i) * t.config.Stagger
		t.pending = append(t.pending,
			t.sched.After(start, func() { t.revealCard(i) }),
			t.sched.After(start+t.config.PathDelay, func() { t.extendPath(i) }),
			t.sched.After(start+t.config.NodeDelay, func() { t.activateNode(i, i == n-1) }),
		)
	}
	return true
}

func (t *Timeline) revealCard(i int) {
	t.cards[i].Revealed = true
	if t.OnCardRevealed != nil {
		t.OnCardRevealed(i)
	}
}

func (t *Timeline) extendPath(i int) {
	l := t.samples[i].Length
	if l <= t.revealLength {
		return
	}
	t.revealLength = l
	if t.OnRevealLength != nil {
		t.OnRevealLength(l)
	}
}

func (t *Timeline) activateNode(i int, last bool) {
	t.nodeActive[i] = true
	t.marker.Retarget(t.samples[i].Point)
	if t.OnNodeActive != nil {
		t.OnNodeActive(i)
	}
	if last {
		t.pending = t.pending[:0]
		t.transition(TimelineComplete)
	}
}

// CancelPending drops every queued reveal task and returns how many were
// dropped. The state is left as is; nothing in the package calls this when
// the section leaves view.
func (t *Timeline) CancelPending() int {
	n := 0
	for _, h := range t.pending {
		if t.sched.Cancel(h) {
			n++
		}
	}
	t.pending = t.pending[:0]
	return n
}

// Update advances the reveal clock by dt and runs any reveal tasks that came due.
func (t *Timeline) Update(dt time.Duration) {
	t.sched.Advance(dt)
}

// Step advances the energy marker one frame. It runs in every state.
func (t *Timeline) Step() {
	t.marker.Step()
}

// SetSection places the section on screen. Cards are re-laid out when the
// size changes after the reveal has started.
func (t *Timeline) SetSection(r Rect) {
	resized := r.Width != t.section.Width || r.Height != t.section.Height
	t.section = r
	if resized && t.laidOut {
		t.layoutCards()
	}
}

// layoutCards places cards on alternating lanes at the anchor columns.
func (t *Timeline) layoutCards() {
	for i := range t.cards {
		c := &t.cards[i]
		yPct := cardTopPercent
		if c.Lane == LaneBottom {
			yPct = cardBottomPercent
		}
		c.Center = Vec2{
			X: anchorXPercent(i) * t.section.Width / 100,
			Y: yPct * t.section.Height / 100,
		}
	}
	t.laidOut = true
}

// CardRect returns card i's screen rectangle including its ambient offset.
// It is also the card's hover area.
func (t *Timeline) CardRect(i int) Rect {
	c := t.cards[i]
	center := Vec2{t.section.X, t.section.Y}.Add(c.Center).Add(c.Offset)
	return rectAround(center, t.config.CardWidth, t.config.CardHeight)
}

// PointerMoved is the pointer-move signal. Once the reveal has started, every
// move drifts each revealed card not under the pointer with the pointer's
// normalized position within the viewport: up to ±4 horizontally, alternating
// direction per card, and ±2 vertically. The move that leaves the section
// returns those cards to rest instead.
func (t *Timeline) PointerMoved(p *Pointer, viewport Vec2) {
	if t.state == TimelineIdle || p == nil {
		return
	}

	t.hovered = -1
	for i := range t.cards {
		if !t.cards[i].Revealed {
			continue
		}
		if t.CardRect(i).Contains(p.X, p.Y) {
			t.hovered = i
			break
		}
	}

	inside := t.section.Contains(p.X, p.Y)
	wasInside := t.pointerInside
	t.pointerInside = inside

	if wasInside && !inside {
		t.restCards()
		return
	}
	if viewport.X <= 0 || viewport.Y <= 0 {
		return
	}

	xPct := (p.X/viewport.X - 0.5) * 2
	yPct := (p.Y/viewport.Y - 0.5) * 2
	for i := range t.cards {
		c := &t.cards[i]
		if !c.Revealed || i == t.hovered {
			continue
		}
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		c.Offset = Vec2{X: xPct * cardDriftX * dir, Y: yPct * cardDriftY}
	}
}

// restCards clears the ambient offset of every revealed card not under the pointer.
func (t *Timeline) restCards() {
	for i := range t.cards {
		if t.cards[i].Revealed && i != t.hovered {
			t.cards[i].Offset = Vec2{}
		}
	}
}
