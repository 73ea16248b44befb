package orbitfx

// syntheticKind tags an injected input event.
type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticScroll
)

// syntheticEvent is a single injected input event. Move events carry screen
// coordinates (what a screenshot shows); scroll events carry a page delta.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	dy   float64
}

// InjectMove queues a pointer move to the given screen coordinates. The event
// is consumed on the next frame's Update instead of real cursor input.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectScroll queues a page scroll by dy page units (positive scrolls down).
func (s *Scene) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticScroll, dy: dy})
}

// InjectGlide queues a pointer path from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames moves, one per frame. Minimum frames is 1.
func (s *Scene) InjectGlide(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		s.pointer.Move(evt.x, evt.y)
	case syntheticScroll:
		s.ScrollBy(evt.dy)
	}
	return true
}
