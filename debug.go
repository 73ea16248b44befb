package orbitfx

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is how many frames pass between timing lines.
const debugLogInterval = 60

// debugStats holds per-frame timing and workload metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	particles  int
	pending    int
	state      TimelineState
	reveal     float64
}

// debugLog prints timing and workload stats to stderr every debugLogInterval frames.
func (s *Scene) debugLog() {
	if !s.debug || s.frames%debugLogInterval != 0 {
		return
	}
	st := s.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[orbitfx] update: %v | draw: %v | total: %v\n",
		st.updateTime, st.drawTime, st.updateTime+st.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[orbitfx] particles: %d | timeline: %s | pending: %d | reveal: %.0f%%\n",
		st.particles, st.state, st.pending, st.reveal*100)
}

// debugf prints a single debug line to stderr when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[orbitfx] "+format+"\n", args...)
}

// collectStats fills the workload half of s.stats.
func (s *Scene) collectStats() {
	if s.field != nil {
		s.stats.particles = s.field.Len()
	}
	if s.timeline != nil {
		s.stats.state = s.timeline.State()
		s.stats.pending = s.timeline.PendingTasks()
		s.stats.reveal = s.timeline.RevealFraction()
	}
}
