package orbitfx

import "math"

// DefaultMarkerEasing is the fraction of the remaining distance the energy
// marker covers each frame.
const DefaultMarkerEasing = 0.08

// EnergyMarker is the dot that travels along the timeline curve toward the
// most recently activated anchor. It converges exponentially and never
// reaches its target exactly; use Settled to test for arrival.
type EnergyMarker struct {
	Current Vec2
	Target  Vec2
	// Easing is the per-frame fraction in (0, 1]. Zero means DefaultMarkerEasing.
	Easing float64
}

// Snap places the marker at v with no pending motion.
func (m *EnergyMarker) Snap(v Vec2) {
	m.Current = v
	m.Target = v
}

// Retarget sets a new destination without moving the marker.
func (m *EnergyMarker) Retarget(v Vec2) {
	m.Target = v
}

// Step advances the marker one frame toward its target.
func (m *EnergyMarker) Step() {
	k := m.Easing
	if k <= 0 {
		k = DefaultMarkerEasing
	}
	m.Current.X = lerp(m.Current.X, m.Target.X, k)
	m.Current.Y = lerp(m.Current.Y, m.Target.Y, k)
}

// Distance returns the remaining distance to the target.
func (m *EnergyMarker) Distance() float64 {
	return math.Hypot(m.Target.X-m.Current.X, m.Target.Y-m.Current.Y)
}

// Settled reports whether the marker is within eps of its target.
func (m *EnergyMarker) Settled(eps float64) bool {
	return m.Distance() <= eps
}
