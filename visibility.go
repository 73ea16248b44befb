package orbitfx

// DefaultVisibilityThreshold is the visible fraction of the timeline section
// at which the reveal starts.
const DefaultVisibilityThreshold = 0.4

// VisibilityObserver watches what fraction of a target rectangle lies inside
// the viewport and calls OnVisible each time that fraction rises to or past
// Threshold. It fires on the crossing only: staying above the threshold does
// not fire again, dropping below re-arms it.
type VisibilityObserver struct {
	Threshold float64
	OnVisible func(fraction float64)

	above    bool
	fraction float64
}

// NewVisibilityObserver returns an observer with the given threshold.
// A threshold outside (0, 1] uses DefaultVisibilityThreshold.
func NewVisibilityObserver(threshold float64, onVisible func(float64)) *VisibilityObserver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	return &VisibilityObserver{Threshold: threshold, OnVisible: onVisible}
}

// VisibleFraction returns the share of target's area that lies inside viewport.
// An empty target is never visible.
func VisibleFraction(target, viewport Rect) float64 {
	area := target.Area()
	if area <= 0 {
		return 0
	}
	return clamp01(target.Intersection(viewport).Area() / area)
}

// Observe recomputes visibility and reports whether OnVisible fired.
func (o *VisibilityObserver) Observe(target, viewport Rect) bool {
	o.fraction = VisibleFraction(target, viewport)
	above := o.fraction >= o.Threshold && o.fraction > 0
	fired := above && !o.above
	o.above = above
	if fired && o.OnVisible != nil {
		o.OnVisible(o.fraction)
	}
	return fired
}

// Fraction returns the visible fraction from the last Observe call.
func (o *VisibilityObserver) Fraction() float64 {
	return o.fraction
}
