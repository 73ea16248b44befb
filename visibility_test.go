package orbitfx

import "testing"

func TestVisibleFraction(t *testing.T) {
	viewport := Rect{Width: 800, Height: 600}
	tests := []struct {
		name   string
		target Rect
		want   float64
	}{
		{"fully inside", Rect{X: 100, Y: 100, Width: 200, Height: 200}, 1},
		{"below", Rect{Y: 700, Width: 800, Height: 500}, 0},
		{"top 40%", Rect{Y: 400, Width: 800, Height: 500}, 0.4},
		{"straddles top", Rect{Y: -250, Width: 800, Height: 500}, 0.5},
		{"empty", Rect{X: 10, Y: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "fraction", VisibleFraction(tt.target, viewport), tt.want)
		})
	}
}

func TestObserverFiresOnCrossing(t *testing.T) {
	var calls []float64
	o := NewVisibilityObserver(0.4, func(f float64) { calls = append(calls, f) })
	viewport := Rect{Width: 800, Height: 600}

	// Scroll the section up into view 50 units at a time.
	for y := 800.0; y >= 0; y -= 50 {
		o.Observe(Rect{Y: y, Width: 800, Height: 500}, viewport)
	}
	if len(calls) != 1 {
		t.Fatalf("fired %d times, want 1", len(calls))
	}
	if calls[0] < 0.4 {
		t.Errorf("fired at fraction %v, below threshold", calls[0])
	}
}

func TestObserverRearmsBelowThreshold(t *testing.T) {
	fired := 0
	o := NewVisibilityObserver(0.4, func(float64) { fired++ })
	viewport := Rect{Width: 800, Height: 600}
	visible := Rect{Y: 100, Width: 800, Height: 500}
	hidden := Rect{Y: 1000, Width: 800, Height: 500}

	o.Observe(visible, viewport)
	o.Observe(visible, viewport)
	o.Observe(hidden, viewport)
	if o.Fraction() != 0 {
		t.Errorf("Fraction = %v, want 0", o.Fraction())
	}
	o.Observe(visible, viewport)
	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
}

func TestObserverDefaultThreshold(t *testing.T) {
	for _, th := range []float64{0, -1, 1.5} {
		if o := NewVisibilityObserver(th, nil); o.Threshold != DefaultVisibilityThreshold {
			t.Errorf("threshold %v → %v, want default", th, o.Threshold)
		}
	}
	o := NewVisibilityObserver(0, nil)
	if !o.Observe(Rect{Width: 10, Height: 10}, Rect{Width: 10, Height: 10}) {
		t.Error("nil callback should still report the crossing")
	}
}
