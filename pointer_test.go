package orbitfx

import "testing"

func TestNewPointerStartsOffscreen(t *testing.T) {
	p := NewPointer()
	if p.X != -1000 || p.Y != -1000 {
		t.Errorf("pointer = (%v, %v), want (-1000, -1000)", p.X, p.Y)
	}
	if p.Moved() {
		t.Error("fresh pointer should not report movement")
	}
}

func TestPointerMove(t *testing.T) {
	p := NewPointer()

	if !p.Move(10, 20) {
		t.Fatal("Move to a new position should report a change")
	}
	if !p.Moved() {
		t.Error("Moved should be true after Move")
	}
	if got := p.Position(); got != (Vec2{10, 20}) {
		t.Errorf("Position = %v, want {10 20}", got)
	}

	p.consumeMoved()
	if p.Moved() {
		t.Error("Moved should be false after consumeMoved")
	}

	if p.Move(10, 20) {
		t.Error("Move to the same position should not report a change")
	}
	if p.Moved() {
		t.Error("Moved should stay false for a no-op Move")
	}
}

func TestRectAroundContains(t *testing.T) {
	r := rectAround(Vec2{100, 50}, 40, 20)
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"center", 100, 50, true},
		{"left edge", 80, 50, true},
		{"bottom-right corner", 120, 60, true},
		{"outside left", 79, 50, false},
		{"outside below", 100, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}
