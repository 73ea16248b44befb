package orbitfx

// pointerOffscreen is the initial coordinate of a Pointer, far enough outside
// any canvas that no particle starts inside the repulsion radius.
const pointerOffscreen = -1000

// Pointer is the latest pointer position in viewport coordinates.
//
// A Pointer has a single writer (the pointer-move handler, which calls Move)
// and is shared by reference with the particle field and the timeline, which
// only read it. All access happens on the game loop goroutine, so no lock is
// taken; code that moves it across goroutines must add its own.
type Pointer struct {
	X, Y float64

	moved bool
}

// NewPointer returns a Pointer parked off-canvas.
func NewPointer() *Pointer {
	return &Pointer{X: pointerOffscreen, Y: pointerOffscreen}
}

// Move records a new pointer position. It reports whether the position changed.
func (p *Pointer) Move(x, y float64) bool {
	if x == p.X && y == p.Y {
		return false
	}
	p.X, p.Y = x, y
	p.moved = true
	return true
}

// Moved reports whether Move changed the position since the last call to
// consumeMoved.
func (p *Pointer) Moved() bool {
	return p.moved
}

// consumeMoved clears the moved flag. Called once per frame by the scene
// after pointer-move listeners have run.
func (p *Pointer) consumeMoved() {
	p.moved = false
}

// Position returns the pointer as a Vec2.
func (p *Pointer) Position() Vec2 {
	return Vec2{p.X, p.Y}
}
