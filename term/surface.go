// Package term draws orbitfx scenes onto a terminal through tcell.
//
// The canvas is measured in the same units as an ebiten viewport; each
// terminal cell covers CellWidth × CellHeight of those units. Opacity is
// approximated by blending the draw color toward the background color, since
// cells cannot be partially transparent.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/orbitfx"
)

// Default cell metrics, roughly the aspect of a monospace terminal cell.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Surface is an orbitfx.LineSurface backed by a tcell.Screen.
type Surface struct {
	screen tcell.Screen

	CellWidth, CellHeight float64
	// Background is the color every cell is cleared to and the color
	// translucent draws blend toward.
	Background orbitfx.Color
}

// NewSurface wraps screen with the default cell metrics and a black background.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		screen:     screen,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Background: orbitfx.Color{A: 1},
	}
}

// Screen returns the wrapped screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Size implements orbitfx.Surface.
func (s *Surface) Size() (w, h float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

// Clear implements orbitfx.Surface.
func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.tcellColor(s.Background)))
}

// FillDisc implements orbitfx.Surface. Discs smaller than a cell become a
// single dot glyph sized by radius; larger discs fill every cell whose
// center they cover.
func (s *Surface) FillDisc(x, y, radius float64, c orbitfx.Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	if radius < s.CellWidth {
		s.set(s.cell(x, y), dotGlyph(radius), c)
		return
	}

	glyph := '█'
	if c.A < 0.5 {
		glyph = '░'
	}
	c0x, c0y := s.cell(x-radius, y-radius).xy()
	c1x, c1y := s.cell(x+radius, y+radius).xy()
	for cy := c0y; cy <= c1y; cy++ {
		for cx := c0x; cx <= c1x; cx++ {
			mx := (float64(cx) + 0.5) * s.CellWidth
			my := (float64(cy) + 0.5) * s.CellHeight
			if math.Hypot(mx-x, my-y) <= radius {
				s.set(cellPos{cx, cy}, glyph, c)
			}
		}
	}
}

// StrokeLine implements orbitfx.LineSurface. The segment is walked one cell
// at a time with a glyph chosen from its on-screen slope.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c orbitfx.Color) {
	if c.A <= 0 {
		return
	}
	a, b := s.cell(x0, y0), s.cell(x1, y1)
	glyph := lineGlyph((x1-x0)/s.CellWidth, (y1-y0)/s.CellHeight)
	dx, dy := b.x-a.x, b.y-a.y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		s.set(a, glyph, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.set(cellPos{
			a.x + int(math.Round(float64(dx)*t)),
			a.y + int(math.Round(float64(dy)*t)),
		}, glyph, c)
	}
}

// FillRect implements orbitfx.LineSurface by painting cell backgrounds.
func (s *Surface) FillRect(r orbitfx.Rect, c orbitfx.Color) {
	if c.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	bg := s.tcellColor(c)
	c0x, c0y := s.cell(r.X, r.Y).xy()
	c1x, c1y := s.cell(r.X+r.Width, r.Y+r.Height).xy()
	for cy := c0y; cy < c1y; cy++ {
		for cx := c0x; cx < c1x; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// Text writes str starting at canvas point (x, y), keeping the background of
// the cells it covers.
func (s *Surface) Text(x, y float64, str string, c orbitfx.Color) {
	if c.A <= 0 {
		return
	}
	p := s.cell(x, y)
	fg := s.tcellColor(c)
	for i, r := range []rune(str) {
		cx := p.x + i
		_, _, st, _ := s.screen.GetContent(cx, p.y)
		s.screen.SetContent(cx, p.y, r, nil, st.Foreground(fg))
	}
}

// Show flushes pending draws to the terminal.
func (s *Surface) Show() {
	s.screen.Show()
}

type cellPos struct{ x, y int }

func (p cellPos) xy() (int, int) { return p.x, p.y }

func (s *Surface) cell(x, y float64) cellPos {
	return cellPos{int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))}
}

// set draws glyph in cell p over whatever background the cell already has.
// Out-of-range cells are ignored.
func (s *Surface) set(p cellPos, glyph rune, c orbitfx.Color) {
	cols, rows := s.screen.Size()
	if p.x < 0 || p.y < 0 || p.x >= cols || p.y >= rows {
		return
	}
	_, _, st, _ := s.screen.GetContent(p.x, p.y)
	s.screen.SetContent(p.x, p.y, glyph, nil, st.Foreground(s.tcellColor(c)))
}

// tcellColor blends c toward the background by its alpha.
func (s *Surface) tcellColor(c orbitfx.Color) tcell.Color {
	bg := s.Background
	a := math.Max(0, math.Min(1, c.A))
	mix := func(fg, bg float64) int32 {
		return int32(math.Round((bg + (fg-bg)*a) * 255))
	}
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

// dotGlyph picks a glyph for a sub-cell disc.
func dotGlyph(radius float64) rune {
	switch {
	case radius < 1.5:
		return '·'
	case radius < 3:
		return '•'
	default:
		return '●'
	}
}

// lineGlyph picks a glyph for a segment with the given cell-space slope.
func lineGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax*0.4:
		return '─'
	case ax <= ay*0.4:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
