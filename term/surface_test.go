package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/orbitfx"
)

var _ orbitfx.LineSurface = (*Surface)(nil)

func newTestSurface(t *testing.T) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewSurface(screen), screen
}

func cellAt(screen tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, st, _ := screen.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	return r, fg, bg
}

func TestSurfaceSize(t *testing.T) {
	s, _ := newTestSurface(t)
	w, h := s.Size()
	if w != 640 || h != 384 {
		t.Errorf("Size = %vx%v, want 640x384", w, h)
	}
}

func TestFillDiscSmall(t *testing.T) {
	s, screen := newTestSurface(t)
	s.FillDisc(12, 20, 1, orbitfx.ColorWhite)

	r, fg, _ := cellAt(screen, 1, 1)
	if r != '·' {
		t.Errorf("glyph = %q, want '·'", r)
	}
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("fg = %v, want white", fg)
	}

	s.FillDisc(12, 40, 2.5, orbitfx.ColorWhite)
	if r, _, _ := cellAt(screen, 1, 2); r != '•' {
		t.Errorf("glyph = %q, want '•'", r)
	}
}

func TestFillDiscBlendsAlpha(t *testing.T) {
	s, screen := newTestSurface(t)
	s.FillDisc(4, 8, 1, orbitfx.ColorWhite.WithAlpha(0.5))
	if _, fg, _ := cellAt(screen, 0, 0); fg != tcell.NewRGBColor(128, 128, 128) {
		t.Errorf("fg = %v, want 50%% grey", fg)
	}
}

func TestFillDiscLarge(t *testing.T) {
	s, screen := newTestSurface(t)
	s.FillDisc(44, 40, 20, orbitfx.ColorWhite)
	if r, _, _ := cellAt(screen, 5, 2); r != '█' {
		t.Errorf("center glyph = %q, want '█'", r)
	}
	if r, _, _ := cellAt(screen, 20, 20); r != ' ' {
		t.Errorf("far cell glyph = %q, want blank", r)
	}

	s.FillDisc(44, 40, 20, orbitfx.ColorWhite.WithAlpha(0.2))
	if r, _, _ := cellAt(screen, 5, 2); r != '░' {
		t.Errorf("faint glyph = %q, want '░'", r)
	}
}

func TestStrokeLine(t *testing.T) {
	s, screen := newTestSurface(t)
	s.StrokeLine(0, 8, 80, 8, 1, orbitfx.ColorWhite)
	for x := 0; x <= 10; x++ {
		if r, _, _ := cellAt(screen, x, 0); r != '─' {
			t.Errorf("cell %d = %q, want '─'", x, r)
		}
	}
	if r, _, _ := cellAt(screen, 11, 0); r != ' ' {
		t.Errorf("cell past the end = %q, want blank", r)
	}

	s.StrokeLine(4, 0, 4, 64, 1, orbitfx.ColorWhite)
	if r, _, _ := cellAt(screen, 0, 3); r != '│' {
		t.Errorf("vertical glyph = %q, want '│'", r)
	}
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{10, 0, '─'},
		{0, -5, '│'},
		{3, 3, '╲'},
		{-3, -3, '╲'},
		{3, -3, '╱'},
	}
	for _, tt := range tests {
		if got := lineGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineGlyph(%v, %v) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestFillRectAndText(t *testing.T) {
	s, screen := newTestSurface(t)
	panel := orbitfx.RGB255(10, 20, 40)
	s.FillRect(orbitfx.Rect{X: 16, Y: 16, Width: 32, Height: 32}, panel)

	if _, _, bg := cellAt(screen, 2, 1); bg != tcell.NewRGBColor(10, 20, 40) {
		t.Errorf("bg = %v, want panel color", bg)
	}
	if _, _, bg := cellAt(screen, 6, 1); bg == tcell.NewRGBColor(10, 20, 40) {
		t.Error("cell right of the rect should not be painted")
	}

	s.Text(16, 16, "Hi", orbitfx.ColorWhite)
	r, fg, bg := cellAt(screen, 3, 1)
	if r != 'i' || fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("text cell = %q %v", r, fg)
	}
	if bg != tcell.NewRGBColor(10, 20, 40) {
		t.Error("text should keep the panel background")
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	s, _ := newTestSurface(t)
	s.FillDisc(-100, -100, 1, orbitfx.ColorWhite)
	s.FillDisc(1e6, 1e6, 50, orbitfx.ColorWhite)
	s.StrokeLine(-50, -50, 2000, 2000, 1, orbitfx.ColorWhite)
	s.Text(630, 0, "overflow", orbitfx.ColorWhite)
}

func TestClear(t *testing.T) {
	s, screen := newTestSurface(t)
	s.FillDisc(4, 8, 1, orbitfx.ColorWhite)
	s.Clear()
	r, _, bg := cellAt(screen, 0, 0)
	if r != ' ' || bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("cleared cell = %q bg %v", r, bg)
	}
}

func TestRenderScene(t *testing.T) {
	s, screen := newTestSurface(t)
	w, h := s.Size()

	cfg := orbitfx.DefaultSceneConfig()
	cfg.Width, cfg.Height = int(w), int(h)
	cfg.Field.Seed = 7
	scene := orbitfx.NewScene(cfg)
	scene.ScrollTo(scene.MaxScroll())
	for i := 0; i < 120; i++ {
		scene.Advance(10 * time.Millisecond)
	}
	scene.Render(s)

	drawn := 0
	cols, rows := screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _ := cellAt(screen, x, y); r != ' ' {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("scene drew nothing")
	}
}
