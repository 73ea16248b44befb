package orbitfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// Its text refreshes every ~0.5 seconds and is cached in its own image.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	label      string
}

// update accumulates dt seconds and refreshes the label when due.
func (o *fpsOverlay) update(dt float64) {
	o.lastUpdate += dt
	if o.label != "" && o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0
	o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if o.img != nil {
		o.redraw()
	}
}

func (o *fpsOverlay) redraw() {
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.label)
}

// draw composites the overlay onto screen.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
		o.redraw()
	}
	screen.DrawImage(o.img, nil)
}
