package orbitfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// FixedSize disables window resizing.
	FixedSize bool
}

// Run opens a window and drives scene until the window closes. It loads the
// default card fonts; if that fails the scene runs without labels.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = DefaultViewportWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultViewportHeight
	}

	fonts, err := LoadDefaultCardFonts()
	if err != nil {
		scene.debugf("fonts: %v; cards render without labels", err)
	} else {
		scene.SetFonts(fonts)
	}
	scene.SetShowFPS(cfg.ShowFPS)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if !cfg.FixedSize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(scene); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
