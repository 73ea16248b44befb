package orbitfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Page and input defaults.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720

	scrollStep        = 40.0 // page units per wheel notch
	sectionTrailRatio = 0.25 // page space below the section, as a fraction of the viewport height
	fallbackTPS       = 60
)

// SceneConfig configures a Scene.
type SceneConfig struct {
	// Width and Height are the initial viewport size. Layout replaces them.
	Width, Height int

	Field            FieldConfig
	DisableParticles bool

	Timeline        TimelineConfig
	DisableTimeline bool
	// VisibilityThreshold is the visible fraction of the section that starts
	// the reveal. Defaults to DefaultVisibilityThreshold.
	VisibilityThreshold float64

	Debug bool
}

// DefaultSceneConfig returns a scene with the starfield and the default milestones.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Width:               DefaultViewportWidth,
		Height:              DefaultViewportHeight,
		Field:               DefaultFieldConfig(),
		Timeline:            TimelineConfig{Milestones: DefaultMilestones},
		VisibilityThreshold: DefaultVisibilityThreshold,
	}
}

// Scene is the top-level object. It owns the pointer, the particle field, the
// timeline and its display transitions, and implements ebiten.Game.
//
// The page is virtual: a hero area one viewport tall followed by the
// timeline section, scrolled with the mouse wheel. The particle field stays
// fixed to the viewport.
type Scene struct {
	config SceneConfig

	pointer    *Pointer
	field      *ParticleField
	timeline   *Timeline
	visibility *VisibilityObserver
	stroke     *StrokeReveal
	fades      []cardFade

	renderer renderer
	surface  ImageSurface

	width, height float64
	scroll        float64

	debug   bool
	stats   debugStats
	frames  uint64
	showFPS bool
	fps     fpsOverlay

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
}

// NewScene creates a scene from cfg. Subsystems switched off in cfg stay nil
// and are skipped every frame.
func NewScene(cfg SceneConfig) *Scene {
	if cfg.Width <= 0 {
		cfg.Width = DefaultViewportWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultViewportHeight
	}
	s := &Scene{
		config:        cfg,
		pointer:       NewPointer(),
		stroke:        NewStrokeReveal(),
		surface:       ImageSurface{AntiAlias: true},
		width:         float64(cfg.Width),
		height:        float64(cfg.Height),
		ScreenshotDir: "screenshots",
	}
	s.SetDebugMode(cfg.Debug)

	if !cfg.DisableParticles {
		s.field = NewParticleField(cfg.Field)
		s.field.Initialize(cfg.Field.Count, s.width, s.height)
	}

	if !cfg.DisableTimeline {
		s.timeline = NewTimeline(cfg.Timeline)
		s.fades = make([]cardFade, len(s.timeline.Cards()))
		s.timeline.OnStateChange = func(from, to TimelineState) {
			s.debugf("timeline: %s -> %s at %v", from, to, s.timeline.Elapsed())
		}
		s.timeline.OnCardRevealed = func(i int) {
			s.fades[i].start()
		}
		s.timeline.OnRevealLength = s.stroke.SetTarget
		s.visibility = NewVisibilityObserver(cfg.VisibilityThreshold, func(f float64) {
			if s.timeline.Trigger() {
				s.debugf("timeline: section %.0f%% visible, reveal started", f*100)
			}
		})
	}

	s.layoutSection()
	return s
}

// SetFonts sets the card label fonts. Without fonts, cards draw without labels.
func (s *Scene) SetFonts(f CardFonts) {
	s.renderer.fonts = f
}

// SetShowFPS toggles the FPS/TPS overlay.
func (s *Scene) SetShowFPS(show bool) {
	s.showFPS = show
}

// SetDebugMode enables or disables debug mode. When enabled, timeline state
// transitions are printed and periodic timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Config returns the configuration the scene was built with, after defaults.
func (s *Scene) Config() SceneConfig { return s.config }

// Pointer returns the shared pointer state.
func (s *Scene) Pointer() *Pointer { return s.pointer }

// Field returns the particle field, or nil when particles are disabled.
func (s *Scene) Field() *ParticleField { return s.field }

// Timeline returns the timeline, or nil when the timeline is disabled.
func (s *Scene) Timeline() *Timeline { return s.timeline }

// Stroke returns the drawn-length transition of the timeline curve.
func (s *Scene) Stroke() *StrokeReveal { return s.stroke }

// Viewport returns the viewport size.
func (s *Scene) Viewport() Vec2 { return Vec2{s.width, s.height} }

// Scroll returns the current page scroll offset.
func (s *Scene) Scroll() float64 { return s.scroll }

// sectionHeight is the on-screen height of the timeline section: the viewport
// width at the curve space's aspect ratio.
func (s *Scene) sectionHeight() float64 {
	if s.timeline == nil {
		return 0
	}
	space := s.timeline.Config().Space
	return s.width * space.Height / space.Width
}

// MaxScroll returns the largest scroll offset.
func (s *Scene) MaxScroll() float64 {
	page := s.height + s.sectionHeight() + s.height*sectionTrailRatio
	return max(0, page-s.height)
}

// ScrollBy scrolls the page by dy, clamped to [0, MaxScroll].
func (s *Scene) ScrollBy(dy float64) {
	s.ScrollTo(s.scroll + dy)
}

// ScrollTo scrolls the page to y, clamped to [0, MaxScroll].
func (s *Scene) ScrollTo(y float64) {
	s.scroll = min(max(y, 0), s.MaxScroll())
	s.layoutSection()
}

// Resize is the viewport resize signal. The particle field takes the new
// bounds and the section is laid out again. A non-positive size, as from a
// minimized window, is ignored.
func (s *Scene) Resize(width, height float64) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width, s.height = width, height
	if s.field != nil {
		s.field.Resize(width, height)
	}
	s.scroll = min(s.scroll, s.MaxScroll())
	s.layoutSection()
	s.debugf("resize: %.0fx%.0f", width, height)
}

// layoutSection places the timeline section below the hero area.
func (s *Scene) layoutSection() {
	if s.timeline == nil {
		return
	}
	s.timeline.SetSection(Rect{
		X:      0,
		Y:      s.height - s.scroll,
		Width:  s.width,
		Height: s.sectionHeight(),
	})
}

// Update implements ebiten.Game. It reads input (or the next injected event)
// and advances the scene by one tick.
func (s *Scene) Update() error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() {
		s.readInput()
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = fallbackTPS
	}
	s.Advance(time.Second / time.Duration(tps))
	return nil
}

// readInput feeds the cursor and wheel into the scene.
func (s *Scene) readInput() {
	cx, cy := ebiten.CursorPosition()
	s.pointer.Move(float64(cx), float64(cy))
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.ScrollBy(-wy * scrollStep)
	}
}

// Advance moves every subsystem forward by one frame of length dt:
// pointer-move delivery, particle simulation, the visibility check, the
// energy marker, the reveal clock, then the display transitions. Update calls
// it once per tick; hosts that drive the scene without ebiten call it directly.
func (s *Scene) Advance(dt time.Duration) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.pointer.Moved() {
		if s.timeline != nil {
			s.timeline.PointerMoved(s.pointer, s.Viewport())
		}
		s.pointer.consumeMoved()
	}

	if s.field != nil {
		s.field.Update(s.pointer)
	}

	if s.timeline != nil {
		s.visibility.Observe(s.timeline.Section(), Rect{Width: s.width, Height: s.height})
		s.timeline.Step()
		s.timeline.Update(dt)
	}

	sec := seconds(dt)
	s.stroke.Update(sec)
	for i := range s.fades {
		s.fades[i].update(sec)
	}
	if s.showFPS {
		s.fps.update(dt.Seconds())
	}

	s.frames++
	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// Draw implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.surface.Image = screen
	s.Render(&s.surface)
	s.renderer.drawLabels(screen, s.timeline, s.fades)
	if s.showFPS {
		s.fps.draw(screen)
	}

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.collectStats()
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// Render draws everything except card labels onto dst, back to front.
func (s *Scene) Render(dst LineSurface) {
	if dst == nil {
		return
	}
	dst.Clear()
	if s.field != nil {
		s.field.Render(dst, s.pointer)
	}
	s.renderer.drawTimeline(dst, s.timeline, s.stroke, s.fades)
}

// Layout implements ebiten.Game and is the resize signal.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(s.width), int(s.height)
	}
	s.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
