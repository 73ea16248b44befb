package orbitfx

import (
	"testing"
	"time"
)

const testFrame = 10 * time.Millisecond

func newTestScene() *Scene {
	cfg := DefaultSceneConfig()
	cfg.Field.Seed = 42
	cfg.Timeline.Milestones = testMilestones(8)
	return NewScene(cfg)
}

// runFrames ticks s n times, draining one injected event per frame like Update.
func runFrames(s *Scene, n int) {
	for i := 0; i < n; i++ {
		if s.testRunner != nil {
			s.testRunner.step(s)
		}
		s.processInjectedInput()
		s.Advance(testFrame)
	}
}

func TestNewScene(t *testing.T) {
	s := newTestScene()
	if s.Field() == nil || s.Field().Len() != DefaultParticleCount {
		t.Fatalf("field not initialized")
	}
	if w, h := s.Field().Bounds(); w != 1280 || h != 720 {
		t.Errorf("field bounds = %vx%v, want 1280x720", w, h)
	}
	if s.Timeline() == nil || s.Timeline().State() != TimelineIdle {
		t.Fatal("timeline should start idle")
	}
	sec := s.Timeline().Section()
	if sec.Y != 720 || sec.Width != 1280 {
		t.Errorf("section = %+v, want below the hero", sec)
	}
	assertNear(t, "section height", sec.Height, 1280*500.0/1400)
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestNewSceneDefaultsViewport(t *testing.T) {
	s := NewScene(SceneConfig{DisableParticles: true, DisableTimeline: true})
	if s.Viewport() != (Vec2{DefaultViewportWidth, DefaultViewportHeight}) {
		t.Errorf("viewport = %v", s.Viewport())
	}
	if cfg := s.Config(); cfg.Width != DefaultViewportWidth || cfg.Height != DefaultViewportHeight {
		t.Errorf("Config() = %dx%d, want defaults applied", cfg.Width, cfg.Height)
	}
}

func TestSceneDisabledSubsystems(t *testing.T) {
	s := NewScene(SceneConfig{DisableParticles: true, DisableTimeline: true})
	if s.Field() != nil || s.Timeline() != nil {
		t.Fatal("disabled subsystems should be nil")
	}
	s.InjectMove(10, 10)
	s.InjectScroll(100)
	runFrames(s, 3)
	if s.MaxScroll() != s.Viewport().Y*sectionTrailRatio {
		t.Errorf("MaxScroll = %v", s.MaxScroll())
	}

	rs := &recordingSurface{w: 1280, h: 720}
	s.Render(rs)
	if rs.clears != 1 || len(rs.discs) != 0 || len(rs.lines) != 0 {
		t.Errorf("empty scene drew %d discs, %d lines", len(rs.discs), len(rs.lines))
	}
	s.Render(nil) // must not panic
}

func TestSceneStaysIdleOutOfView(t *testing.T) {
	s := newTestScene()
	runFrames(s, 100)
	if s.Timeline().State() != TimelineIdle {
		t.Errorf("state = %v, want idle while the section is below the fold", s.Timeline().State())
	}
}

func TestSceneScrollTriggersReveal(t *testing.T) {
	s := newTestScene()
	s.ScrollTo(1e9)
	if s.Scroll() != s.MaxScroll() {
		t.Fatalf("scroll = %v, want clamped to %v", s.Scroll(), s.MaxScroll())
	}

	runFrames(s, 1)
	tl := s.Timeline()
	if tl.State() != TimelineRevealing {
		t.Fatalf("state = %v, want revealing", tl.State())
	}
	if !tl.Cards()[0].Revealed {
		t.Error("first card should reveal on the triggering frame")
	}

	// 7 anchors × 800ms + 300ms, then the 650ms stroke transition.
	runFrames(s, 700)
	if tl.State() != TimelineComplete {
		t.Errorf("state = %v, want complete", tl.State())
	}
	assertNear(t, "stroke length", s.Stroke().Length(), tl.Curve().TotalLength())
	for i, f := range s.fades {
		if f.alpha < 0.99 {
			t.Errorf("card %d alpha = %v, want faded in", i, f.alpha)
		}
	}

	// Scrolling away and back does not restart the reveal.
	s.ScrollTo(0)
	runFrames(s, 5)
	s.ScrollTo(s.MaxScroll())
	runFrames(s, 5)
	if tl.State() != TimelineComplete || tl.PendingTasks() != 0 {
		t.Errorf("reveal restarted: state %v, pending %d", tl.State(), tl.PendingTasks())
	}
}

func TestSceneScrollClamp(t *testing.T) {
	s := newTestScene()
	s.ScrollBy(-50)
	if s.Scroll() != 0 {
		t.Errorf("scroll = %v, want 0", s.Scroll())
	}
	s.ScrollBy(100)
	if s.Scroll() != 100 {
		t.Errorf("scroll = %v, want 100", s.Scroll())
	}
	if y := s.Timeline().Section().Y; y != 620 {
		t.Errorf("section y = %v, want 620", y)
	}
}

func TestSceneLayoutResizes(t *testing.T) {
	s := newTestScene()
	w, h := s.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if fw, fh := s.Field().Bounds(); fw != 800 || fh != 600 {
		t.Errorf("field bounds = %vx%v", fw, fh)
	}
	sec := s.Timeline().Section()
	if sec.Width != 800 || sec.Y != 600 {
		t.Errorf("section = %+v", sec)
	}
	if s.Field().Len() != DefaultParticleCount {
		t.Error("resize should keep the particles")
	}
}

func TestSceneResizeClampsScroll(t *testing.T) {
	s := newTestScene()
	s.ScrollTo(s.MaxScroll())
	s.Layout(1280, 400)
	if s.Scroll() > s.MaxScroll() {
		t.Errorf("scroll %v exceeds max %v", s.Scroll(), s.MaxScroll())
	}
}

func TestScenePointerDelivery(t *testing.T) {
	s := newTestScene()
	s.ScrollTo(s.MaxScroll())
	runFrames(s, 90) // cards 0 and 1 revealed

	sec := s.Timeline().Section()
	s.InjectMove(1200, sec.Y+sec.Height-5)
	runFrames(s, 1)

	if s.Pointer().Moved() {
		t.Error("moved flag should be consumed each frame")
	}
	if s.Timeline().Cards()[1].Offset == (Vec2{}) {
		t.Error("revealed card should drift with the pointer")
	}
}

func TestSceneRender(t *testing.T) {
	s := newTestScene()
	rs := &recordingSurface{w: 1280, h: 720}

	s.Render(rs)
	if rs.clears != 1 {
		t.Errorf("clears = %d, want 1", rs.clears)
	}
	if len(rs.discs) < DefaultParticleCount {
		t.Errorf("discs = %d, want at least the particles", len(rs.discs))
	}

	s.ScrollTo(s.MaxScroll())
	runFrames(s, 700)
	s.Render(rs)

	// particles + 8 active nodes (glow + core) + marker (glow + core)
	if want := DefaultParticleCount + 8*2 + 2; len(rs.discs) != want {
		t.Errorf("discs = %d, want %d", len(rs.discs), want)
	}
	if len(rs.rects) != 8 {
		t.Errorf("card panels = %d, want 8", len(rs.rects))
	}
	if len(rs.lines) == 0 {
		t.Error("expected curve and accent lines")
	}
}

func TestSceneRenderSkipsOffscreenSection(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.DisableParticles = true
	s := NewScene(cfg)
	s.Layout(1280, 600)

	rs := &recordingSurface{w: 1280, h: 500}
	s.Render(rs)
	if len(rs.discs) != 0 || len(rs.lines) != 0 {
		t.Errorf("off-surface section drew %d discs, %d lines", len(rs.discs), len(rs.lines))
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	if !s.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be false")
	}
}

func TestSceneIgnoresEmptyResize(t *testing.T) {
	s := newTestScene()
	sec := s.Timeline().Section()
	if w, h := s.Layout(0, 0); w != 1280 || h != 720 {
		t.Errorf("Layout(0, 0) = %dx%d, want the last size", w, h)
	}
	s.Resize(0, 300)
	if s.Viewport() != (Vec2{1280, 720}) {
		t.Errorf("viewport = %v, want 1280x720 kept", s.Viewport())
	}
	if w, h := s.Field().Bounds(); w != 1280 || h != 720 {
		t.Errorf("field bounds = %vx%v", w, h)
	}
	if s.Timeline().Section() != sec {
		t.Errorf("section moved to %+v", s.Timeline().Section())
	}
}
