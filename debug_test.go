package orbitfx

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns what it wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_LogsTransitions(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	s.ScrollTo(s.MaxScroll())

	output := captureStderr(t, func() { runFrames(s, 1) })
	if !strings.Contains(output, "[orbitfx] timeline: idle -> revealing") {
		t.Errorf("expected transition line in stderr, got: %q", output)
	}
	if !strings.Contains(output, "reveal started") {
		t.Errorf("expected reveal line in stderr, got: %q", output)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	s := newTestScene()
	s.ScrollTo(s.MaxScroll())

	output := captureStderr(t, func() {
		runFrames(s, 1)
		s.Resize(640, 480)
	})
	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}

func TestDebugLogInterval(t *testing.T) {
	s := newTestScene()
	s.SetDebugMode(true)
	s.collectStats()

	s.frames = 1
	if out := captureStderr(t, s.debugLog); out != "" {
		t.Errorf("frame 1 logged: %q", out)
	}
	s.frames = debugLogInterval
	out := captureStderr(t, s.debugLog)
	if !strings.Contains(out, "particles: 160") || !strings.Contains(out, "timeline: idle") {
		t.Errorf("stats line missing, got: %q", out)
	}
}
