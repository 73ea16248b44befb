package orbitfx

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
	State  string  `json:"state,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"move":       true,
	"glide":      true,
	"scroll":     true,
	"wait":       true,
	"await":      true,
}

// parseTimelineState maps a state name from a script to a TimelineState.
func parseTimelineState(name string) (TimelineState, bool) {
	for _, st := range []TimelineState{TimelineIdle, TimelineRevealing, TimelineComplete} {
		if st.String() == name {
			return st, true
		}
	}
	return 0, false
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual runs. Attach to a Scene via SetTestRunner.
//
// Actions: "move" (x, y), "glide" (fromX, fromY, toX, toY, frames),
// "scroll" (dy), "wait" (frames), "screenshot" (label) and "await" (state,
// frames). "await" holds the script until the timeline reaches state; a
// positive frames value caps the wait. Scenes without a timeline skip it.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	awaiting  bool
	awaitFor  TimelineState
	awaitLeft int // remaining frames, -1 for no cap
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "await" {
			if _, ok := parseTimelineState(st.State); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown timeline state %q", i, st.State)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is read each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.awaiting {
		if !r.awaitReached(s) {
			return
		}
		r.awaiting = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "glide":
		s.InjectGlide(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		s.InjectScroll(st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "await":
		r.awaitFor, _ = parseTimelineState(st.State)
		r.awaitLeft = -1
		if st.Frames > 0 {
			r.awaitLeft = st.Frames
		}
		r.awaiting = !r.awaitReached(s)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.awaiting && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// awaitReached reports whether an await step may finish this frame and
// counts down its frame cap.
func (r *TestRunner) awaitReached(s *Scene) bool {
	if s.timeline == nil || s.timeline.State() >= r.awaitFor {
		return true
	}
	if r.awaitLeft == 0 {
		s.debugf("test runner: await %s timed out", r.awaitFor)
		return true
	}
	if r.awaitLeft > 0 {
		r.awaitLeft--
	}
	return false
}
