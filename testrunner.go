package fireworks

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a show script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Color  string `json:"color,omitempty"`
	Count  int    `json:"count,omitempty"`
	Frames int    `json:"frames,omitempty"`

	color Color
}

// script is the top-level JSON structure for a show script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences launches, waits and screenshots across frames for
// choreographed or automated visual runs. Attach to a Show via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON show script:
//
//	{"steps": [
//		{"action": "launch", "color": "red", "count": 3},
//		{"action": "wait", "frames": 120},
//		{"action": "screenshot", "label": "burst"}
//	]}
//
// Colors are validated up front.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse show script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse show script: no steps")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		switch st.Action {
		case "launch":
			c, err := ParseColor(st.Color)
			if err != nil {
				return nil, fmt.Errorf("parse show script: step %d: %w", i, err)
			}
			st.color = c
			if st.Count <= 0 {
				st.Count = 1
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse show script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the show. The runner advances one step
// at the start of every Step. nil detaches it.
func (s *Show) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Show.Step.
func (r *ScriptRunner) step(s *Show) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "launch":
		for range st.Count {
			s.InjectLaunch(st.color)
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
