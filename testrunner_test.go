package fireworks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "launch", "color": "blue", "count": 3},
			{"action": "wait", "frames": 3},
			{"action": "launch", "color": "#ff8800"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].color != Blue || runner.steps[1].Count != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].color != RGB(0xff, 0x88, 0) || runner.steps[3].Count != 1 {
		t.Error("step 3 should default to a single launch")
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name, json, wantErr string
	}{
		{"invalid json", `not json`, "parse show script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "click"}]}`, "unknown action"},
		{"bad color", `{"steps": [{"action": "launch", "color": "gold"}]}`, "step 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunnerStep_Launch(t *testing.T) {
	s := NewShow(quietConfig(), NewRand(1))
	runner, err := LoadScript([]byte(`{"steps": [{"action": "launch", "color": "green", "count": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(runner)
	s.Step(1.0 / 60)

	if n := len(s.Fireworks()); n != 2 {
		t.Fatalf("fireworks = %d, want 2", n)
	}
	for _, f := range s.Fireworks() {
		if f.Color() != Green {
			t.Errorf("color = %v, want green", f.Color())
		}
	}
	if !runner.Done() {
		t.Error("runner should be done after its only step")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewShow(quietConfig(), NewRand(1))
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "launch", "color": "red", "count": 2},
		{"action": "wait", "frames": 3},
		{"action": "launch", "color": "blue"},
		{"action": "screenshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.ScreenshotDir = t.TempDir()
	s.SetScript(runner)

	want := []int{2, 2, 2, 2, 3}
	for i, n := range want {
		s.Step(1.0 / 60)
		if got := len(s.Fireworks()); got != n {
			t.Fatalf("after frame %d: fireworks = %d, want %d", i+1, got, n)
		}
		if runner.Done() {
			t.Fatalf("runner done early at frame %d", i+1)
		}
	}

	s.Step(1.0 / 60)
	if !runner.Done() {
		t.Fatal("runner should be done after the screenshot")
	}
	matches, _ := filepath.Glob(filepath.Join(s.ScreenshotDir, "*_end.png"))
	if len(matches) != 1 {
		t.Errorf("screenshots = %v, want one", matches)
	}
	if _, err := os.Stat(matches[0]); err != nil {
		t.Error(err)
	}
}

func TestRunnerDoneIsIdle(t *testing.T) {
	s := NewShow(quietConfig(), NewRand(1))
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "launch", "color": "white"}]}`))
	s.SetScript(runner)
	for range 10 {
		s.Step(1.0 / 60)
	}
	if n := len(s.Fireworks()); n != 1 {
		t.Errorf("fireworks = %d, want 1", n)
	}

	s.SetScript(nil)
	s.Step(1.0 / 60)
}
