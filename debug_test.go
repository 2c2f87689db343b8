package fireworks

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = old })
	return &buf
}

func TestDebugMode_LogsStats(t *testing.T) {
	buf := captureDebug(t)
	s := NewShow(quietConfig(), NewRand(1))
	s.SetDebugMode(true)
	s.Launch(Red)
	s.Step(1.0 / 60)

	out := buf.String()
	if !strings.Contains(out, "[fireworks] frame 1 |") {
		t.Errorf("missing timing line: %q", out)
	}
	if !strings.Contains(out, "fireworks: 1 | stars: 0 | trails: 0") {
		t.Errorf("missing population line: %q", out)
	}
}

func TestDebugMode_Off(t *testing.T) {
	buf := captureDebug(t)
	s := NewShow(quietConfig(), NewRand(1))
	s.Step(1.0 / 60)
	if buf.Len() != 0 {
		t.Errorf("debug output with debug off: %q", buf.String())
	}
}

func TestDebugMode_FromConfig(t *testing.T) {
	buf := captureDebug(t)
	cfg := quietConfig()
	cfg.Debug = true
	s := NewShow(cfg, NewRand(1))
	s.Step(1.0 / 60)
	if !strings.Contains(buf.String(), "[fireworks] frame 1") {
		t.Errorf("cfg.Debug should enable logging: %q", buf.String())
	}

	s.SetDebugMode(false)
	buf.Reset()
	s.Step(1.0 / 60)
	if buf.Len() != 0 {
		t.Error("SetDebugMode(false) should silence logging")
	}
}

func TestWarnf(t *testing.T) {
	buf := captureDebug(t)
	warnf("disk %s", "full")
	if got := buf.String(); got != "[fireworks] disk full\n" {
		t.Errorf("warnf wrote %q", got)
	}
}
