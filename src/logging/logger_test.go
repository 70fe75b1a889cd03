package logging

import (
	"bytes"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	saved := GetLogLevel()
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		atomic.StoreInt32(&currentLevel, int32(saved))
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	if err := SetLogLevel("info"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Infof("goal reached 102.5% of 150 km")
	out := buf.String()
	if !strings.Contains(out, "[INFO] goal reached 102.5% of 150 km") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("fmt artifact in output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	if err := SetLogLevel("warn"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)
	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("low levels should be filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("missing warn/error lines: %q", out)
	}
}

func TestSetLogLevelUnknown(t *testing.T) {
	capture(t)
	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if err := SetLogLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if GetLogLevel() != LevelDebug {
		t.Fatalf("level changed on bad input: %v", GetLogLevel())
	}
}

func TestTimeTrackDebugOnly(t *testing.T) {
	buf := capture(t)
	_ = SetLogLevel("debug")
	TimeTrack(time.Now(), "transform")
	if !strings.Contains(buf.String(), "transform took") {
		t.Fatalf("expected timing line, got %q", buf.String())
	}
}
