package log_test

import (
	"strings"
	"testing"

	"github.com/dshills/actionbind/internal/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.LevelDebug},
		{"info", log.LevelInfo},
		{"warn", log.LevelWarn},
		{"warning", log.LevelWarn},
		{"error", log.LevelError},
		{"ERROR", log.LevelError},
		{"nonsense", log.LevelInfo},
	}

	for _, tt := range tests {
		if got := log.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := log.New(log.Config{Level: log.LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible warning")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "visible error") {
		t.Errorf("output missing enabled messages: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf strings.Builder
	logger := log.New(log.Config{Level: log.LevelError, Output: &buf})

	logger.Info("before")
	logger.SetLevel(log.LevelDebug)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("output contains pre-SetLevel message: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("output missing post-SetLevel message: %q", out)
	}
}

func TestPrefixAndLevelTag(t *testing.T) {
	var buf strings.Builder
	logger := log.New(log.Config{Level: log.LevelInfo, Output: &buf, Prefix: "core"})

	logger.Info("started")

	out := buf.String()
	if !strings.Contains(out, "[INFO] core: started") {
		t.Errorf("output = %q", out)
	}
}

func TestFieldsSortedAndInherited(t *testing.T) {
	var buf strings.Builder
	logger := log.New(log.Config{Level: log.LevelInfo, Output: &buf}).
		WithComponent("engine").
		WithField("method", "Save")

	logger.Info("resolved", "params", 2)

	out := buf.String()
	if !strings.Contains(out, "component=engine method=Save params=2") {
		t.Errorf("output = %q", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf strings.Builder
	parent := log.New(log.Config{Level: log.LevelInfo, Output: &buf})
	_ = parent.WithField("child", "only")

	parent.Info("from parent")

	if strings.Contains(buf.String(), "child=only") {
		t.Errorf("parent output inherited the child field: %q", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	logger := log.Nop()
	logger.SetLevel(log.LevelDebug)

	// Must not panic and must stay silent even with a writer-less setup.
	logger.Error("nothing to see")
	logger.WithField("k", "v").Info("still nothing")
}
