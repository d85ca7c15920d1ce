package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pion/logging"
)

func TestSetLevel(t *testing.T) {
	l, ok := NewLogger("test").(*logging.DefaultLeveledLogger)
	if !ok {
		t.Fatal("expected a default leveled logger")
	}
	var buf bytes.Buffer
	l.WithOutput(&buf)

	SetLevel(logging.LogLevelDebug)
	l.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug message to be logged, got %q", buf.String())
	}

	buf.Reset()
	SetLevel(logging.LogLevelError)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug message to be dropped, got %q", buf.String())
	}

	later, ok := NewLogger("later").(*logging.DefaultLeveledLogger)
	if !ok {
		t.Fatal("expected a default leveled logger")
	}
	later.WithOutput(&buf)
	later.Warn("hidden")
	later.Error("visible")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Errorf("expected only the error to be logged, got %q", out)
	}
}
