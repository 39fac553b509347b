package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)
	logger.SetLevel(LevelInfo)

	// Debug should be filtered
	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("debug message should be filtered at INFO level")
	}

	// Info should pass
	logger.Info("info message")
	line := buf.String()
	if !strings.HasPrefix(line, "INFO ") {
		t.Errorf("expected INFO prefix, got %q", line)
	}
	if !strings.Contains(line, "info message") {
		t.Errorf("expected message in line, got %q", line)
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithComponent("parser")
	logger.SetOutput(&buf)

	logger.Info("test message")

	if !strings.Contains(buf.String(), "[parser]") {
		t.Errorf("expected component tag, got %q", buf.String())
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)

	logger.Info("parse_complete", map[string]interface{}{
		"entries": 12,
		"path":    "run.log",
	})

	line := buf.String()
	if !strings.Contains(line, "entries=12 path=run.log") {
		t.Errorf("fields should render sorted as key=value, got %q", line)
	}
}

func TestLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)
	logger.SetLevel(LevelDebug)

	logger.ParseStart("run.log", 1024)

	line := buf.String()
	if !strings.HasPrefix(line, "DEBUG") {
		t.Errorf("expected DEBUG line, got %q", line)
	}
	if !strings.Contains(line, "size=1024") {
		t.Errorf("expected size field, got %q", line)
	}
}
