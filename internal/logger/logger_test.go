package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	log := New(&buf, false)
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %v", log.GetLevel())
	}
	log.Debug("hidden")
	log.WithField("count", 2).Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be suppressed: %q", out)
	}
	if !strings.Contains(out, "level=warning msg=shown count=2") {
		t.Errorf("unexpected output %q", out)
	}

	if New(&buf, true).GetLevel() != logrus.DebugLevel {
		t.Error("expected debug level with debug flag")
	}
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	if New(&buf, true).GetLevel() != logrus.ErrorLevel {
		t.Error("expected LOG_LEVEL to override debug flag")
	}
}
