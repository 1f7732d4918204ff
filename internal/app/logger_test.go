package app

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Debug("hidden")
	log.Info("maze complete", zap.Int64("seed", 5))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "maze complete") || !strings.Contains(out, `"seed": 5`) {
		t.Fatalf("unexpected log output %q", out)
	}

	buf.Reset()
	log = newLogger(&buf, true)
	log.Debug("shown")
	_ = log.Sync()
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}
