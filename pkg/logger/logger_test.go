package logger

import (
	"testing"

	"github.com/boxstory/yk/config"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger(&config.LogConfig{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("NewLogger(%s) failed: %v", format, err)
		}
		l.Debug("probe")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
