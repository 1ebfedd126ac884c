package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitWriter(t *testing.T) {
	defer func() { Logger = zerolog.Nop() }()

	var buf bytes.Buffer
	InitWriter(&buf, false)

	Debug().Msg("hidden")
	Info().Uint32("windowId", 7).Msg("window created")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "window created" {
		t.Errorf("msg = %v, want %q", entry["msg"], "window created")
	}
	if entry["windowId"] != float64(7) {
		t.Errorf("windowId = %v, want 7", entry["windowId"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Error("expected ts field from timestamp hook")
	}
}

func TestNopLoggerByDefault(t *testing.T) {
	// Must not panic or write anywhere
	Warn().Str("k", "v").Msg("dropped")
}
