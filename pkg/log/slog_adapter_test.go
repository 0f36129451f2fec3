package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/config"
)

func newJSONSlogger(buf *bytes.Buffer) *slog.Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler)
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsResolution(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(newJSONSlogger(&buf))

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "session-123",
		Category:  CategoryResolved,
		Source:    SourceParse,
		APILevel:  apilevel.P,
		Input:     "hdpi",
		Resolution: &ResolutionEvent{
			Canonical: "sw320dp-w320dp-hdpi-v28",
			Metrics:   config.NewDisplayMetrics(240),
		},
	})

	entry := decodeEntry(t, &buf)
	if entry["session_id"] != "session-123" {
		t.Errorf("session_id: got %v, want %q", entry["session_id"], "session-123")
	}
	if entry["category"] != "RESOLVED" {
		t.Errorf("category: got %v, want %q", entry["category"], "RESOLVED")
	}
	if entry["api_level"] != float64(28) {
		t.Errorf("api_level: got %v, want 28", entry["api_level"])
	}
	if entry["canonical"] != "sw320dp-w320dp-hdpi-v28" {
		t.Errorf("canonical: got %v", entry["canonical"])
	}
	if entry["density_dpi"] != float64(240) {
		t.Errorf("density_dpi: got %v, want 240", entry["density_dpi"])
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
}

func TestSlogAdapterLogsRejection(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(newJSONSlogger(&buf))

	adapter.Log(Event{
		Timestamp: time.Now(),
		Category:  CategoryRejected,
		Source:    SourceOverlay,
		Base:      "land",
		Input:     "port-port",
		Rejection: &RejectionEvent{
			Kind:      "CONFLICT",
			Token:     "port",
			Dimension: "orientation",
			Message:   "conflicting qualifiers",
		},
	})

	entry := decodeEntry(t, &buf)
	if entry["error_kind"] != "CONFLICT" {
		t.Errorf("error_kind: got %v", entry["error_kind"])
	}
	if entry["dimension"] != "orientation" {
		t.Errorf("dimension: got %v", entry["dimension"])
	}
	if entry["base"] != "land" {
		t.Errorf("base: got %v", entry["base"])
	}
	if _, ok := entry["canonical"]; ok {
		t.Error("rejection should not carry canonical")
	}
}

func TestSlogAdapterFiltersBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{Timestamp: time.Now(), Input: "land"})

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %s", buf.String())
	}
}

func TestSlogAdapterInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*SlogAdapter)(nil)
}
