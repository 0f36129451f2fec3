package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/log"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test"+log.FileExtension)

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// recordedTrace resolves a few qualifier strings through a traced parser.
func recordedTrace(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace"+log.FileExtension)
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	p := qualifier.NewParser(logger)
	_, _ = p.Parse("fr-rFR-land", apilevel.P)
	_, _ = p.Parse("land-port", apilevel.P)
	_, _ = p.ParseOverlay("en", "+night", apilevel.JellyBean)
	_, _ = p.Parse("bogus", apilevel.JellyBean)
	logger.Close()
	return path
}

func TestView(t *testing.T) {
	path := recordedTrace(t)

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"RESOLVED PARSE v28",
		"Canonical: fr-rFR-ldltr-sw320dp-w320dp-land-v28",
		"    orientation: LANDSCAPE",
		"REJECTED PARSE v28",
		"Kind: CONFLICT",
		"Dimension: orientation",
		"RESOLVED OVERLAY v16",
		"Base: en",
		`Token: "bogus"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestViewFiltered(t *testing.T) {
	path := recordedTrace(t)

	cat := log.CategoryRejected
	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if strings.Contains(output, "RESOLVED") {
		t.Error("expected only rejected events")
	}
	if got := strings.Count(output, "REJECTED"); got != 2 {
		t.Errorf("expected 2 rejected events, got %d", got)
	}
}

func TestViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView(filepath.Join(t.TempDir(), "nope.qlog"), log.Filter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStats(t *testing.T) {
	path := recordedTrace(t)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 4",
		"Sessions:   1",
		"RESOLVED:",
		"REJECTED:",
		"OVERLAY:",
		"v16:",
		"v28:",
		"CONFLICT:",
		"UNRECOGNIZED:",
		`"bogus":`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestExportJSONL(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	path := createTestLogFile(t, []log.Event{
		{
			Timestamp: ts,
			SessionID: "session-1",
			Category:  log.CategoryResolved,
			APILevel:  apilevel.P,
			Input:     "land",
			Resolution: &log.ResolutionEvent{
				Canonical: "sw320dp-w320dp-land-v28",
			},
		},
	})

	var buf bytes.Buffer
	if err := RunExport(path, "jsonl", log.Filter{}, &buf); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["timestamp"] != "2026-01-28T10:15:32.123456Z" {
		t.Errorf("timestamp = %v", got["timestamp"])
	}
	if got["category"] != "RESOLVED" || got["source"] != "PARSE" {
		t.Errorf("category/source = %v/%v", got["category"], got["source"])
	}
	if got["api_level"] != float64(28) {
		t.Errorf("api_level = %v", got["api_level"])
	}
}

func TestExportCSV(t *testing.T) {
	path := recordedTrace(t)

	var buf bytes.Buffer
	if err := RunExport(path, "csv", log.Filter{}, &buf); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(records))
	}
	if records[0][8] != "canonical" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][8] != "fr-rFR-ldltr-sw320dp-w320dp-land-v28" {
		t.Errorf("unexpected canonical %q", records[1][8])
	}
	if records[2][9] != "CONFLICT" || records[2][10] != "port" {
		t.Errorf("unexpected rejection row %v", records[2])
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	path := createTestLogFile(t, nil)
	if err := RunExport(path, "xml", log.Filter{}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFilter(t *testing.T) {
	path := recordedTrace(t)
	out := filepath.Join(t.TempDir(), "filtered"+log.FileExtension)

	level := apilevel.JellyBean
	n, err := RunFilter(path, out, log.Filter{APILevel: &level})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}

	var buf bytes.Buffer
	if err := RunStats(out, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 2") {
		t.Errorf("unexpected stats:\n%s", buf.String())
	}
}

func TestLogCommandFlags(t *testing.T) {
	path := recordedTrace(t)

	code, out, _ := run(t, "log", "view", "--source", "overlay", path)
	if code != ExitSuccess {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "OVERLAY") || strings.Contains(out, "PARSE v28") {
		t.Errorf("unexpected output:\n%s", out)
	}

	code, _, _ = run(t, "log", "view", "--category", "sideways", path)
	if code != ExitError {
		t.Errorf("expected exit code %d for bad category, got %d", ExitError, code)
	}

	code, _, _ = run(t, "log", "filter", path)
	if code != ExitError {
		t.Errorf("expected exit code %d without --output, got %d", ExitError, code)
	}
}

func TestParseFlags(t *testing.T) {
	if c, err := ParseCategoryFlag("Rejected"); err != nil || c != log.CategoryRejected {
		t.Errorf("ParseCategoryFlag = %v, %v", c, err)
	}
	if s, err := ParseSourceFlag("PROFILE"); err != nil || s != log.SourceProfile {
		t.Errorf("ParseSourceFlag = %v, %v", s, err)
	}
	if _, err := ParseSourceFlag("nope"); err == nil {
		t.Error("expected error")
	}
}
