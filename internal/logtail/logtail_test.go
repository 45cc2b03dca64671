package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestParse_ZapJSON(t *testing.T) {
	line := `{"level":"warn","ts":"2026-03-04T10:11:12.345Z","logger":"cms","caller":"cms/client.go:42","msg":"session expired, please sign in again","code":401,"path":"/crm-website/homepageConfig/display"}`
	e := Parse(line)

	if e.Level != "warn" || e.Logger != "cms" || e.Message != "session expired, please sign in again" {
		t.Fatalf("Parse = %+v", e)
	}
	want := time.Date(2026, 3, 4, 10, 11, 12, 345_000_000, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if _, ok := e.Fields["caller"]; ok {
		t.Fatalf("Fields kept reserved key caller")
	}
	if got := e.FieldString(); got != "code=401 path=/crm-website/homepageConfig/display" {
		t.Fatalf("FieldString = %q", got)
	}
	if e.Raw != line {
		t.Fatalf("Raw not preserved")
	}
}

func TestParse_EpochTimestamp(t *testing.T) {
	e := Parse(`{"level":"info","ts":1700000000.5,"msg":"ok"}`)
	if e.Time.Unix() != 1700000000 {
		t.Fatalf("Time = %v, want unix 1700000000", e.Time)
	}
	if e.FieldString() != "" {
		t.Fatalf("FieldString = %q, want empty", e.FieldString())
	}
}

func TestParse_PlainText(t *testing.T) {
	for _, line := range []string{"  plain text line ", "{not json"} {
		e := Parse(line)
		if e.Message != strings.TrimSpace(line) || e.Level != "" {
			t.Fatalf("Parse(%q) = %+v, want passthrough", line, e)
		}
	}
}

func TestParseLines_SkipsBlank(t *testing.T) {
	entries := ParseLines([]string{`{"level":"error","msg":"system error"}`, "   ", "tail"})
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Level != "error" || entries[1].Message != "tail" {
		t.Fatalf("entries = %+v", entries)
	}
}
