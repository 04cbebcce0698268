package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		logAt    Level
		want     bool
	}{
		{"warn passes warn threshold", LevelWarn, LevelWarn, true},
		{"error passes warn threshold", LevelWarn, LevelError, true},
		{"info below warn threshold", LevelWarn, LevelInfo, false},
		{"debug passes debug threshold", LevelDebug, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.minLevel, &buf)
			l.log(tt.logAt, "message", nil, nil)
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoggerEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Warn("skipping sport table", Fields{"sport": "f1", "sheet": "F1_race"})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry.Level != "WARN" || entry.Message != "skipping sport table" {
		t.Errorf("entry = %+v, want WARN with message", entry)
	}
	if entry.Fields["sport"] != "f1" {
		t.Errorf("fields = %v, want sport=f1", entry.Fields)
	}
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Error("fetch failed", nil, errors.New("boom"))

	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("output %q missing error field", buf.String())
	}
}
