package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_New_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&Config{Level: "debug", Format: "json"}, "test", &buf)
	log.Info("hello", Fields("k", "v"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message=hello, got %v", entry["message"])
	}
	if entry["k"] != "v" {
		t.Errorf("expected k=v, got %v", entry["k"])
	}
	if entry[FieldComponent] != "test" {
		t.Errorf("expected component=test, got %v", entry[FieldComponent])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&Config{Level: "error", Format: "json"}, "test", &buf)
	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected sub-error levels to be dropped, got %q", buf.String())
	}
	log.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("expected error-level message to be written")
	}
}

func TestLogger_SingleWritePerCall(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&Config{Level: "info", Format: "json"}, "test", &buf)
	log.Error("one failure")
	lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1
	if lines != 1 {
		t.Errorf("expected exactly one log line, got %d: %q", lines, buf.String())
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&Config{Level: "info", Format: "json"}, "a", &buf).WithComponent("b")
	log.Info("msg")
	if !strings.Contains(buf.String(), `"component":"b"`) {
		t.Errorf("expected component=b, got %q", buf.String())
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&Config{Level: "info", Format: "json"}, "", &buf)
	log.WithFields(map[string]interface{}{FieldCode: "TIMEOUT"}).Info("msg")
	if !strings.Contains(buf.String(), `"code":"TIMEOUT"`) {
		t.Errorf("expected code field, got %q", buf.String())
	}
}

func TestConfig_Validate_Table(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults valid", Config{}, false},
		{"explicit valid", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud"}, true},
		{"bad format", Config{Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields_PairBuilding(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "dropped-key-not-string")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields map: %v", m)
	}
	if len(m) != 2 {
		t.Errorf("expected non-string keys dropped, got %v", m)
	}
}
