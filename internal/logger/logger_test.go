package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Out: &buf})
	L().Debug("hidden")
	L().Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug record written without Debug: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warning record missing: %s", buf.String())
	}

	buf.Reset()
	Setup(Config{Out: &buf, Debug: true})
	L().Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug record missing with Debug: %s", buf.String())
	}
}

func TestSetupJSON(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Out: &buf, JSON: true})
	L().Error("convert.failed", "arg", "2000-13-01")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unexpected error: %v (%s)", err, buf.String())
	}
	if rec["msg"] != "convert.failed" || rec["arg"] != "2000-13-01" {
		t.Errorf("unexpected record %v", rec)
	}
}
