package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/comalice/warmup/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("warmup", "debug", config.LogJSON, &buf)
	log.WithField("func", "sum").Debug("evaluated")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["service"] != "warmup" || line["func"] != "sum" || line["msg"] != "evaluated" {
		t.Errorf("unexpected fields: %v", line)
	}
}

func TestNewLevelFallback(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		log := New("warmup", level, config.LogText, &bytes.Buffer{})
		if got := log.Logger.GetLevel(); got != logrus.InfoLevel {
			t.Errorf("level %q: got %v want info", level, got)
		}
	}
}

func TestNewTextFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warmup", "warn", config.LogText, &buf)
	log.Info("hidden")
	log.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output %q", out)
	}
}
