package sysutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func preserveLogging(t *testing.T) {
	t.Helper()
	lvl, lg, tf := zerolog.GlobalLevel(), log.Logger, zerolog.TimestampFunc
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(lvl)
		log.Logger = lg
		zerolog.TimestampFunc = tf
	})
}

func TestSetLogLevel_AllVariants(t *testing.T) {
	preserveLogging(t)

	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"  DeBuG  ", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"unknown", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		SetLogLevel(tc.in)
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Fatalf("SetLogLevel(%q) -> %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestConfigureLogger_JSON(t *testing.T) {
	preserveLogging(t)

	var buf bytes.Buffer
	ConfigureLogger(&buf, "warn", false)

	log.Info().Msg("dropped")
	log.Warn().Str("review_id", "1").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line at warn level, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "kept" || entry["service"] != "games-api" || entry["review_id"] != "1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("timestamp missing: %v", entry)
	}
}

func TestConfigureLogger_Pretty(t *testing.T) {
	preserveLogging(t)

	var buf bytes.Buffer
	ConfigureLogger(&buf, "info", true)
	log.Info().Msg("listening")

	out := buf.String()
	if !strings.Contains(out, "listening") || strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got %q", out)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("FirstNonEmpty() = %q; want \"\"", got)
	}
	if got := FirstNonEmpty(" ", "\t", "\n"); got != "" {
		t.Fatalf("FirstNonEmpty(blanks) = %q; want \"\"", got)
	}
	if got := FirstNonEmpty("   ", "  test  ", "development"); got != "  test  " {
		t.Fatalf("FirstNonEmpty(...) = %q; want %q", got, "  test  ")
	}
	if got := FirstNonEmpty("test", "development"); got != "test" {
		t.Fatalf("FirstNonEmpty(...) = %q; want %q", got, "test")
	}
}
