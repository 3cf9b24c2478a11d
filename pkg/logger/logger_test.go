package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_JSONWithService(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Service: "plots-api", Output: &buf})
	log.Debug().Str("instance_id", "device-1").Msg("session selected")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "plots-api" || line["instance_id"] != "device-1" || line["level"] != "debug" {
		t.Fatalf("unexpected fields: %+v", line)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "warn", Output: &first})
	log := Init(Options{Level: "debug", Output: &second})

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	if second.Len() != 0 {
		t.Fatalf("second Init must not replace the output, got %q", second.String())
	}
	if strings.Contains(first.String(), "dropped") || !strings.Contains(first.String(), "kept") {
		t.Fatalf("unexpected output: %q", first.String())
	}
}

func TestComponent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Output: &buf})
	log := Component("seed")
	log.Info().Msg("catalog applied")

	if !strings.Contains(buf.String(), `"component":"seed"`) {
		t.Fatalf("missing component field: %q", buf.String())
	}
}

func TestGet_BeforeInitPanics(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Get()
}

func TestForEnv(t *testing.T) {
	if !ForEnv("development", "").Pretty {
		t.Fatal("development should use console output")
	}
	if ForEnv("production", "").Pretty {
		t.Fatal("production should log JSON")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
