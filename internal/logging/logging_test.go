package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestSetupPrefersFlagOverEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	var buf bytes.Buffer
	logger, err := Setup(&buf, "debug")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Debug("decoded", "schema", "AwsIamServiceIdentityInfo")
	if out := buf.String(); !strings.Contains(out, "schema=AwsIamServiceIdentityInfo") {
		t.Fatalf("debug record missing: %q", out)
	}
}

func TestSetupUsesEnvThenDefault(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	if _, err := Setup(&bytes.Buffer{}, ""); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if Level() != slog.LevelError {
		t.Fatalf("level = %v, want error", Level())
	}

	t.Setenv(EnvLevel, "")
	var buf bytes.Buffer
	logger, err := Setup(&buf, "")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := Setup(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
