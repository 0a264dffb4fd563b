// Forestview - Decision Forest Training Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forestview

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

// The tests below reconfigure the global logger and must not run in parallel.

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("task_id", "abc").Msg("row loaded")

	output := buf.String()
	if !strings.Contains(output, "row loaded") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
	if !strings.Contains(output, `"task_id":"abc"`) {
		t.Errorf("expected output to contain field, got: %s", output)
	}
}

func TestInit_EmptyConfigUsesDefaults(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})
	defer Init(DefaultConfig())

	if got := Logger().GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
	Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug to be suppressed, got: %s", buf.String())
	}
}

func TestNew_DoesNotInstall(t *testing.T) {
	var global, local bytes.Buffer
	SetLogger(NewTestLogger(&global))
	defer Init(DefaultConfig())

	l := New(Config{Level: "debug", Output: &local})
	l.Debug().Msg("local-only")

	if !strings.Contains(local.String(), "local-only") {
		t.Errorf("New() logger did not write: %q", local.String())
	}
	if global.Len() != 0 {
		t.Errorf("New() must not replace the global logger, global got: %s", global.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, l := range []string{"trace", "debug", "INFO", "warn", "error", "disabled"} {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false, want true", l)
		}
	}
	for _, l := range []string{"", "verbose", "loud"} {
		if ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = true, want false", l)
		}
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("debug-msg")
	Info().Msg("info-msg")
	Warn().Msg("warn-msg")
	Error().Msg("error-msg")

	output := buf.String()
	for _, hidden := range []string{"debug-msg", "info-msg"} {
		if strings.Contains(output, hidden) {
			t.Errorf("expected %q to be filtered, got: %s", hidden, output)
		}
	}
	for _, shown := range []string{"warn-msg", "error-msg"} {
		if !strings.Contains(output, shown) {
			t.Errorf("expected %q in output, got: %s", shown, output)
		}
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("console-output")

	output := buf.String()
	if !strings.Contains(output, "console-output") {
		t.Errorf("expected console output to contain message, got: %s", output)
	}
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Errorf("expected non-JSON console output, got: %s", output)
	}
}

func TestCaller(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Caller: true, Output: &buf})
	defer Init(DefaultConfig())

	Error().Err(errors.New("store closed")).Msg("read failed")

	output := buf.String()
	if !strings.Contains(output, `"error":"store closed"`) {
		t.Errorf("expected error field, got: %s", output)
	}
	if !strings.Contains(output, `"caller":"`) {
		t.Errorf("expected caller field, got: %s", output)
	}
	if strings.Contains(output, `"time":"`) {
		t.Errorf("timestamp not requested, got: %s", output)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	storeLog := WithComponent("store")
	storeLog.Info().Msg("opened")

	if !strings.Contains(buf.String(), `"component":"store"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}
