package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    string
		warning string
	}{
		{name: "default", config: Config{}, want: "info"},
		{name: "verbose", config: Config{Verbose: true}, want: "debug"},
		{name: "quiet", config: Config{Quiet: true}, want: "warn"},
		{name: "both", config: Config{Verbose: true, Quiet: true}, want: "warn", warning: "using --quiet"},
		{name: "explicit wins", config: Config{LogLevel: "error", Verbose: true}, want: "error"},
		{name: "invalid", config: Config{LogLevel: "loud"}, want: "info", warning: `invalid log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			got := determineLogLevel(&tt.config, &warnings)
			if got != tt.want {
				t.Errorf("determineLogLevel() = %q, want %q", got, tt.want)
			}
			if tt.warning == "" && warnings.Len() > 0 {
				t.Errorf("unexpected warning: %s", warnings.String())
			}
			if tt.warning != "" && !strings.Contains(warnings.String(), tt.warning) {
				t.Errorf("warning = %q, want it to contain %q", warnings.String(), tt.warning)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{Quiet: true, LogFormat: "json"}, &bytes.Buffer{})
	if logger.GetLevel().String() != "warn" {
		t.Errorf("level = %s, want warn", logger.GetLevel())
	}
}
