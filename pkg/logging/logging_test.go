package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}
		})
	}
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	if !strings.HasSuffix(path, "itol/itol.log") {
		t.Errorf("LogFilePath() = %q, want suffix itol/itol.log", path)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("annotate")
	// The component field must survive into the logger context
	out := &strings.Builder{}
	logger = logger.Output(out).Level(zerolog.InfoLevel)
	logger.Info().Msg("hello")
	if !strings.Contains(out.String(), `"component":"annotate"`) {
		t.Errorf("logger output missing component field: %s", out.String())
	}
}
