package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
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
			SetupLoggerTo(&bytes.Buffer{}, tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestLoggerWritesToGivenOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	SetupLoggerTo(buf, 1)

	log.Info().Str("modpack", "Pack").Msg("hello")
	log.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "Pack")
	assert.NotContains(t, buf.String(), "hidden")
}
