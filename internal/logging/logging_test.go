package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity))
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, 1)

	logger.Debug().Msg("hidden")
	logger.Info().Str("arg", "verbose").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "arg=verbose")
	assert.NotContains(t, out, "\x1b[", "no colour when not writing to a terminal")
}
