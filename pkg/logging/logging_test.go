package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		" warn ":  zerolog.WarnLevel,
		"Error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var console bytes.Buffer
	log := New("warn", &console, nil)

	log.Info().Msg("quiet")
	log.Warn().Str("track", "oval").Msg("loud")

	out := console.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "track=")
}

func TestNewWritesFileWithoutColor(t *testing.T) {
	var console, file bytes.Buffer
	log := New("debug", &console, &file)

	log.Debug().Int("lap", 2).Msg("Lap completed")

	assert.Contains(t, console.String(), "Lap completed")
	assert.Contains(t, file.String(), "Lap completed")
	assert.Contains(t, file.String(), "lap=2")
	assert.NotContains(t, file.String(), "\x1b[")
}
