//go:build unit

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "warn", TimeZone: "Asia/Manila", TimeFormat: "2006-01-02", TimeZoneOffset: 28800}
	logger := logging.New(cfg, &buf, true)

	logger.Info("dropped")
	logger.Warn("kept", "booking_reference", "BK-1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "BK-1", entry["booking_reference"])
	assert.Equal(t, "studio-booking", entry["service"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, entry["time"])
}

func TestLocationFallsBackToOffset(t *testing.T) {
	loc := logging.Location(config.LogConfig{TimeZone: "Studio/Nowhere", TimeZoneOffset: 3600})
	assert.Equal(t, "Studio/Nowhere", loc.String())
}
