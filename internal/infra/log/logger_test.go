package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONCarriesServiceTags(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, config.EnvConfig{
		Env:         "production",
		ServiceName: "storefront",
		Log:         config.Log{Level: "info"},
	})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "storefront", line["service"])
	assert.Equal(t, "production", line["env"])
}

func TestBuild_UnknownLevel(t *testing.T) {
	_, err := build(&bytes.Buffer{}, config.EnvConfig{Log: config.Log{Level: "loud"}})
	require.Error(t, err)
}
