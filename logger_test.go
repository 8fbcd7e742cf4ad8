package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    slog.Level
		wantErr bool
	}{
		{name: "Empty selects default", level: "", want: slog.LevelInfo},
		{name: "Debug", level: "debug", want: slog.LevelDebug},
		{name: "Upper case", level: "WARN", want: slog.LevelWarn},
		{name: "Error", level: "error", want: slog.LevelError},
		{name: "Unknown", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
