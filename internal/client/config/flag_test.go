package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := Config{
		APIBaseURL:     "http://default",
		RequestTimeout: 1500 * time.Millisecond,
		DataFile:       "a.db",
		LogLevel:       "info",
	}

	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://api:8080", "-t", "30", "-d", "b.db", "-l", "debug"},
			expected: Config{
				APIBaseURL:     "http://api:8080",
				RequestTimeout: 30 * time.Second,
				DataFile:       "b.db",
				LogLevel:       "debug",
			},
		},
		{
			name:     "no timeout flag keeps sub-second value",
			args:     []string{"cmd", "-a", "http://api"},
			expected: Config{APIBaseURL: "http://api", RequestTimeout: 1500 * time.Millisecond, DataFile: "a.db", LogLevel: "info"},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"cmd", "-c", "conf.json", "-x"},
			expected: base,
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
