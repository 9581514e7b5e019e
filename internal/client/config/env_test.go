package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	t.Setenv(envAPIBaseURL, "http://api.example/api")
	t.Setenv(envSessionDBPath, "/tmp/s.db")
	t.Setenv(envRequestTimeout, "20")
	t.Setenv(envLogLevel, "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://api.example/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/s.db", cfg.SessionDBPath)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.NoticeTimeout)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.env")
	require.NoError(t, os.WriteFile(path, []byte("PORTFOLIO_REQUEST_TIMEOUT=5s\n"), 0o600))
	t.Setenv(envRequestTimeout, "")
	require.NoError(t, os.Unsetenv(envRequestTimeout))

	os.Args = []string{"testbin", "-env", path}
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)

	os.Args = []string{"testbin", "-e", filepath.Join(dir, "missing.env")}
	require.Panics(t, func() { parseEnv(&Config{}) })
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"15", 15 * time.Second, false},
		{"1m", time.Minute, false},
		{"0", 0, false},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSeconds(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
