package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8000", cfg.ServerEndpointAddr)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "dznutri.db", cfg.DatabasePath)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("DZNUTRI_SERVER", "https://api.dznutri.example")
	t.Setenv("DZNUTRI_TIMEOUT", "20s")
	t.Setenv("DZNUTRI_DB", "/tmp/state.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://api.dznutri.example", cfg.ServerEndpointAddr)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/state.db", cfg.DatabasePath)
}

func TestParseEnv_InvalidTimeoutKeepsPrevious(t *testing.T) {
	t.Setenv("DZNUTRI_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseJSON_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"http://10.0.0.5:8000","request_timeout":"30s"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"test", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://10.0.0.5:8000", cfg.ServerEndpointAddr)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// untouched field keeps its default
	require.Equal(t, "dznutri.db", cfg.DatabasePath)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"test", "-a", "http://192.168.1.10:8000", "-t", "5"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://192.168.1.10:8000", cfg.ServerEndpointAddr)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
