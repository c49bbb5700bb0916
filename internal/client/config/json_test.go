package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "https://api.example.com/api",
		"request_timeout": "20s",
		"online_check_interval": 60000000000
	}`), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "https://api.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)
	require.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	// absent fields keep defaults
	require.Equal(t, "sportactive.db", cfg.DatabasePath)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://localhost:7001/api", cfg.ServerBaseURL)
}
