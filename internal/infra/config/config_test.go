package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFileWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
http:
  address: ":9090"
  allowOrigins: ["https://garden.example.com"]
faq:
  source: "https://garden.example.com/data/faq.json"
  loadTimeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("FAQ_WARMUP", "false")
	t.Setenv("HTTP_RATE_LIMIT_RPM", "30")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://garden.example.com"}, cfg.HTTP.AllowOrigins)
	require.Equal(t, "https://garden.example.com/data/faq.json", cfg.FAQ.Source)
	require.Equal(t, 3*time.Second, cfg.FAQ.LoadTimeout)
	require.False(t, cfg.FAQ.Warmup)
	require.Equal(t, 30, cfg.HTTP.RateLimit.RequestsPerMinute)
	require.EqualValues(t, 8<<20, cfg.FAQ.MaxBodyBytes)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	require.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.FAQ.Source = "s3://garden/faq.json"
	require.ErrorContains(t, cfg.Validate(), "objectStore.endpoint")

	cfg.FAQ.ObjectStore.Endpoint = "https://acct.r2.cloudflarestorage.com"
	require.NoError(t, cfg.Validate())

	cfg.FAQ.MaxBodyBytes = 0
	require.Error(t, cfg.Validate())
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
