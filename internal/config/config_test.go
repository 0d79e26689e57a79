package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcarver/tix/internal/config"
)

func Test_Load_AppliesDefaults_When_FileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8917", cfg.APIURL)
	assert.Empty(t, cfg.DefaultStatuses)
}

func Test_Load_ReadsYAML_When_FilePresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_url: https://portal.example.com\n"+
			"api_key: k123\n"+
			"tenant: acme\n"+
			"default_statuses: [open, pending]\n"), 0o644))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com", cfg.APIURL)
	assert.Equal(t, "k123", cfg.APIKey)
	assert.Equal(t, "acme", cfg.Tenant)
	assert.Equal(t, []string{"open", "pending"}, cfg.DefaultStatuses)
}

func Test_Load_PrefersEnvironment_When_OverrideSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com\n"), 0o644))

	t.Setenv("TIX_API_URL", "https://env.example.com")
	t.Setenv("TIX_TENANT", "globex")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, "globex", cfg.Tenant)
}

func Test_Load_Fails_When_YAMLInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [broken\n"), 0o644))

	_, err := config.Load(path)

	require.Error(t, err)
}
