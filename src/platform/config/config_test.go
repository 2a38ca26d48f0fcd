package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: console\nfake:\n  count: 3\n"), 0o600))
	t.Setenv("PLAYERS_FAKE_COUNT", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 7, cfg.Fake.Count)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "bad yaml", yaml: "log: [\n"},
		{name: "bad format", yaml: "log:\n  format: xml\n"},
		{name: "bad count", env: map[string]string{"PLAYERS_FAKE_COUNT": "0"}},
		{name: "bad env value", env: map[string]string{"PLAYERS_LOG_MAX_BACKUPS": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "players.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
