package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DBPath)
	require.Contains(t, cfg.DBPath, ".fitfive.db")
}

func TestLoadReadsYAML(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	path := filepath.Join(t.TempDir(), "fitfive.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/custom.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", cfg.DBPath)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitfive.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/custom.db\n"), 0o644))

	t.Setenv(EnvDBPath, "/tmp/env.db")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitfive.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
