package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastropod/levelforge/internal/level"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelforge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[storage]
dsn = "postgres://test@localhost/test"
conn_max_lifetime = "5m"

[codec]
target_version = 4
compression_level = 1

[logging]
level = "debug"
format = "json"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://test@localhost/test", cfg.Storage.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Storage.ConnMaxLifetime)
	assert.Equal(t, 4, cfg.Codec.TargetVersion)
	assert.Equal(t, 1, cfg.Codec.CompressionLevel)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset sections keep their defaults.
	assert.Equal(t, 10, cfg.Storage.MaxOpenConns)
	assert.Equal(t, "data/yaml", cfg.Paths.DataDir)
}

func TestLoadOrDefaults(t *testing.T) {
	cfg, err := LoadOrDefaults(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, level.CurrentVersion, cfg.Codec.TargetVersion)
	assert.Equal(t, "console", cfg.Logging.Format)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("not [valid toml"), 0644))
	_, err = LoadOrDefaults(bad)
	assert.Error(t, err)
}
