package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing file is empty config", func(t *testing.T) {
		cfg := loadFileConfig(filepath.Join(t.TempDir(), "config.yaml"))
		assert.Empty(t, cfg.Server)
		assert.Empty(t, cfg.CacheDir)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: https://api.example.com/api\ncache_dir: /tmp/cache\n"), 0600))

		cfg := loadFileConfig(path)
		assert.Equal(t, "https://api.example.com/api", cfg.Server)
		assert.Equal(t, "/tmp/cache", cfg.CacheDir)
	})

	t.Run("unparseable file is ignored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unbalanced"), 0600))

		cfg := loadFileConfig(path)
		assert.Empty(t, cfg.Server)
	})
}

func TestNewApp(t *testing.T) {
	app, err := newApp(&Globals{DataDir: t.TempDir()})
	require.NoError(t, err)
	require.NotNil(t, app.manager)
	require.NotNil(t, app.client)
}

func TestRequireRoute(t *testing.T) {
	t.Run("anonymous on a gated route", func(t *testing.T) {
		app, err := newApp(&Globals{DataDir: t.TempDir()})
		require.NoError(t, err)

		err = app.requireRoute("/dashboard")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("anonymous on a public route", func(t *testing.T) {
		app, err := newApp(&Globals{DataDir: t.TempDir()})
		require.NoError(t, err)

		assert.NoError(t, app.requireRoute("/courses"))
	})

	t.Run("anonymous on login", func(t *testing.T) {
		app, err := newApp(&Globals{DataDir: t.TempDir()})
		require.NoError(t, err)

		assert.NoError(t, app.requireRoute("/login"))
	})
}
