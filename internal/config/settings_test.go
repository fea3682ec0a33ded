package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	cfg, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.LoadSettings())

	assert.Equal(t, DefaultSettings(), cfg.Settings)
	assert.Equal(t, filepath.Join(cfg.Dir, "tasks.json"), cfg.StorageFilePath())
	assert.Equal(t, filepath.Join(cfg.Dir, "badger"), cfg.BadgerDir())
}

func TestLoadSettings_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "storage:\n  backend: badger\n  key: work\n  badger_dir: /var/lib/tasklist\ngoogletasks:\n  list: Inbox\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(yaml), 0600))
	t.Setenv("TASKLIST_STORAGE_KEY", "home")

	cfg, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.LoadSettings())

	assert.Equal(t, BackendBadger, cfg.Settings.Storage.Backend)
	assert.Equal(t, "home", cfg.Settings.Storage.Key)
	assert.Equal(t, "/var/lib/tasklist", cfg.BadgerDir())
	assert.Equal(t, "Inbox", cfg.Settings.GoogleTasks.List)
}

func TestLoadSettings_EnvUnderscoreKey(t *testing.T) {
	t.Setenv("TASKLIST_STORAGE_MYSQL_DSN", "u:p@tcp(db:3306)/tasks")
	t.Setenv("TASKLIST_STORAGE_BACKEND", "MySQL")

	cfg, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cfg.LoadSettings())

	assert.Equal(t, BackendMySQL, cfg.Settings.Storage.Backend)
	assert.Equal(t, "u:p@tcp(db:3306)/tasks", cfg.Settings.Storage.MySQLDSN)
}

func TestLoadSettings_UnknownBackend(t *testing.T) {
	t.Setenv("TASKLIST_STORAGE_BACKEND", "floppy")

	cfg, err := New(t.TempDir())
	require.NoError(t, err)

	err = cfg.LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend: floppy")
}

func TestLoadSettings_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte("storage: [\n"), 0600))

	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Error(t, cfg.LoadSettings())
}
