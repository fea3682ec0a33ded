package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix for settings.
const EnvPrefix = "TASKLIST_"

// Storage backend names.
const (
	BackendFile        = "file"
	BackendBadger      = "badger"
	BackendMySQL       = "mysql"
	BackendGoogleTasks = "googletasks"
)

// Settings are the user-tunable options.
type Settings struct {
	Storage     StorageSettings     `koanf:"storage"`
	GoogleTasks GoogleTasksSettings `koanf:"googletasks"`
}

// StorageSettings select and configure the snapshot backend.
type StorageSettings struct {
	Backend   string `koanf:"backend"`
	Key       string `koanf:"key"`
	File      string `koanf:"file"`
	BadgerDir string `koanf:"badger_dir"`
	MySQLDSN  string `koanf:"mysql_dsn"`
}

// GoogleTasksSettings configure the Google Tasks backend.
type GoogleTasksSettings struct {
	// List is the title of the task list holding snapshots.
	List string `koanf:"list"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Backend:   BackendFile,
			Key:       "tasks",
			File:      "tasks.json",
			BadgerDir: "badger",
		},
		GoogleTasks: GoogleTasksSettings{
			List: AppName,
		},
	}
}

// LoadSettings reads config.yaml from Dir (if present) and then TASKLIST_*
// environment variables, later sources overriding earlier ones.
// TASKLIST_STORAGE_BADGER_DIR maps to storage.badger_dir: only the first
// underscore after the prefix separates the section.
func (c *Config) LoadSettings() error {
	k := koanf.New(".")

	path := c.SettingsPath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.Replace(s, "_", ".", 1)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformer), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	c.Settings = mergeDefaults(s)
	return c.Settings.Validate()
}

// Validate reports unknown backends.
func (s Settings) Validate() error {
	switch s.Storage.Backend {
	case BackendFile, BackendBadger, BackendMySQL, BackendGoogleTasks:
		return nil
	default:
		return fmt.Errorf("unknown storage backend: %s", s.Storage.Backend)
	}
}

func mergeDefaults(s Settings) Settings {
	d := DefaultSettings()
	s.Storage.Backend = strings.ToLower(strings.TrimSpace(s.Storage.Backend))
	if s.Storage.Backend == "" {
		s.Storage.Backend = d.Storage.Backend
	}
	if s.Storage.Key == "" {
		s.Storage.Key = d.Storage.Key
	}
	if s.Storage.File == "" {
		s.Storage.File = d.Storage.File
	}
	if s.Storage.BadgerDir == "" {
		s.Storage.BadgerDir = d.Storage.BadgerDir
	}
	if s.GoogleTasks.List == "" {
		s.GoogleTasks.List = d.GoogleTasks.List
	}
	return s
}
