package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"classiflyer/internal/domain"
)

const (
	appDirName     = "classiflyer"
	configFileName = "config.json"

	// EnvRoot overrides the configured root directory when set.
	EnvRoot = "CLASSIFLYER_ROOT"
)

// fileConfig is the on-disk shape of the config file. It holds only the
// root path; everything else lives in the index under the root, so
// relocating storage never requires rewriting the index.
type fileConfig struct {
	RootPath string `json:"rootPath"`
}

// DefaultRootPath returns the root used when nothing is configured.
func DefaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".classiflyer", "config")
	}
	return filepath.Join(home, ".classiflyer", "config")
}

// Path returns the location of the config file under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// RootPath resolves the active root directory: the CLASSIFLYER_ROOT env
// var wins, then the config file, then the default. A missing or
// unreadable config file is not an error; the default applies.
func RootPath() string {
	if env := strings.TrimSpace(os.Getenv(EnvRoot)); env != "" {
		return env
	}
	cfg, err := read()
	if err != nil || strings.TrimSpace(cfg.RootPath) == "" {
		return DefaultRootPath()
	}
	return cfg.RootPath
}

// SetRootPath validates, bootstraps, and persists a new root directory.
// The previous root's index is left untouched.
func SetRootPath(rootPath string) error {
	rootPath = strings.TrimSpace(rootPath)
	if rootPath == "" {
		return errors.New("root path is required")
	}
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("resolve root path: %w", err)
	}
	if err := Bootstrap(abs); err != nil {
		return err
	}
	return write(fileConfig{RootPath: abs})
}

// Bootstrap ensures the root directory, its four standard
// subdirectories, and an initial index file exist. This is the explicit
// first-run initialization; index loading never fabricates an empty
// document on its own.
func Bootstrap(rootPath string) error {
	if err := os.MkdirAll(rootPath, 0755); err != nil {
		return fmt.Errorf("create root directory: %w", err)
	}
	for _, sub := range []string{domain.DirClasseurs, domain.DirArchives, domain.DirCorbeille, domain.DirUploads} {
		if err := os.MkdirAll(filepath.Join(rootPath, sub), 0755); err != nil {
			return fmt.Errorf("create %s directory: %w", sub, err)
		}
	}

	dbPath := filepath.Join(rootPath, domain.IndexFileName)
	if _, err := os.Stat(dbPath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dbPath, err)
	}

	data, err := json.MarshalIndent(domain.NewIndex(rootPath), "", "  ")
	if err != nil {
		return fmt.Errorf("encode initial index: %w", err)
	}
	if err := os.WriteFile(dbPath, data, 0644); err != nil {
		return fmt.Errorf("write initial index: %w", err)
	}
	return nil
}

func read() (fileConfig, error) {
	path, err := Path()
	if err != nil {
		return fileConfig{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var cfg fileConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

func write(cfg fileConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
