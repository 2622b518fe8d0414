package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/xmlprops/errors"
)

// BackupCount is the number of rotated backups kept next to a saved config
const BackupCount = 3

// Save writes cfg as TOML to path. An existing file is rotated into
// .back1, .back2 and .back3 first; the oldest backup is dropped.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}

// BackupPath returns the path of the n-th rotated backup of configPath
func BackupPath(configPath string, n int) string {
	return configPath + ".back" + strconv.Itoa(n)
}

// createBackup rotates existing backups and copies the current file to .back1
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	if err := os.Remove(BackupPath(configPath, BackupCount)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete old backup %s", BackupPath(configPath, BackupCount))
	}

	for n := BackupCount - 1; n >= 1; n-- {
		from := BackupPath(configPath, n)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		if err := os.Rename(from, BackupPath(configPath, n+1)); err != nil {
			return errors.Wrapf(err, "failed to rotate .back%d to .back%d", n, n+1)
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(BackupPath(configPath, 1), content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}
