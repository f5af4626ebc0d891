package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/brickxml/errors"
)

// UserConfigPath returns ~/.brickxml/am.toml, or "" if the home directory is unknown.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickxml", "am.toml")
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// Save writes cfg to configPath as TOML.
// An existing file is only replaced when overwrite is set; the previous
// content is kept next to it as <path>.back1.
func Save(configPath string, cfg *Config, overwrite bool) error {
	if _, err := os.Stat(configPath); err == nil {
		if !overwrite {
			return errors.WithHint(
				errors.Newf("config file %s already exists", configPath),
				"use --force to replace it")
		}
		if err := createBackup(configPath); err != nil {
			return errors.Wrap(err, "failed to create backup")
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(configPath))
	}
	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", configPath)
	}
	return nil
}

// createBackup copies the current file to .back1
func createBackup(configPath string) error {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(configPath+".back1", content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}
