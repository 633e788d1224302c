package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries the resolved storage locations. It is passed explicitly into
// bootstrap; nothing in the core reads a process-wide default directory.
type Config struct {
	StreaksDir string
	DBPath     string
}

type fileConfig struct {
	StreaksDir string `yaml:"streaks_dir"`
}

// New resolves the streaks directory with precedence: explicit dir (the --dir
// flag) > STREAKS_DIR environment variable > ~/.streakdottxt.yaml > ~/streaks.
func New(dir string) (Config, error) {
	if dir == "" {
		dir = os.Getenv("STREAKS_DIR")
	}
	if dir == "" {
		fromFile, err := readConfigFile()
		if err != nil {
			return Config{}, err
		}
		dir = fromFile
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, "streaks")
	}
	return Config{
		StreaksDir: dir,
		DBPath:     filepath.Join(dir, ".streak", "index.db"),
	}, nil
}

func readConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	raw, err := os.ReadFile(filepath.Join(home, ".streakdottxt.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return "", fmt.Errorf("parse config file: %w", err)
	}
	return cfg.StreaksDir, nil
}
