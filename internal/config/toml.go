// Package config provides configuration loading from TOML files and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Nil fields are unset.
type FileConfig struct {
	Game    GameConfig    `toml:"game"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// GameConfig maps game-related settings.
type GameConfig struct {
	Locale     *string `toml:"locale"`
	MaxGuesses *int    `toml:"max-guesses"`
	WordLength *int    `toml:"word-length"`
}

// StorageConfig maps word base settings.
type StorageConfig struct {
	DatabaseURL *string `toml:"database-url"`
	WordFile    *string `toml:"word-file"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Load reads the TOML file at path and overlays the environment, including
// variables from dotenvPath when that file exists.
func Load(path, dotenvPath string) (FileConfig, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return FileConfig{}, err
	}
	env, err := LoadEnv(dotenvPath)
	if err != nil {
		return FileConfig{}, err
	}
	env.Apply(&cfg)
	return cfg, nil
}
