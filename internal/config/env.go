package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvConfig maps environment variables. Empty or zero values are unset.
type EnvConfig struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	WordbaseFile string `env:"WORDBASE_FILE"`
	MaxGuesses   int    `env:"MAX_GUESSES"`
	WordLength   int    `env:"WORD_LENGTH"`
	Locale       string `env:"LOCALE"`
	LogLevel     string `env:"LOG_LEVEL"`
}

// LoadEnv loads dotenvPath into the process environment, without overriding
// variables that are already set, and reads EnvConfig from it.
func LoadEnv(dotenvPath string) (EnvConfig, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return EnvConfig{}, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}
	var env EnvConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}

// Apply overwrites cfg with every value set in e.
func (e EnvConfig) Apply(cfg *FileConfig) {
	setString(&cfg.Storage.DatabaseURL, e.DatabaseURL)
	setString(&cfg.Storage.WordFile, e.WordbaseFile)
	setString(&cfg.Game.Locale, e.Locale)
	setString(&cfg.Log.Level, e.LogLevel)
	setInt(&cfg.Game.MaxGuesses, e.MaxGuesses)
	setInt(&cfg.Game.WordLength, e.WordLength)
}

func setString(target **string, value string) {
	if value == "" {
		return
	}
	*target = &value
}

func setInt(target **int, value int) {
	if value == 0 {
		return
	}
	*target = &value
}
