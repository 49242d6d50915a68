package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds settings shared by sigtoken commands.
// Secret and PublicKey are optional here; commands that need one check it.
type Config struct {
	Secret       string `env:"SIGTOKEN_SECRET"`
	PublicKey    string `env:"SIGTOKEN_PUBLIC_KEY"`
	LogLevel     string `env:"SIGTOKEN_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"SIGTOKEN_LOG_FORMAT" envDefault:"text"`
	Output       string `env:"SIGTOKEN_OUTPUT" envDefault:"text"`
	KeyCacheSize int    `env:"SIGTOKEN_KEY_CACHE_SIZE" envDefault:"16"`
}

// Load reads .env files into the process environment and parses Config.
// Without arguments the default .env is loaded when it exists.
func Load(files ...string) (Config, error) {
	if err := loadEnvFiles(files); err != nil {
		return Config{}, err
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if !slices.Contains([]string{OutputText, OutputJSON, OutputYAML}, c.Output) {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("output %q: must be text, json or yaml", c.Output))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("log format %q: must be text or json", c.LogFormat))
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if c.KeyCacheSize < 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("key cache size %d: must not be negative", c.KeyCacheSize))
	}
	return nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		// The default .env is optional.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
