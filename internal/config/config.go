package config

import (
	"fmt"
	"os"
)

type Config struct {
	OpenAI  OpenAIConfig
	Storage StorageConfig
	Log     LogConfig
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		OpenAI: OpenAIConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON config file at
// $XDG_CONFIG_HOME/scriv/config.json and applies SCRIV_* environment
// variable overrides. The API key is a secret and is only accepted from
// the environment.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if cfg.OpenAI.APIKey == "" {
		return Config{}, fmt.Errorf("missing required config: OpenAI API key. Set it via environment variable SCRIV_OPENAI_API_KEY")
	}

	return cfg, nil
}

// LogLevel returns the configured log level without requiring a full Load
// (which fails when no API key is set). The log.level key from the file
// backend applies first, then the SCRIV_LOG_LEVEL environment variable.
func LogLevel() string {
	return logLevelWith(newFileBackend())
}

func logLevelWith(b Backend) string {
	level := defaults().Log.Level
	if v, ok, err := b.GetString("log.level"); err == nil && ok {
		level = v
	}
	if env := os.Getenv("SCRIV_LOG_LEVEL"); env != "" {
		level = env
	}
	return level
}
