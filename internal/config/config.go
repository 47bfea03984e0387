// Package config resolves runtime configuration from defaults, an optional
// config.yaml, an optional .env file and FOCUSBOARD_* environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	appName   = "focusboard"
	envPrefix = "FOCUSBOARD"
)

// Config holds the application configuration
type Config struct {
	DataDir    string
	Driver     string // storage.driver
	StorageKey string // storage.key
	LogFile    string
	Debug      bool
}

var validDrivers = map[string]bool{
	"sqlite":  true,
	"sqlite3": true,
	"file":    true,
	"memory":  true,
}

// DefaultDataDir returns ~/.config/focusboard (or the platform equivalent).
func DefaultDataDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appName), nil
}

// Load reads configuration. configPath may be empty, in which case
// config.yaml is searched for in the default data dir and the working
// directory; a missing file is not an error.
func Load(configPath string) (Config, error) {
	// A .env file is optional; only a malformed one is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	dataDir, err := DefaultDataDir()
	if err != nil {
		dataDir = "."
	}

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.key", "productivity_data")
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dataDir)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DataDir:    v.GetString("data_dir"),
		Driver:     strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		StorageKey: v.GetString("storage.key"),
		LogFile:    v.GetString("log_file"),
		Debug:      v.GetBool("debug"),
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	if !validDrivers[c.Driver] {
		c.Driver = "sqlite"
	}
	if c.StorageKey == "" {
		c.StorageKey = "productivity_data"
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, appName+".log")
	}
	return c
}
