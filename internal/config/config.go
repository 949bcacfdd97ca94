// Package config loads settings from .kanban.yaml, KANBAN_* environment
// variables and bound command-line flags, in viper's usual precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyTheme    = "theme"
	KeyColor    = "color"
	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"
	KeySeed     = "seed"
	KeyDemo     = "demo"
)

// Config is the resolved runtime configuration.
type Config struct {
	Theme    string
	Color    string
	LogLevel string
	LogFile  string
	Seed     string
	Demo     bool
}

// New returns a viper instance with defaults and search paths set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySeed, "")
	v.SetDefault(KeyDemo, true)

	v.SetConfigName(".kanban") // .yaml is implicit
	v.SetEnvPrefix("KANBAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("KANBAN_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")
	return v
}

// Load reads the config file if there is one and resolves all keys. A
// missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := Config{
		Theme:    v.GetString(KeyTheme),
		Color:    v.GetString(KeyColor),
		LogLevel: v.GetString(KeyLogLevel),
		Demo:     v.GetBool(KeyDemo),
	}
	var err error
	if cfg.LogFile, err = expand(v.GetString(KeyLogFile)); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = expand(v.GetString(KeySeed)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	out, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return out, nil
}
