package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"

	"github.com/devblok/vkinfo/window"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables read by LoadConfiguration
const (
	EnvWindowing = "VKINFO_WINDOWING"
	EnvFormat    = "VKINFO_FORMAT"
	EnvLogLevel  = "VKINFO_LOG_LEVEL"
)

// ErrConfiguration is returned for values that can not be used
var ErrConfiguration = errors.New("invalid configuration")

// Configuration defines how a run is carried out
type Configuration struct {
	// Windowing is the backend that declares required
	// instance extensions: glfw, sdl or headless
	Windowing string

	// Format is the report output format, text or json
	Format string

	LogLevel logrus.Level
}

// DefaultConfiguration mirrors what vkinfo does without any setup
var DefaultConfiguration = Configuration{
	Windowing: window.GLFW,
	Format:    FormatText,
	LogLevel:  logrus.WarnLevel,
}

// LoadConfiguration reads the configuration from the environment.
// A .env file in the working directory is honoured.
func LoadConfiguration() (Configuration, error) {
	cfg := DefaultConfiguration

	cfg.Windowing = strings.ToLower(env(EnvWindowing, cfg.Windowing))
	switch cfg.Windowing {
	case window.GLFW, window.SDL, window.Headless:
	default:
		return cfg, fmt.Errorf("%w: %s=%q", ErrConfiguration, EnvWindowing, cfg.Windowing)
	}

	cfg.Format = strings.ToLower(env(EnvFormat, cfg.Format))
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return cfg, fmt.Errorf("%w: %s=%q", ErrConfiguration, EnvFormat, cfg.Format)
	}

	if lvl := env(EnvLogLevel, ""); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrConfiguration, EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// env treats an empty value the same as an unset one
func env(key, fallback string) string {
	if v := envy.Get(key, ""); v != "" {
		return v
	}
	return fallback
}
