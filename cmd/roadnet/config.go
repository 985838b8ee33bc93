package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_CONFIG_FILE = "roadnet.yaml"

	LOG_FORMAT_CONSOLE = "console"
	LOG_FORMAT_JSON    = "json"
)

var ErrBadConfig = errors.New("roadnet: invalid configuration")

//**********************************************************
// config
//**********************************************************

type Config struct {
	// Network is the file used when a command gets no -file flag.
	Network      string `yaml:"network"`
	Alternatives struct {
		Limit int `yaml:"limit"`
	} `yaml:"alternatives"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func DefaultConfig() Config {
	var config Config
	config.Log.Level = zerolog.LevelWarnValue
	config.Log.Format = LOG_FORMAT_CONSOLE
	return config
}

// ReadConfig reads a YAML config file on top of the defaults.
// A missing file is only an error when required is set.
func ReadConfig(file string, required bool) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%w: %s: %w", ErrBadConfig, file, err)
	}
	if err := config.validate(); err != nil {
		return config, fmt.Errorf("%w: %s: %w", ErrBadConfig, file, err)
	}
	return config, nil
}

func (config Config) validate() error {
	if config.Alternatives.Limit < 0 {
		return fmt.Errorf("alternatives.limit must not be negative, got %d", config.Alternatives.Limit)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch config.Log.Format {
	case LOG_FORMAT_CONSOLE, LOG_FORMAT_JSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", LOG_FORMAT_CONSOLE, LOG_FORMAT_JSON, config.Log.Format)
	}
	return nil
}

//**********************************************************
// logging
//**********************************************************

// Logger builds the process logger writing to out.
func (config Config) Logger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	w := out
	if config.Log.Format != LOG_FORMAT_JSON {
		w = zerolog.ConsoleWriter{Out: out, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}
	return zerolog.New(w).Level(level)
}
