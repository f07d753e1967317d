package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"cityboard/internal/cards"
	"cityboard/internal/citiesapi"
	"cityboard/internal/logging"
)

// Environment variables overriding the config file.
const (
	EnvEndpoint  = "CITYBOARD_ENDPOINT"
	EnvLocale    = "CITYBOARD_LOCALE"
	EnvLogLevel  = "CITYBOARD_LOG_LEVEL"
	EnvLogFormat = "CITYBOARD_LOG_FORMAT"
	EnvListen    = "CITYBOARD_LISTEN"
)

// Config holds runtime options for building the app.
type Config struct {
	Endpoint    string    `yaml:"endpoint"`     // backend base URL, e.g. http://127.0.0.1:5000
	CitiesPath  string    `yaml:"cities_path"`  // default /territories/cities
	PrintPrefix string    `yaml:"print_prefix"` // default /print/
	Locale      string    `yaml:"locale"`       // BCP 47, default fr
	Listen      string    `yaml:"listen"`       // serve address
	Log         LogConfig `yaml:"log"`
}

// LogConfig is the logging section of the config file.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:    "http://127.0.0.1:5000",
		CitiesPath:  citiesapi.DefaultPath,
		PrintPrefix: cards.DefaultPrintPrefix,
		Locale:      "fr",
		Listen:      ":8080",
		Log:         LogConfig{Level: "info", Format: logging.FormatConsole},
	}
}

// Load reads path over the defaults, then applies environment overrides. An
// empty path skips the file; a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&c.Endpoint, EnvEndpoint)
	set(&c.Locale, EnvLocale)
	set(&c.Log.Level, EnvLogLevel)
	set(&c.Log.Format, EnvLogFormat)
	set(&c.Listen, EnvListen)
}

// Validate checks the endpoint and path settings.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q: missing host", c.Endpoint)
	}
	if c.CitiesPath == "" || c.CitiesPath[0] != '/' {
		return fmt.Errorf("cities_path %q: must start with /", c.CitiesPath)
	}
	if c.PrintPrefix == "" || c.PrintPrefix[0] != '/' {
		return fmt.Errorf("print_prefix %q: must start with /", c.PrintPrefix)
	}
	return nil
}

// Logging converts the log section for the logging package.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}
